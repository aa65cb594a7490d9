package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/application/plugins"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/infrastructure/searchspec"
)

// newValidateConfigCmd creates the validate-config command.
func (a *App) newValidateConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config <search-spec>",
		Short: "Parse and bind a search-spec without running search",
		Long: `Parse <search-spec> and bind it against the registered evaluator,
open-list and search-engine features, reporting the first error found
without reading a task or running a search.

Examples:
  planner validate-config "astar(h())"
  planner validate-config "eager(alternation([child(single(g()))]))"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateConfig(args[0])
		},
	}
}

func (a *App) validateConfig(spec string) error {
	fs, err := searchspec.Parse(spec)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid search-spec: %v\n", err)
		return &exitError{code: exitCodeForErr(fmt.Errorf("%w: %v", searcherr.Input, err))}
	}

	r := plugins.NewRegistry()
	plugins.RegisterBuiltins(r)
	if _, err := r.BuildEngine(fs); err != nil {
		fmt.Fprintf(a.stderr, "invalid search-spec: %v\n", err)
		return &exitError{code: exitCodeForErr(err)}
	}

	fmt.Fprintf(a.stdout, "%s: valid\n", spec)
	return nil
}
