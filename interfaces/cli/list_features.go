package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/application/plugins"
)

// newListFeaturesCmd creates the list-features command.
func (a *App) newListFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-features",
		Short: "List every registered evaluator, open-list and search-engine feature",
		Long: `List the names usable in a search-spec string, grouped by the three
buildable kinds a search-spec can reference: evaluators (the g/h/weight
family), open lists (single/tiebreaking/pareto/alternation), and search
engines (eager/astar/wastar/gbfs).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.listFeatures()
			return nil
		},
	}
}

func (a *App) listFeatures() {
	r := plugins.NewRegistry()
	plugins.RegisterBuiltins(r)

	fmt.Fprintln(a.stdout, "Evaluators:")
	a.listFeatureGroup(r.EvaluatorNames())

	fmt.Fprintln(a.stdout, "Open lists:")
	a.listFeatureGroup(r.OpenListNames())

	fmt.Fprintln(a.stdout, "Search engines:")
	a.listFeatureGroup(r.EngineNames())
}

// listFeatureGroup prints one name per line, with its signature and
// description when plugins.DocFor knows it (always true for a builtin
// name; a name registered by a caller of its own has no entry and
// falls back to the bare name).
func (a *App) listFeatureGroup(names []string) {
	for _, name := range names {
		doc, ok := plugins.DocFor(name)
		if !ok {
			fmt.Fprintf(a.stdout, "  %s\n", name)
			continue
		}
		fmt.Fprintf(a.stdout, "  %-70s %s\n", doc.Signature, doc.Description)
	}
}
