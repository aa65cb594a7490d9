package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/application/plugins"
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	infraconfig "github.com/felixgeelhaar/planner-go/infrastructure/config"
	"github.com/felixgeelhaar/planner-go/infrastructure/resilience"
)

// runConfigFileExecutor wraps a run-configuration file load with the
// same bulkhead/circuit-breaker/retry executor taskFileExecutor uses
// for task files, for the same "filesystem hiccup, not a bad file"
// transient-fault boundary.
var runConfigFileExecutor = resilience.NewDefaultIOExecutor[*infraconfig.RunConfigFile]()

// configRunOptions holds options for the run-config command.
type configRunOptions struct {
	runName string
	verbose bool
}

// newRunConfigCmd creates the run-config command: the YAML/JSON
// run-configuration counterpart to `search`, for an iterated-search
// list of named runs sharing one file (spec.md §6 "Configuration
// grammar contract").
func (a *App) newRunConfigCmd() *cobra.Command {
	opts := &configRunOptions{}

	cmd := &cobra.Command{
		Use:   "run-config <config-file>",
		Short: "Run one or all searches named in a YAML/JSON run-configuration file",
		Long: `Load a run-configuration file (YAML or JSON, per the schema from
export-schema) and run the search-spec bound to each of its named
entries in turn, or just the one named by --run.

Each entry's own task_file, max_time and search fields are used; an
entry with no task_file reads the task from stdin, which only works
when a single entry is selected with --run.

Examples:
  planner run-config runs.yaml
  planner run-config runs.yaml --run baseline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigFile(cmd.Context(), args[0], cmd.InOrStdin(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.runName, "run", "", "Run only the named entry (default: run every entry in order)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print search statistics alongside each plan")

	return cmd
}

func (a *App) runConfigFile(ctx context.Context, path string, stdin io.Reader, opts *configRunOptions) error {
	loader := infraconfig.NewLoader()
	file, err := runConfigFileExecutor.Load(ctx, func(context.Context) (*infraconfig.RunConfigFile, error) {
		return loader.LoadFile(path)
	})
	if err != nil {
		return fmt.Errorf("%w: loading run-configuration %q: %v", searcherr.Input, path, err)
	}

	b := infraconfig.NewBinder(file)

	var runs []infraconfig.BoundRun
	if opts.runName != "" {
		run, err := b.BindNamed(opts.runName)
		if err != nil {
			return fmt.Errorf("%w: %v", searcherr.Input, err)
		}
		runs = []infraconfig.BoundRun{run}
	} else {
		runs, err = b.Bind()
		if err != nil {
			return fmt.Errorf("%w: %v", searcherr.Input, err)
		}
	}

	r := plugins.NewRegistry()
	plugins.RegisterBuiltins(r)

	for _, run := range runs {
		if err := a.runOne(ctx, r, run, stdin, opts.verbose); err != nil {
			return err
		}
	}
	return nil
}

// runOne runs a single bound run and renders its outcome, labeling
// output with the run's name when more than one run shares the file.
func (a *App) runOne(ctx context.Context, r *plugins.Registry, run infraconfig.BoundRun, stdin io.Reader, verbose bool) error {
	engB, err := r.BuildEngine(run.Spec)
	if err != nil {
		return fmt.Errorf("run %q: %w", run.Name, err)
	}

	tk, err := a.readTask(ctx, run.TaskFile, stdin)
	if err != nil {
		return fmt.Errorf("run %q: %w", run.Name, err)
	}

	eng, err := engB.Instantiate(tk, builder.NewComponentMap())
	if err != nil {
		return fmt.Errorf("run %q: %w", run.Name, err)
	}

	runCtx := ctx
	if run.MaxTime > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, run.MaxTime)
		defer cancel()
	}

	res, err := eng.Run(runCtx)
	if err != nil {
		return fmt.Errorf("%w: run %q: %v", searcherr.Internal, run.Name, err)
	}

	fmt.Fprintf(a.stdout, "=== %s ===\n", run.Name)
	if verbose {
		fmt.Fprintf(a.stdout, "outcome: %s\n", res.Outcome)
		fmt.Fprintf(a.stdout, "duration: %s\n", res.Duration)
		fmt.Fprintf(a.stdout, "generated: %d, evaluated: %d, expanded: %d, reopened: %d, dead_ends: %d\n",
			res.Stats.Generated, res.Stats.Evaluated, res.Stats.Expanded, res.Stats.Reopened, res.Stats.DeadEnds)
	}

	if res.Outcome != engine.OutcomeSolved {
		if res.Err != nil {
			fmt.Fprintf(a.stderr, "run %q did not solve the task: %s (%v)\n", run.Name, res.Outcome, res.Err)
		} else {
			fmt.Fprintf(a.stderr, "run %q did not solve the task: %s\n", run.Name, res.Outcome)
		}
		return &exitError{code: exitCodeForOutcome(res.Outcome)}
	}

	if err := plan.Verify(tk, res.Plan); err != nil {
		return fmt.Errorf("%w: run %q: solved plan failed verification: %v", searcherr.Internal, run.Name, err)
	}

	fmt.Fprint(a.stdout, plan.Format(tk, res.Plan))
	return nil
}

