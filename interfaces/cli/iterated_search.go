package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/application/plugins"
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/searchspec"
)

// iteratedSearchOptions holds options for the iterated-search command.
type iteratedSearchOptions struct {
	taskFile        string
	passBound       bool
	repeatLastPhase bool
	continueOnFail  bool
	continueOnSolve bool
	planFilePrefix  string
	verbose         bool
}

// newIteratedSearchCmd creates the iterated-search command: one
// engine.IteratedEngine run over a sequence of search-specs, the
// original_source's iterated_search.cc "run these phases over the same
// task, tightening the bound as you go" behavior.
func (a *App) newIteratedSearchCmd() *cobra.Command {
	opts := &iteratedSearchOptions{}

	cmd := &cobra.Command{
		Use:   "iterated-search <search-spec>...",
		Short: "Run a sequence of search phases over the same task, keeping the cheapest plan",
		Long: `Run each given search-spec as one phase of an iterated search over the
same task (original_source's iterated_search.cc). By default the run
stops at the first phase that solves; --continue-on-solve keeps going
through every phase looking for a cheaper plan, --pass-bound tightens
each later phase's bound to the best plan cost found so far, and
--repeat-last-phase re-runs the final phase again as long as it just
found a solution (never after a failure).

Each solved phase's plan is written to "<prefix>.N" (N is the
zero-based phase index) when --plan-file is set; otherwise it is
printed to stdout labeled by phase.

Examples:
  planner iterated-search -t task.sas "gbfs(h())" "astar(h())"
  planner iterated-search -t task.sas --pass-bound --continue-on-solve "wastar(h(), 5)" "wastar(h(), 2)" "astar(h())"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIteratedSearch(cmd.Context(), args, cmd.InOrStdin(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.taskFile, "task", "t", "", "Task input path (default: stdin)")
	cmd.Flags().BoolVar(&opts.passBound, "pass-bound", false, "Tighten each phase's bound to the best plan cost found so far")
	cmd.Flags().BoolVar(&opts.repeatLastPhase, "repeat-last-phase", false, "Re-run the final phase again as long as it keeps solving")
	cmd.Flags().BoolVar(&opts.continueOnFail, "continue-on-fail", false, "Run the next phase even after one fails to solve")
	cmd.Flags().BoolVar(&opts.continueOnSolve, "continue-on-solve", false, "Run the next phase even after one solves, looking for a cheaper plan")
	cmd.Flags().StringVar(&opts.planFilePrefix, "plan-file", "", "Write each solved phase's plan to <prefix>.N instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print per-phase statistics alongside each plan")

	return cmd
}

func (a *App) runIteratedSearch(ctx context.Context, specs []string, stdin io.Reader, opts *iteratedSearchOptions) error {
	r := plugins.NewRegistry()
	plugins.RegisterBuiltins(r)

	phases := make([]builder.Builder[*engine.Engine], len(specs))
	for i, spec := range specs {
		fs, err := searchspec.Parse(spec)
		if err != nil {
			return fmt.Errorf("%w: phase %d: %v", searcherr.Input, i, err)
		}
		engB, err := r.BuildEngine(fs)
		if err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
		phases[i] = engB
	}

	tk, err := a.readTask(ctx, opts.taskFile, stdin)
	if err != nil {
		return err
	}

	ie, err := engine.NewIteratedEngine(engine.IteratedParams{
		Phases:          phases,
		Task:            tk,
		PassBound:       opts.passBound,
		RepeatLastPhase: opts.repeatLastPhase,
		ContinueOnFail:  opts.continueOnFail,
		ContinueOnSolve: opts.continueOnSolve,
	})
	if err != nil {
		return err
	}

	out, err := ie.Run(ctx)
	if err != nil {
		return fmt.Errorf("%w: iterated search: %v", searcherr.Internal, err)
	}

	for _, ph := range out.Phases {
		res := ph.Result
		if opts.verbose {
			fmt.Fprintf(a.stdout, "phase %d: outcome=%s duration=%s generated=%d evaluated=%d expanded=%d reopened=%d dead_ends=%d\n",
				ph.Index, res.Outcome, res.Duration,
				res.Stats.Generated, res.Stats.Evaluated, res.Stats.Expanded, res.Stats.Reopened, res.Stats.DeadEnds)
		}
		if res.Outcome != engine.OutcomeSolved {
			continue
		}
		if err := a.emitPhasePlan(tk, ph.Index, res.Plan, opts.planFilePrefix); err != nil {
			return err
		}
	}

	if !out.SolvedAny {
		fmt.Fprintln(a.stderr, "iterated search did not solve the task in any phase")
		return &exitError{code: exitCodeForOutcome(lastPhaseOutcome(out))}
	}

	fmt.Fprintf(a.stdout, "best plan cost across phases: %d\n", out.BestPlanCost)
	return nil
}

// emitPhasePlan writes one phase's already-solved plan either to
// "<prefix>.N" (when --plan-file is set) or to stdout labeled by phase.
func (a *App) emitPhasePlan(tk *task.Task, index int, pl plan.Plan, prefix string) error {
	rendered := plan.Format(tk, pl)
	if prefix == "" {
		fmt.Fprintf(a.stdout, "=== phase %d ===\n", index)
		fmt.Fprint(a.stdout, rendered)
		return nil
	}
	path := fmt.Sprintf("%s.%d", prefix, index)
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("%w: writing plan file %q: %v", searcherr.Internal, path, err)
	}
	fmt.Fprintf(a.stdout, "phase %d: wrote %s\n", index, path)
	return nil
}

// lastPhaseOutcome reports the outcome of the last phase run, for the
// exit code when no phase ever solved.
func lastPhaseOutcome(out engine.IteratedResult) engine.Outcome {
	if len(out.Phases) == 0 {
		return engine.OutcomeFailed
	}
	return out.Phases[len(out.Phases)-1].Result.Outcome
}
