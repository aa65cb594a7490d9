package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/application/plugins"
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/resilience"
	"github.com/felixgeelhaar/planner-go/infrastructure/searchspec"
	"github.com/felixgeelhaar/planner-go/infrastructure/taskio"
)

// taskFileExecutor wraps a task-file open+parse with fortify's
// bulkhead/circuit-breaker/retry, per infrastructure/resilience's own
// "filesystem I/O, not the core search step" boundary. Shared across
// every command that reads a task file by path; stdin is read directly
// since a stream can't be retried after a failed read.
var taskFileExecutor = resilience.NewDefaultIOExecutor[*task.Task]()

// searchOptions holds options for the search command.
type searchOptions struct {
	taskFile string
	maxTime  time.Duration
	verbose  bool
}

// newSearchCmd creates the search command.
func (a *App) newSearchCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <search-spec>",
		Short: "Run a search over a planning task",
		Long: `Run eager best-first graph search over a planning task using the
algorithm named by <search-spec>, e.g. astar(h()) or
eager(single(sum([g(),weight(h(),2)]))).

The task is read from the file given by --task, or from stdin if
omitted, in the infrastructure/taskio line-delimited grammar.

Examples:
  # Read the task from a file
  planner search -t task.sas "astar(h())"

  # Read the task from stdin
  cat task.sas | planner search "wastar(h(), 2)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd.Context(), args[0], cmd.InOrStdin(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.taskFile, "task", "t", "", "Task input path (default: stdin)")
	cmd.Flags().DurationVar(&opts.maxTime, "max-time", 0, "Wall-clock search budget (0 for unbounded)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print search statistics alongside the plan")

	return cmd
}

// runSearch binds the search-spec, reads the task, runs the engine and
// renders its outcome.
func (a *App) runSearch(ctx context.Context, spec string, stdin io.Reader, opts *searchOptions) error {
	eng, tk, err := a.buildEngine(ctx, spec, opts.taskFile, stdin)
	if err != nil {
		return err
	}

	if opts.maxTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.maxTime)
		defer cancel()
	}

	res, err := eng.Run(ctx)
	if err != nil {
		return fmt.Errorf("%w: search run: %v", searcherr.Internal, err)
	}

	if opts.verbose {
		fmt.Fprintf(a.stdout, "outcome: %s\n", res.Outcome)
		fmt.Fprintf(a.stdout, "duration: %s\n", res.Duration)
		fmt.Fprintf(a.stdout, "generated: %d, evaluated: %d, expanded: %d, reopened: %d, dead_ends: %d\n",
			res.Stats.Generated, res.Stats.Evaluated, res.Stats.Expanded, res.Stats.Reopened, res.Stats.DeadEnds)
	}

	if res.Outcome != engine.OutcomeSolved {
		if res.Err != nil {
			fmt.Fprintf(a.stderr, "search did not solve the task: %s (%v)\n", res.Outcome, res.Err)
		} else {
			fmt.Fprintf(a.stderr, "search did not solve the task: %s\n", res.Outcome)
		}
		return &exitError{code: exitCodeForOutcome(res.Outcome)}
	}

	if err := plan.Verify(tk, res.Plan); err != nil {
		return fmt.Errorf("%w: solved plan failed verification: %v", searcherr.Internal, err)
	}

	fmt.Fprint(a.stdout, plan.Format(tk, res.Plan))
	return nil
}

// buildEngine parses spec, reads the task (from taskFile or stdin) and
// instantiates a fresh engine.Engine from them.
func (a *App) buildEngine(ctx context.Context, spec, taskFile string, stdin io.Reader) (*engine.Engine, *task.Task, error) {
	fs, err := searchspec.Parse(spec)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", searcherr.Input, err)
	}

	r := plugins.NewRegistry()
	plugins.RegisterBuiltins(r)
	engB, err := r.BuildEngine(fs)
	if err != nil {
		return nil, nil, err
	}

	tk, err := a.readTask(ctx, taskFile, stdin)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engB.Instantiate(tk, builder.NewComponentMap())
	if err != nil {
		return nil, nil, err
	}
	return eng, tk, nil
}

// readTask reads the task from path, or from stdin when path is empty.
// The file-path case goes through taskFileExecutor so a transient
// filesystem hiccup (an NFS-mounted task directory, a momentary
// permission race) gets retried instead of failing the whole run;
// stdin is read directly since its bytes are gone once consumed.
func (a *App) readTask(ctx context.Context, path string, stdin io.Reader) (*task.Task, error) {
	if path == "" {
		tk, err := taskio.Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: reading task from stdin: %v", searcherr.Input, err)
		}
		return tk, nil
	}
	tk, err := taskFileExecutor.Load(ctx, func(context.Context) (*task.Task, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return taskio.Read(f)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading task file %q: %v", searcherr.Input, path, err)
	}
	return tk, nil
}

// exitError carries a specific process exit code for a non-Solved
// search outcome without treating it as an unexpected internal error.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("search exited with status %d", e.code)
}
