// Package engine implements the eager best-first search loop from
// spec.md §4.6: dequeue-until-expandable, lazy heuristic re-evaluation,
// goal check, successor generation through pruning, and the
// new/reopen/update-parent branches that keep the open list, the
// search space, and the resource budget consistent with each other.
// It is driven through infrastructure/statemachine's run-lifecycle
// chart the way the teacher's Engine drives agent runs through its own
// statechart — one transition per phase of a run, not per expansion.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/policy"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/observability"
	"github.com/felixgeelhaar/planner-go/infrastructure/pruning"
)

// Unbounded marks a Params.Bound with no cost ceiling.
const Unbounded = math.MaxInt

// Params configures one eager best-first search run over a fixed task
// (spec.md §4.6).
type Params struct {
	// Task is the planning problem to solve.
	Task *task.Task

	// OpenList orders pending expansions; see EvaluatedOpenList.
	OpenList EvaluatedOpenList
	// ReopenClosed controls whether a cheaper path to an already-closed
	// state reopens it (increasing search effort but keeping the g-value
	// and traced plan consistent) or merely updates the recorded parent.
	ReopenClosed bool
	// Bound is a cost ceiling on candidate plans; Unbounded disables it.
	Bound int
	// CostType selects how operator costs are adjusted for g-values
	// (task.AdjustedCost); real_g always uses CostTypeNormal regardless.
	CostType task.CostType

	// PreferredOpEvaluators accumulate the preferred-operator set P at
	// each expansion (spec.md §4.6 step 4).
	PreferredOpEvaluators []evaluation.Evaluator
	// LazyEvaluator, if set, is evaluated when a node is inserted and
	// again when it is popped: a popped node whose estimate changed is
	// reinserted under the new value instead of being expanded, and one
	// whose estimate became infinite is marked a dead end (spec.md §4.6
	// step 2).
	LazyEvaluator evaluation.Evaluator
	// PathDependent lists every path-dependent evaluator reachable from
	// OpenList/PreferredOpEvaluators/LazyEvaluator; the engine notifies
	// each one exactly once per transition actually taken.
	PathDependent []evaluation.PathDependent
	// Pruning narrows the applicable operators considered at each
	// expansion. Defaults to pruning.Null.
	Pruning pruning.Method

	// MaxStates bounds the number of distinct states the run's registry
	// will intern; zero means unbounded.
	MaxStates int
	// Budget tracks resource consumption (expansions, generated states)
	// against configured ceilings; nil means no tracking.
	Budget *policy.Budget
	// MaxTime bounds wall-clock search time; zero means unbounded.
	MaxTime time.Duration

	// Metrics records OTel counters/histograms for the run, if set.
	Metrics *observability.SearchMetrics
	// RunID identifies the run for logging; generated if empty.
	RunID string
}

// Stats is the running-counter statistics block from spec.md §6.
type Stats struct {
	Generated int
	Evaluated int
	Expanded  int
	Reopened  int
	DeadEnds  int
}

// Outcome is the terminal lifecycle state a run ended in.
type Outcome int

const (
	OutcomeSolved Outcome = iota
	OutcomeFailed
	OutcomeTimeout
	OutcomeOutOfMemory
	OutcomeUnsupported
)

// String renders the outcome for logging and CLI output.
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeFailed:
		return "failed"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeOutOfMemory:
		return "out_of_memory"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Result is what Engine.Run returns.
type Result struct {
	Outcome  Outcome
	Plan     plan.Plan
	Stats    Stats
	Duration time.Duration
	// Err is the underlying error for non-Solved outcomes; nil when Solved.
	Err error
}

func validate(p *Params) error {
	if p.Task == nil {
		return fmt.Errorf("%w: engine requires a task", searcherr.Config)
	}
	if p.OpenList == nil {
		return fmt.Errorf("%w: engine requires an open list", searcherr.Config)
	}
	if p.Pruning == nil {
		p.Pruning = pruning.Null{}
	}
	if p.Bound == 0 {
		p.Bound = Unbounded
	}
	return nil
}
