// Package evaluation defines the Evaluator contract shared by every
// node in the evaluator composition tree (infrastructure/evaluator):
// heuristics, g(), weighted combinations, sums, maxes and preference
// indicators, matching spec.md §4.3/§4.4.
package evaluation

import "github.com/felixgeelhaar/planner-go/domain/task"

// Context is the information an Evaluator sees when asked to evaluate a
// node: the registered state, the open-list bookkeeping cost so far,
// and the operator that produced the state (absent for the initial
// state). Evaluators never see the search node's status or parent
// chain directly; path-dependent evaluators instead receive explicit
// notify hooks (PathDependent below).
//
// Applicable carries the operators applicable in State, but only when
// this Context represents a *parent* being evaluated for its preferred
// operators (spec.md §4.6 step 4's ctx_pref); it is nil otherwise. A
// preferred-operator evaluator reads it to decide which of those
// operators it recommends — it cannot invent operator ids it was never
// told about.
type Context struct {
	StateID    task.StateID
	State      task.State
	G          int
	LastOp     task.OperatorID
	IsPrimary  bool
	Applicable []task.OperatorID
}

// Result is what an Evaluator returns for one Context.
type Result struct {
	// Value is the estimate. Its meaning (cost-to-go, count, ...) is
	// evaluator-specific; infinite/unreachable is represented by Infinite.
	Value int
	// Infinite marks a proven dead end: Value is not meaningful.
	Infinite bool
	// Preferred is the ordered set of operators (drawn from ctx.
	// Applicable) this evaluator recommends as preferred for ctx's
	// state, spec.md §3's `EvaluationResult.preferred: list<OperatorID>`.
	// Only meaningful when Evaluate was called with a populated
	// Context.Applicable; combinators (Sum/Max/Weighted) union their
	// children's lists rather than picking one.
	Preferred []task.OperatorID
	// CountEvaluation is true if this call should count toward the
	// engine's "heuristic evaluations" statistic (false for
	// cache-satisfied lookups on evaluators that cache estimates).
	CountEvaluation bool
}

// Infinite is the sentinel cost-to-go value for a proven dead end.
const Infinite = -1

// Evaluator estimates a value for a search node. Implementations may be
// task-specific heuristics, or structural combinators (sum, max,
// weight) over other Evaluators.
type Evaluator interface {
	// Evaluate computes a Result for ctx.
	Evaluate(ctx Context) Result
	// DeadEndsAreReliable reports whether Infinite results from this
	// evaluator are guaranteed to be true dead ends (no path to goal
	// exists), as opposed to merely "this heuristic can't tell."
	DeadEndsAreReliable() bool
	// DoesCacheEstimates reports whether this evaluator internally
	// caches per-state results (informational; infrastructure/cache is
	// the concrete backing when true).
	DoesCacheEstimates() bool
}

// PathDependent is implemented by evaluators whose estimate depends on
// the path taken to reach a state, not just the state itself (e.g. a
// landmark counter). The engine calls these hooks outside the normal
// Evaluate call, once per transition actually taken in the search.
type PathDependent interface {
	Evaluator
	// NotifyInitialState is called exactly once, for the task's initial state.
	NotifyInitialState(ctx Context)
	// NotifyTransition is called when the engine commits to expanding
	// parent via op to reach ctx's state.
	NotifyTransition(parent Context, op task.OperatorID, ctx Context)
}
