package evaluator

import "github.com/felixgeelhaar/planner-go/domain/evaluation"

// G evaluates to the open list's bookkeeping cost so far (ctx.G),
// exactly the "g()" feature from spec.md §4.4 — uniform cost search is
// `g` alone, while greedy best-first search orders by the heuristic
// alone and does not use `g`.
type G struct{}

// Evaluate implements evaluation.Evaluator.
func (G) Evaluate(ctx evaluation.Context) evaluation.Result {
	return evaluation.Result{Value: ctx.G, CountEvaluation: true}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (G) DeadEndsAreReliable() bool { return false }

// DoesCacheEstimates implements evaluation.Evaluator.
func (G) DoesCacheEstimates() bool { return false }
