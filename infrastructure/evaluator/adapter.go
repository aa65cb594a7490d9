package evaluator

import "github.com/felixgeelhaar/planner-go/domain/evaluation"

// HeuristicFunc estimates the cost from state to the goal. It returns
// (value, false) when it cannot tell and (anything, true) for a proven
// dead end — mirroring the signature external heuristics (LM-cut,
// potentials, merge-and-shrink) would implement.
type HeuristicFunc func(ctx evaluation.Context) (value int, deadEnd bool)

// HeuristicAdapter is the documented contract point real heuristics
// bind through (spec.md §1 names LM-cut/potentials/merge-and-shrink as
// out-of-scope external collaborators; this is where they would plug
// in). reliable records whether the adapted heuristic's dead-end claims
// are trustworthy.
type HeuristicAdapter struct {
	Fn       HeuristicFunc
	Reliable bool
	Caches   bool
}

// Evaluate implements evaluation.Evaluator.
func (h HeuristicAdapter) Evaluate(ctx evaluation.Context) evaluation.Result {
	value, deadEnd := h.Fn(ctx)
	if deadEnd {
		return evaluation.Result{Value: evaluation.Infinite, Infinite: true, CountEvaluation: true}
	}
	return evaluation.Result{Value: value, CountEvaluation: true}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (h HeuristicAdapter) DeadEndsAreReliable() bool { return h.Reliable }

// DoesCacheEstimates implements evaluation.Evaluator.
func (h HeuristicAdapter) DoesCacheEstimates() bool { return h.Caches }

// ZeroAdapter is the trivial admissible heuristic: always 0, never
// claims a dead end. Sufficient for scenarios that only need a valid
// (if uninformative) h() term, e.g. S1/S2/S8 from spec.md §8.
func ZeroAdapter() HeuristicAdapter {
	return HeuristicAdapter{
		Fn: func(evaluation.Context) (int, bool) {
			return 0, false
		},
		Reliable: false,
		Caches:   false,
	}
}
