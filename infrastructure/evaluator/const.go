// Package evaluator implements the evaluator composition tree from
// spec.md §4.4: leaf evaluators (const, g, a heuristic adapter) and
// structural combinators (weighted, sum, max, pref) over
// domain/evaluation.Evaluator, plus the path-dependent notify-hook
// demonstration evaluator described in SPEC_FULL.md §4.4.
package evaluator

import "github.com/felixgeelhaar/planner-go/domain/evaluation"

// Const always returns the same value, useful for testing open-list
// ordering independent of any real heuristic.
type Const struct {
	Value int
}

// Evaluate implements evaluation.Evaluator.
func (c Const) Evaluate(evaluation.Context) evaluation.Result {
	return evaluation.Result{Value: c.Value, CountEvaluation: true}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (c Const) DeadEndsAreReliable() bool { return false }

// DoesCacheEstimates implements evaluation.Evaluator.
func (c Const) DoesCacheEstimates() bool { return false }
