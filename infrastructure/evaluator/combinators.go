package evaluator

import (
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

// unionPreferred merges b into a, preserving a's order and appending
// any of b's ids not already present (spec.md §4.6 step 4's ordered
// set: "first-insertion wins, duplicates ignored").
func unionPreferred(a, b []task.OperatorID) []task.OperatorID {
	if len(b) == 0 {
		return a
	}
	seen := make(map[task.OperatorID]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			a = append(a, id)
		}
	}
	return a
}

// Weighted scales Inner's value by Weight, the `weight(h, W)` feature
// from spec.md §4.4 (WA* is `sum(g(), weight(h(), W))`).
type Weighted struct {
	Inner  evaluation.Evaluator
	Weight int
}

// Evaluate implements evaluation.Evaluator.
func (w Weighted) Evaluate(ctx evaluation.Context) evaluation.Result {
	r := w.Inner.Evaluate(ctx)
	if r.Infinite || r.Value == evaluation.Infinite {
		r.Value = evaluation.Infinite
		r.Infinite = true
		return r
	}
	r.Value *= w.Weight
	return r
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (w Weighted) DeadEndsAreReliable() bool { return w.Inner.DeadEndsAreReliable() }

// DoesCacheEstimates implements evaluation.Evaluator.
func (w Weighted) DoesCacheEstimates() bool { return w.Inner.DoesCacheEstimates() }

// Sum adds every Inner evaluator's value. The result is Infinite if any
// inner evaluator reports Infinite, and reliable only if every inner
// evaluator's dead ends are reliable — a sum can't un-prove a dead end
// one of its terms proved.
type Sum struct {
	Inner []evaluation.Evaluator
}

// Evaluate implements evaluation.Evaluator.
func (s Sum) Evaluate(ctx evaluation.Context) evaluation.Result {
	total := 0
	var preferred []task.OperatorID
	count := false
	for _, e := range s.Inner {
		r := e.Evaluate(ctx)
		count = count || r.CountEvaluation
		preferred = unionPreferred(preferred, r.Preferred)
		if r.Infinite {
			return evaluation.Result{Value: evaluation.Infinite, Infinite: true, Preferred: preferred, CountEvaluation: count}
		}
		total += r.Value
	}
	return evaluation.Result{Value: total, Preferred: preferred, CountEvaluation: count}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (s Sum) DeadEndsAreReliable() bool {
	for _, e := range s.Inner {
		if !e.DeadEndsAreReliable() {
			return false
		}
	}
	return true
}

// DoesCacheEstimates implements evaluation.Evaluator.
func (s Sum) DoesCacheEstimates() bool {
	for _, e := range s.Inner {
		if e.DoesCacheEstimates() {
			return true
		}
	}
	return false
}

// Max takes the largest of every Inner evaluator's value, the `max(...)`
// feature from spec.md §4.4: combining admissible heuristics with max
// preserves admissibility.
type Max struct {
	Inner []evaluation.Evaluator
}

// Evaluate implements evaluation.Evaluator.
func (m Max) Evaluate(ctx evaluation.Context) evaluation.Result {
	best := 0
	haveBest := false
	var preferred []task.OperatorID
	count := false
	for _, e := range m.Inner {
		r := e.Evaluate(ctx)
		count = count || r.CountEvaluation
		preferred = unionPreferred(preferred, r.Preferred)
		if r.Infinite {
			return evaluation.Result{Value: evaluation.Infinite, Infinite: true, Preferred: preferred, CountEvaluation: count}
		}
		if !haveBest || r.Value > best {
			best = r.Value
			haveBest = true
		}
	}
	return evaluation.Result{Value: best, Preferred: preferred, CountEvaluation: count}
}

// DeadEndsAreReliable implements evaluation.Evaluator. Max can report
// Infinite because ANY one inner evaluator proved it, so the claim is
// only trustworthy if every inner evaluator's dead ends are reliable.
func (m Max) DeadEndsAreReliable() bool {
	for _, e := range m.Inner {
		if !e.DeadEndsAreReliable() {
			return false
		}
	}
	return true
}

// DoesCacheEstimates implements evaluation.Evaluator.
func (m Max) DoesCacheEstimates() bool {
	for _, e := range m.Inner {
		if e.DoesCacheEstimates() {
			return true
		}
	}
	return false
}

// Pref passes Inner's value through unchanged but additionally
// populates Preferred from ctx.Applicable, the `pref(h)` feature from
// spec.md §4.4 used as a preferred-op evaluator (spec.md §4.6 step 4).
// Operators, when non-empty, restricts the recommendation to that
// subset of ctx.Applicable (`pref(h, operators=[...])`); an empty
// Operators recommends every applicable operator, matching a heuristic
// with no opinion on which of its applicable operators are "helpful."
type Pref struct {
	Inner     evaluation.Evaluator
	Operators []task.OperatorID
}

// Evaluate implements evaluation.Evaluator.
func (p Pref) Evaluate(ctx evaluation.Context) evaluation.Result {
	r := p.Inner.Evaluate(ctx)
	if len(p.Operators) == 0 {
		r.Preferred = append([]task.OperatorID(nil), ctx.Applicable...)
		return r
	}
	want := make(map[task.OperatorID]bool, len(p.Operators))
	for _, id := range p.Operators {
		want[id] = true
	}
	var preferred []task.OperatorID
	for _, id := range ctx.Applicable {
		if want[id] {
			preferred = append(preferred, id)
		}
	}
	r.Preferred = preferred
	return r
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (p Pref) DeadEndsAreReliable() bool { return p.Inner.DeadEndsAreReliable() }

// DoesCacheEstimates implements evaluation.Evaluator.
func (p Pref) DoesCacheEstimates() bool { return p.Inner.DoesCacheEstimates() }
