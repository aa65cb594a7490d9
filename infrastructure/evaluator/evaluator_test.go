package evaluator

import (
	"testing"

	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

func TestConst(t *testing.T) {
	t.Parallel()
	got := Const{Value: 42}.Evaluate(evaluation.Context{})
	if got.Value != 42 {
		t.Errorf("Value = %d, want 42", got.Value)
	}
}

func TestG(t *testing.T) {
	t.Parallel()
	got := G{}.Evaluate(evaluation.Context{G: 17})
	if got.Value != 17 {
		t.Errorf("Value = %d, want 17", got.Value)
	}
}

func TestWeighted(t *testing.T) {
	t.Parallel()

	w := Weighted{Inner: Const{Value: 3}, Weight: 2}
	got := w.Evaluate(evaluation.Context{})
	if got.Value != 6 {
		t.Errorf("Value = %d, want 6", got.Value)
	}

	infinite := Weighted{Inner: Const{Value: evaluation.Infinite}, Weight: 2}
	r := infinite.Evaluate(evaluation.Context{})
	if !r.Infinite {
		t.Error("Infinite weighted result lost its Infinite flag")
	}
}

type infiniteEval struct{}

func (infiniteEval) Evaluate(evaluation.Context) evaluation.Result {
	return evaluation.Result{Value: evaluation.Infinite, Infinite: true}
}
func (infiniteEval) DeadEndsAreReliable() bool { return true }
func (infiniteEval) DoesCacheEstimates() bool  { return false }

func TestSum(t *testing.T) {
	t.Parallel()

	s := Sum{Inner: []evaluation.Evaluator{Const{Value: 2}, Const{Value: 3}}}
	got := s.Evaluate(evaluation.Context{})
	if got.Value != 5 {
		t.Errorf("Value = %d, want 5", got.Value)
	}

	withDeadEnd := Sum{Inner: []evaluation.Evaluator{Const{Value: 2}, infiniteEval{}}}
	r := withDeadEnd.Evaluate(evaluation.Context{})
	if !r.Infinite {
		t.Error("Sum with an infinite term did not report Infinite")
	}
}

func TestSum_DeadEndsAreReliable(t *testing.T) {
	t.Parallel()

	allReliable := Sum{Inner: []evaluation.Evaluator{infiniteEval{}, infiniteEval{}}}
	if !allReliable.DeadEndsAreReliable() {
		t.Error("Sum of reliable terms should be reliable")
	}

	mixed := Sum{Inner: []evaluation.Evaluator{infiniteEval{}, Const{Value: 1}}}
	if mixed.DeadEndsAreReliable() {
		t.Error("Sum with an unreliable term should not be reliable")
	}
}

func TestMax(t *testing.T) {
	t.Parallel()

	m := Max{Inner: []evaluation.Evaluator{Const{Value: 2}, Const{Value: 9}, Const{Value: 5}}}
	got := m.Evaluate(evaluation.Context{})
	if got.Value != 9 {
		t.Errorf("Value = %d, want 9", got.Value)
	}
}

func TestPref_WithNoOperatorsPrefersEveryApplicable(t *testing.T) {
	t.Parallel()

	p := Pref{Inner: Const{Value: 4}}
	ctx := evaluation.Context{Applicable: []task.OperatorID{0, 1, 2}}
	got := p.Evaluate(ctx)
	if len(got.Preferred) != 3 {
		t.Errorf("Preferred = %v, want all of ctx.Applicable", got.Preferred)
	}
	if got.Value != 4 {
		t.Errorf("Value = %d, want 4", got.Value)
	}
}

func TestPref_WithOperatorsDiscriminatesSubset(t *testing.T) {
	t.Parallel()

	p := Pref{Inner: Const{Value: 4}, Operators: []task.OperatorID{1}}
	ctx := evaluation.Context{Applicable: []task.OperatorID{0, 1, 2}}
	got := p.Evaluate(ctx)
	if len(got.Preferred) != 1 || got.Preferred[0] != 1 {
		t.Errorf("Preferred = %v, want [1]", got.Preferred)
	}
}

func TestZeroAdapter(t *testing.T) {
	t.Parallel()

	z := ZeroAdapter()
	got := z.Evaluate(evaluation.Context{})
	if got.Value != 0 || got.Infinite {
		t.Errorf("ZeroAdapter result = %+v, want Value=0 Infinite=false", got)
	}
	if z.DeadEndsAreReliable() {
		t.Error("ZeroAdapter should never claim reliable dead ends")
	}
}

func TestPathCost_AccumulatesAlongTransitions(t *testing.T) {
	t.Parallel()

	tk := &task.Task{
		Operators: []task.Operator{{Name: "a", Cost: 3}, {Name: "b", Cost: 4}},
		Metric:    true,
	}
	pc := NewPathCost(tk)

	root := evaluation.Context{StateID: 0, G: 0}
	pc.NotifyInitialState(root)

	mid := evaluation.Context{StateID: 1, G: 3}
	pc.NotifyTransition(root, task.OperatorID(0), mid)

	goal := evaluation.Context{StateID: 2, G: 7}
	pc.NotifyTransition(mid, task.OperatorID(1), goal)

	got := pc.Evaluate(goal)
	if got.Value != 7 {
		t.Errorf("accumulated path cost = %d, want 7", got.Value)
	}
}

func TestPathCost_UnvisitedFallsBackToG(t *testing.T) {
	t.Parallel()

	pc := NewPathCost(&task.Task{})
	got := pc.Evaluate(evaluation.Context{StateID: 9, G: 12})
	if got.Value != 12 {
		t.Errorf("fallback Value = %d, want 12", got.Value)
	}
}
