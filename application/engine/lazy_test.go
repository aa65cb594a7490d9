package engine

import (
	"context"
	"slices"
	"testing"

	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

// staleAfterExpand is a lazy, path-dependent evaluator: it reports a
// fixed estimate for every state until its configured ancestor is
// expanded, at which point the configured target state goes stale and
// reports Infinite from then on. It models an evaluator whose estimate
// depends on search progress already made (e.g. a landmark counter)
// rather than on the state alone.
type staleAfterExpand struct {
	ancestor task.State
	target   task.State
	stale    bool
}

func (s *staleAfterExpand) Evaluate(ctx evaluation.Context) evaluation.Result {
	if s.stale && slices.Equal(ctx.State, s.target) {
		return evaluation.Result{Value: evaluation.Infinite, Infinite: true}
	}
	return evaluation.Result{Value: 5}
}

func (s *staleAfterExpand) DeadEndsAreReliable() bool { return true }
func (s *staleAfterExpand) DoesCacheEstimates() bool  { return true }

func (s *staleAfterExpand) NotifyInitialState(evaluation.Context) {}

func (s *staleAfterExpand) NotifyTransition(parent evaluation.Context, _ task.OperatorID, _ evaluation.Context) {
	if slices.Equal(parent.State, s.ancestor) {
		s.stale = true
	}
}

// lazyReevalTask builds a task with two routes out of the initial
// state: a cheap one through "ancestor" and an expensive one straight
// to "target". The open list pops ancestor first (lower g), so by the
// time target is popped its cached estimate has gone stale.
func lazyReevalTask() *task.Task {
	return &task.Task{
		Variables: []task.VariableInfo{
			{Name: "s", DomainSize: 5, AxiomLayer: task.NotAxiom},
		},
		Initial: task.State{0},
		Goal:    []task.Fact{{Var: 0, Val: 3}},
		Operators: []task.Operator{
			{
				Name:         "init-to-ancestor",
				Precondition: []task.Fact{{Var: 0, Val: 0}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 0, Val: 1}}},
				Cost:         1,
			},
			{
				Name:         "init-to-target",
				Precondition: []task.Fact{{Var: 0, Val: 0}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 0, Val: 2}}},
				Cost:         2,
			},
			{
				Name:         "expand-ancestor",
				Precondition: []task.Fact{{Var: 0, Val: 1}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 0, Val: 4}}},
				Cost:         1,
			},
		},
	}
}

func TestEngine_Run_LazyReevaluationMarksStaleNodeDead(t *testing.T) {
	t.Parallel()

	eval := &staleAfterExpand{ancestor: task.State{1}, target: task.State{2}}

	eng, err := NewEngine(Params{
		Task:          lazyReevalTask(),
		OpenList:      newSingleG(),
		LazyEvaluator: eval,
		PathDependent: []evaluation.PathDependent{eval},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// target (g=2) is never actually reachable to the goal, but what
	// this test cares about is *how* it gets dropped: the loop must
	// detect the stale estimate at pop time and mark it dead rather
	// than expanding it.
	if res.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want Failed (err=%v)", res.Outcome, res.Err)
	}
	if res.Stats.DeadEnds == 0 {
		t.Error("Stats.DeadEnds = 0, want the stale node to have been marked dead")
	}
	// init, ancestor, and ancestor's successor all expand; target does
	// not, since it is caught and killed by lazy re-evaluation at pop
	// time instead.
	if res.Stats.Expanded != 3 {
		t.Errorf("Stats.Expanded = %d, want 3 (init, ancestor, ancestor's successor; not target)", res.Stats.Expanded)
	}
}
