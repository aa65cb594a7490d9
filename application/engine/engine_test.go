package engine

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/policy"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/evaluator"
	"github.com/felixgeelhaar/planner-go/infrastructure/openlist"
)

// twoStepTask builds a tiny two-variable task solved by exactly two
// operators: turn on var0, then (once var0 is on) turn on var1.
func twoStepTask() *task.Task {
	return &task.Task{
		Variables: []task.VariableInfo{
			{Name: "v0", DomainSize: 2, AxiomLayer: task.NotAxiom},
			{Name: "v1", DomainSize: 2, AxiomLayer: task.NotAxiom},
		},
		Initial: task.State{0, 0},
		Goal:    []task.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}},
		Operators: []task.Operator{
			{
				Name:    "turn-on-v0",
				Effects: []task.Effect{{Fact: task.Fact{Var: 0, Val: 1}}},
				Cost:    1,
			},
			{
				Name:         "turn-on-v1",
				Precondition: []task.Fact{{Var: 0, Val: 1}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 1, Val: 1}}},
				Cost:         1,
			},
		},
	}
}

func newSingleG() *Single {
	return &Single{Eval: evaluator.G{}, List: openlist.NewBestFirst()}
}

func TestEngine_Run_Solved(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: newSingleG(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeSolved {
		t.Fatalf("Outcome = %v, want Solved (err=%v)", res.Outcome, res.Err)
	}
	if res.Plan.Cost != 2 {
		t.Errorf("Plan.Cost = %d, want 2", res.Plan.Cost)
	}
	if len(res.Plan.Operators) != 2 {
		t.Fatalf("len(Plan.Operators) = %d, want 2", len(res.Plan.Operators))
	}
	if res.Stats.Expanded == 0 {
		t.Error("Stats.Expanded = 0, want at least one expansion")
	}
}

func TestEngine_Run_InitialStateAlreadyGoal(t *testing.T) {
	t.Parallel()

	tk := twoStepTask()
	tk.Initial = task.State{1, 1}

	eng, err := NewEngine(Params{
		Task:     tk,
		OpenList: newSingleG(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeSolved {
		t.Fatalf("Outcome = %v, want Solved", res.Outcome)
	}
	if len(res.Plan.Operators) != 0 || res.Plan.Cost != 0 {
		t.Errorf("Plan = %+v, want empty zero-cost plan", res.Plan)
	}
}

func TestEngine_Run_NoPathToGoalFails(t *testing.T) {
	t.Parallel()

	tk := twoStepTask()
	// Drop the operator that turns v0 on: the goal is now unreachable.
	tk.Operators = tk.Operators[1:]

	eng, err := NewEngine(Params{
		Task:     tk,
		OpenList: newSingleG(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want Failed", res.Outcome)
	}
}

type infiniteEval struct{}

func (infiniteEval) Evaluate(evaluation.Context) evaluation.Result {
	return evaluation.Result{Value: evaluation.Infinite, Infinite: true}
}
func (infiniteEval) DeadEndsAreReliable() bool { return true }
func (infiniteEval) DoesCacheEstimates() bool  { return false }

func TestEngine_Run_InitialStateDeadEndFails(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: &Single{Eval: infiniteEval{}, List: openlist.NewBestFirst()},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want Failed", res.Outcome)
	}
	if res.Stats.DeadEnds == 0 {
		t.Error("Stats.DeadEnds = 0, want at least one recorded dead end")
	}
}

func TestEngine_Run_BoundExcludesExpensivePlans(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: newSingleG(),
		Bound:    1, // the two-operator plan costs 2, so it must be excluded
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want Failed", res.Outcome)
	}
}

func TestEngine_Run_BudgetExhaustionReportsOutOfMemory(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: newSingleG(),
		Budget:   policy.NewBudget(map[string]int{"expanded": 1}),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeOutOfMemory {
		t.Fatalf("Outcome = %v, want OutOfMemory", res.Outcome)
	}
}

func TestEngine_Run_MaxTimeReportsTimeout(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: newSingleG(),
		MaxTime:  1, // effectively already elapsed by the time Run checks it
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeTimeout {
		t.Fatalf("Outcome = %v, want Timeout", res.Outcome)
	}
}

func TestEngine_Run_ContextCancelledReportsFailed(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng, err := NewEngine(Params{
		Task:     twoStepTask(),
		OpenList: newSingleG(),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("Outcome = %v, want Failed", res.Outcome)
	}
}

// reopenTask builds a task where a shared state (a=1,b=0) is first
// reached by an expensive direct operator, closed, and only afterward
// reached again more cheaply through a detour — forcing the engine to
// reopen it once a FIFO (evaluator-blind) open list happens to expand
// the expensive route first.
func reopenTask() *task.Task {
	return &task.Task{
		Variables: []task.VariableInfo{
			{Name: "a", DomainSize: 2, AxiomLayer: task.NotAxiom},
			{Name: "b", DomainSize: 2, AxiomLayer: task.NotAxiom},
			{Name: "g", DomainSize: 2, AxiomLayer: task.NotAxiom},
		},
		Initial: task.State{0, 0, 0},
		Goal:    []task.Fact{{Var: 2, Val: 1}},
		Metric:  true,
		Operators: []task.Operator{
			{
				Name:         "direct-to-shared",
				Precondition: []task.Fact{{Var: 0, Val: 0}, {Var: 1, Val: 0}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 0, Val: 1}}},
				Cost:         5,
			},
			{
				Name:         "to-detour",
				Precondition: []task.Fact{{Var: 0, Val: 0}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 1, Val: 1}}},
				Cost:         1,
			},
			{
				Name:         "detour-to-shared",
				Precondition: []task.Fact{{Var: 1, Val: 1}},
				Effects: []task.Effect{
					{Fact: task.Fact{Var: 0, Val: 1}},
					{Fact: task.Fact{Var: 1, Val: 0}},
				},
				Cost: 1,
			},
			{
				Name:         "finish",
				Precondition: []task.Fact{{Var: 0, Val: 1}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 2, Val: 1}}},
				Cost:         1,
			},
		},
	}
}

func TestEngine_Run_ReopenClosedFindsCheaperPlan(t *testing.T) {
	t.Parallel()

	// A FIFO open list (an evaluator that ignores G entirely) expands the
	// shared state, reached by the expensive direct route, before the
	// cheap detour reaches it, so the shared state is already closed when
	// the cheaper path turns up and ReopenClosed reopens it.
	eng, err := NewEngine(Params{
		Task:         reopenTask(),
		OpenList:     &Single{Eval: evaluator.Const{Value: 0}, List: openlist.NewBestFirst()},
		ReopenClosed: true,
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeSolved {
		t.Fatalf("Outcome = %v, want Solved (err=%v)", res.Outcome, res.Err)
	}
	if res.Plan.Cost != 3 {
		t.Errorf("Plan.Cost = %d, want 3 (to-detour + detour-to-shared + finish)", res.Plan.Cost)
	}
	if res.Stats.Reopened == 0 {
		t.Error("Stats.Reopened = 0, want the shared state to have been reopened")
	}
}

func TestNewEngine_RequiresTaskAndOpenList(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(Params{OpenList: newSingleG()}); err == nil {
		t.Error("NewEngine with nil Task: want error, got nil")
	}
	if _, err := NewEngine(Params{Task: twoStepTask()}); err == nil {
		t.Error("NewEngine with nil OpenList: want error, got nil")
	}
}

func TestNewEngine_GeneratesRunIDWhenEmpty(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{Task: twoStepTask(), OpenList: newSingleG()})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if eng.params.RunID == "" {
		t.Error("RunID was not generated")
	}
}

func TestEngine_Run_RecordsDuration(t *testing.T) {
	t.Parallel()

	eng, err := NewEngine(Params{Task: twoStepTask(), OpenList: newSingleG()})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Duration < 0 || res.Duration > time.Minute {
		t.Errorf("Duration = %v, want a small positive value", res.Duration)
	}
}
