package evaluator

import (
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

// PathCost is a supplementary evaluator (SPEC_FULL.md §4.4, grounded on
// the original's LandmarkCountEvaluator stub) demonstrating the
// PathDependent notify hooks: it accumulates the total edge cost
// traversed along the *actual* search path the engine walked to reach
// each state, which is distinct from g() — the open list's bookkeeping
// cost, which can differ from the traced path when reopen_closed is
// disabled (spec.md §9 Open Question).
type PathCost struct {
	Task *task.Task
	cost map[task.StateID]int
}

// NewPathCost creates a PathCost evaluator for tk.
func NewPathCost(tk *task.Task) *PathCost {
	return &PathCost{Task: tk, cost: make(map[task.StateID]int)}
}

// Evaluate implements evaluation.Evaluator.
func (p *PathCost) Evaluate(ctx evaluation.Context) evaluation.Result {
	value, ok := p.cost[ctx.StateID]
	if !ok {
		// Not yet notified for this state: fall back to g(), which is at
		// least a correct lower bound on the first visit.
		value = ctx.G
	}
	return evaluation.Result{Value: value, CountEvaluation: true}
}

// DeadEndsAreReliable implements evaluation.Evaluator.
func (p *PathCost) DeadEndsAreReliable() bool { return false }

// DoesCacheEstimates implements evaluation.Evaluator.
func (p *PathCost) DoesCacheEstimates() bool { return true }

// NotifyInitialState implements evaluation.PathDependent.
func (p *PathCost) NotifyInitialState(ctx evaluation.Context) {
	p.cost[ctx.StateID] = 0
}

// NotifyTransition implements evaluation.PathDependent.
func (p *PathCost) NotifyTransition(parent evaluation.Context, op task.OperatorID, ctx evaluation.Context) {
	parentCost, ok := p.cost[parent.StateID]
	if !ok {
		parentCost = parent.G
	}
	edgeCost := task.AdjustedCost(p.Task.Operators[op], p.Task.Metric, task.CostTypeNormal)
	total := parentCost + edgeCost
	if existing, seen := p.cost[ctx.StateID]; !seen || total < existing {
		p.cost[ctx.StateID] = total
	}
}

var _ evaluation.PathDependent = (*PathCost)(nil)
