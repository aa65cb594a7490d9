// Package plan holds the Plan result type and its text rendering,
// matching spec.md §3 Plan and §6 plan output.
package plan

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

// Plan is a solution: an ordered sequence of operators and the total
// cost of applying them from the task's initial state.
type Plan struct {
	Operators []task.OperatorID
	Cost      int
}

// Empty reports whether the plan has no steps (a solved task whose
// initial state is already the goal).
func (p Plan) Empty() bool {
	return len(p.Operators) == 0
}

// Format renders the plan as one operator-name line per step plus a
// trailing cost comment, matching spec.md §6's plan-output grammar.
func Format(tk *task.Task, p Plan) string {
	var b strings.Builder
	for _, id := range p.Operators {
		fmt.Fprintf(&b, "%s\n", tk.Operators[id].Name)
	}
	fmt.Fprintf(&b, "; cost = %d\n", p.Cost)
	return b.String()
}

// Verify recomputes the plan's cost from scratch and checks every
// operator is applicable in sequence and the final state satisfies the
// goal, matching spec.md §8's plan-validity property. It returns a
// non-nil error describing the first violation found.
func Verify(tk *task.Task, p Plan) error {
	state := tk.Initial.Clone()
	if len(tk.Axioms) > 0 {
		state = tk.EvaluateAxioms(state)
	}

	cost := 0
	for _, id := range p.Operators {
		if int(id) < 0 || int(id) >= len(tk.Operators) {
			return fmt.Errorf("%w: operator id %d out of range", ErrInvalidPlan, id)
		}
		op := tk.Operators[id]
		if !op.IsApplicable(state) {
			return fmt.Errorf("%w: operator %q not applicable", ErrInvalidPlan, op.Name)
		}
		state = op.Apply(state)
		if len(tk.Axioms) > 0 {
			state = tk.EvaluateAxioms(state)
		}
		cost += task.AdjustedCost(op, tk.Metric, task.CostTypeNormal)
	}

	if !tk.IsGoal(state) {
		return fmt.Errorf("%w: final state does not satisfy the goal", ErrInvalidPlan)
	}
	if cost != p.Cost {
		return fmt.Errorf("%w: recomputed cost %d does not match reported cost %d", ErrInvalidPlan, cost, p.Cost)
	}
	return nil
}
