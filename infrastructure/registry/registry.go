// Package registry implements the state registry from spec.md §4.1:
// interning of task.State values into dense task.StateID identifiers,
// plus operator-applicability glue for generating successors.
package registry

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

// Registry interns States into dense StateIDs and answers Lookup in
// the other direction. It is single-threaded, matching spec.md §5: no
// internal locking.
type Registry struct {
	byState map[string]task.StateID
	states  []task.State
	maxSize int
}

// New creates an empty registry. maxStates bounds the number of
// distinct states it will intern; zero means unbounded. Exceeding the
// bound returns ErrOutOfMemory instead of growing further, making §5's
// "memory pressure terminates with an out-of-memory exit code"
// testable without exhausting host memory.
func New(maxStates int) *Registry {
	return &Registry{
		byState: make(map[string]task.StateID),
		maxSize: maxStates,
	}
}

// Lookup returns the State registered under id. It panics if id was
// never returned by Intern/GetOrCreate on this registry — a broken
// invariant the caller is responsible for never triggering.
func (r *Registry) Lookup(id task.StateID) task.State {
	if int(id) < 0 || int(id) >= len(r.states) {
		panic(fmt.Sprintf("registry: StateID %d was never interned", id))
	}
	return r.states[id]
}

// Size returns the number of distinct states interned so far.
func (r *Registry) Size() int {
	return len(r.states)
}

// Intern returns the StateID for state, interning it if this is the
// first time it has been seen. The returned bool is true when the
// state was newly interned (not previously present).
func (r *Registry) Intern(state task.State) (task.StateID, bool, error) {
	key := packKey(state)
	if id, ok := r.byState[key]; ok {
		return id, false, nil
	}
	if r.maxSize > 0 && len(r.states) >= r.maxSize {
		return task.NoStateID, false, ErrOutOfMemory
	}
	id := task.StateID(len(r.states))
	r.states = append(r.states, state.Clone())
	r.byState[key] = id
	return id, true, nil
}

// Successors returns the successor StateID, the operator that produced
// it, and that operator's normal-cost-type cost, for every operator in
// tk applicable to the state registered as parentID. Axioms
// are evaluated to a fixpoint on every successor before interning.
func (r *Registry) Successors(tk *task.Task, parentID task.StateID) ([]Successor, error) {
	parent := r.Lookup(parentID)

	var out []Successor
	for i, op := range tk.Operators {
		if !op.IsApplicable(parent) {
			continue
		}
		successor := op.Apply(parent)
		if len(tk.Axioms) > 0 {
			successor = tk.EvaluateAxioms(successor)
		}
		id, _, err := r.Intern(successor)
		if err != nil {
			return nil, err
		}
		out = append(out, Successor{
			StateID: id,
			Op:      task.OperatorID(i),
			Cost:    task.AdjustedCost(op, tk.Metric, task.CostTypeNormal),
		})
	}
	return out, nil
}

// Successor is one operator application from a fixed parent state.
type Successor struct {
	StateID task.StateID
	Op      task.OperatorID
	Cost    int
}

// packKey produces a map key that uniquely identifies a state's value
// vector, using a fixed-width eight-byte encoding per value so no
// collision is possible regardless of domain size.
func packKey(state task.State) string {
	b := make([]byte, 0, 8*len(state))
	for _, v := range state {
		u := uint64(v)
		for i := 0; i < 8; i++ {
			b = append(b, byte(u>>(8*i)))
		}
	}
	return string(b)
}
