// Package task is the STRIPS-like multi-valued planning task data model:
// Facts, States, Operators, Axioms, and the Task that bundles them.
// It has no knowledge of search; it is the read-only input the search
// core (domain/search, application/engine) operates over.
package task

// Fact is one variable/value assignment, (var, val).
type Fact struct {
	Var int
	Val int
}

// State is a fixed-length assignment of every task variable to a value.
// Index i holds the value of variable i.
type State []int

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Has reports whether the state satisfies fact.
func (s State) Has(f Fact) bool {
	return f.Var >= 0 && f.Var < len(s) && s[f.Var] == f.Val
}

// HasAll reports whether the state satisfies every fact in facts.
func (s State) HasAll(facts []Fact) bool {
	for _, f := range facts {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// StateID is a dense identifier assigned by a state registry
// (infrastructure/registry) to a registered State.
type StateID int

// NoStateID marks the absence of a state, e.g. the root node's parent.
const NoStateID StateID = -1

// OperatorID is a dense identifier for an Operator within Task.Operators.
type OperatorID int

// NoOperatorID marks the absence of an originating operator, e.g. the
// root node's incoming edge.
const NoOperatorID OperatorID = -1

// Effect is one conditional assignment an Operator performs on a
// successor state: Fact is applied only if Condition already holds.
type Effect struct {
	Condition []Fact
	Fact      Fact
}

// Operator is a STRIPS-like action: applicable when Precondition holds,
// producing a successor by applying every Effect whose Condition holds
// in the current state, at the given Cost.
type Operator struct {
	Name         string
	Precondition []Fact
	Effects      []Effect
	Cost         int
}

// IsApplicable reports whether op's precondition is satisfied by state.
func (op Operator) IsApplicable(state State) bool {
	return state.HasAll(op.Precondition)
}

// Apply returns the successor of state under op. The caller must have
// checked IsApplicable; Apply does not re-check the precondition.
// Effects are applied in order against the ORIGINAL state's conditions,
// matching the original implementation's simultaneous-effect semantics:
// a later effect's condition never sees an earlier effect's write.
func (op Operator) Apply(state State) State {
	successor := state.Clone()
	for _, eff := range op.Effects {
		if state.HasAll(eff.Condition) {
			successor[eff.Fact.Var] = eff.Fact.Val
		}
	}
	return successor
}

// Axiom is a derived-variable rule: when Condition holds, Head holds.
// Axioms are stratified into Layer and evaluated layer-by-layer to a
// fixpoint by Task.EvaluateAxioms, mirroring the original AxiomEvaluator.
type Axiom struct {
	Condition []Fact
	Head      Fact
	Layer     int
}

// VariableInfo describes one task variable.
type VariableInfo struct {
	Name string
	// DomainSize is the number of values the variable can take, 0..DomainSize-1.
	DomainSize int
	// AxiomLayer is the stratification layer for a derived variable, or
	// NotAxiom for a variable that no axiom ever derives.
	AxiomLayer int
}

// NotAxiom marks a VariableInfo as not axiom-derived.
const NotAxiom = -1

// Task is the complete planning problem: the variable schema, mutex
// information, initial state, goal, operators and axioms.
type Task struct {
	Variables   []VariableInfo
	MutexGroups [][]Fact
	Initial     State
	Goal        []Fact
	Operators   []Operator
	Axioms      []Axiom
	// Metric is true when operator costs should be used as-is (the
	// "use-costs" flag); false tasks are unit-cost under CostTypeNormal.
	Metric bool
}

// IsGoal reports whether state satisfies every goal fact.
func (t *Task) IsGoal(state State) bool {
	return state.HasAll(t.Goal)
}

// EvaluateAxioms derives every axiom-controlled variable in state to a
// fixpoint: axioms are applied in non-decreasing Layer order, and within
// a layer repeatedly until no axiom changes the state. Axiom-derived
// variables are reset to their default (value 0) before evaluation,
// matching the original semantics where derived variables hold no
// information from the previous state.
func (t *Task) EvaluateAxioms(state State) State {
	out := state.Clone()
	for i, v := range t.Variables {
		if v.AxiomLayer != NotAxiom {
			out[i] = 0
		}
	}

	maxLayer := 0
	for _, ax := range t.Axioms {
		if ax.Layer > maxLayer {
			maxLayer = ax.Layer
		}
	}

	for layer := 0; layer <= maxLayer; layer++ {
		for {
			changed := false
			for _, ax := range t.Axioms {
				if ax.Layer != layer {
					continue
				}
				if out.HasAll(ax.Condition) && !out.Has(ax.Head) {
					out[ax.Head.Var] = ax.Head.Val
					changed = true
				}
			}
			if !changed {
				break
			}
		}
	}
	return out
}
