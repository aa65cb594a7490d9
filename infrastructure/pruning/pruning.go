// Package pruning defines the PruningMethod contract the eager search
// loop consults before generating successors (spec.md §1, listed as an
// external collaborator alongside parsing and specific heuristics), and
// ships the trivial null implementation.
package pruning

import "github.com/felixgeelhaar/planner-go/domain/task"

// Method narrows the operators considered applicable in state before
// the registry generates successors for them. A real implementation
// (e.g. a stubborn-sets or landmark-based pruner) is out of scope per
// spec.md §1; this package only fixes the seam it would bind through.
type Method interface {
	// Prune returns the subset of applicable (operators already checked
	// against state's precondition) that should actually be expanded.
	Prune(tk *task.Task, state task.State, applicable []task.OperatorID) []task.OperatorID
}

// Null never prunes: every applicable operator is expanded. It is the
// default when no pruning method is configured.
type Null struct{}

// Prune implements Method.
func (Null) Prune(_ *task.Task, _ task.State, applicable []task.OperatorID) []task.OperatorID {
	return applicable
}

var _ Method = Null{}
