package search

import "github.com/felixgeelhaar/planner-go/domain/task"

// Space owns exactly one Node per registered StateID, created lazily on
// first access. It is the bridge between the state registry
// (infrastructure/registry) and the open-list/evaluator machinery: the
// open list enqueues StateIDs, Space answers "have we seen this state,
// and in what status."
type Space struct {
	nodes map[task.StateID]*Node
}

// NewSpace creates an empty search space.
func NewSpace() *Space {
	return &Space{nodes: make(map[task.StateID]*Node)}
}

// Node returns the node for id, creating a StatusNew node on first access.
func (s *Space) Node(id task.StateID) *Node {
	n, ok := s.nodes[id]
	if !ok {
		n = NewNode(id)
		s.nodes[id] = n
	}
	return n
}

// TryNode returns the node for id if it has already been created,
// without creating one.
func (s *Space) TryNode(id task.StateID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Count returns the number of nodes ever created in this space.
func (s *Space) Count() int {
	return len(s.nodes)
}

// TracePlan walks Parent/ParentOp links from goalID back to a node with
// no parent (the root), returning the operator IDs in root-to-goal
// order. It panics if the chain is broken (a missing node), which is a
// programming error: TracePlan is only ever called on a path that was
// actually recorded by Open/Reopen/UpdateParent.
func (s *Space) TracePlan(goalID task.StateID) []task.OperatorID {
	var ops []task.OperatorID
	cur := goalID
	for {
		n, ok := s.nodes[cur]
		if !ok {
			panic("search: TracePlan encountered an unregistered state")
		}
		if n.Parent == task.NoStateID {
			break
		}
		ops = append(ops, n.ParentOp)
		cur = n.Parent
	}
	// reverse into root-to-goal order
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops
}
