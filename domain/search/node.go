// Package search holds the SearchNode status machine and the
// SearchSpace that owns one node per registered state, matching
// spec.md §4.2. It depends only on domain/task's StateID/OperatorID,
// never on the open-list or evaluator machinery built on top of it.
package search

import "github.com/felixgeelhaar/planner-go/domain/task"

// NodeStatus is the lifecycle state of one SearchNode.
type NodeStatus int

const (
	// StatusNew marks a node that has never been inserted into an open list.
	StatusNew NodeStatus = iota
	// StatusOpen marks a node currently pending expansion.
	StatusOpen
	// StatusClosed marks a node that has been expanded.
	StatusClosed
	// StatusDeadEnd marks a node proven to have no path to the goal.
	StatusDeadEnd
)

// String renders the status for logging.
func (s NodeStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	case StatusDeadEnd:
		return "dead_end"
	default:
		return "unknown"
	}
}

// Node is one state's entry in the search space: its lifecycle status,
// the open-list bookkeeping cost G, the real accumulated cost RealG
// along the path currently recorded, and the parent edge that produced
// it. Transition methods validate the current status before mutating
// and return ErrIllegalTransition on violation; callers treat that as a
// fatal programming error (spec.md §9), never a recoverable condition.
type Node struct {
	State    task.StateID
	Status   NodeStatus
	G        int
	RealG    int
	Parent   task.StateID
	ParentOp task.OperatorID
}

// NewNode creates a fresh, unvisited node for stateID.
func NewNode(stateID task.StateID) *Node {
	return &Node{
		State:    stateID,
		Status:   StatusNew,
		G:        0,
		RealG:    0,
		Parent:   task.NoStateID,
		ParentOp: task.NoOperatorID,
	}
}

// Open transitions NEW -> OPEN, recording the path that first reached
// this node.
func (n *Node) Open(g int, parent task.StateID, parentOp task.OperatorID) error {
	switch n.Status {
	case StatusNew:
		n.Status = StatusOpen
		n.G = g
		n.RealG = g
		n.Parent = parent
		n.ParentOp = parentOp
		return nil
	default:
		return ErrIllegalTransition
	}
}

// Close transitions OPEN -> CLOSED, marking the node expanded.
func (n *Node) Close() error {
	switch n.Status {
	case StatusOpen:
		n.Status = StatusClosed
		return nil
	default:
		return ErrIllegalTransition
	}
}

// Reopen transitions CLOSED -> OPEN when a cheaper path to this node is
// found after it was already expanded, updating G/RealG and the parent
// edge to the cheaper path.
func (n *Node) Reopen(g int, parent task.StateID, parentOp task.OperatorID) error {
	switch n.Status {
	case StatusClosed:
		n.Status = StatusOpen
		n.G = g
		n.RealG = g
		n.Parent = parent
		n.ParentOp = parentOp
		return nil
	default:
		return ErrIllegalTransition
	}
}

// UpdateParent rewrites the recorded path to a cheaper one without
// changing Status, used when reopen_closed is disabled and only the
// traced plan (not the search order) should reflect the cheaper path.
func (n *Node) UpdateParent(g int, parent task.StateID, parentOp task.OperatorID) error {
	switch n.Status {
	case StatusOpen, StatusClosed:
		n.G = g
		n.RealG = g
		n.Parent = parent
		n.ParentOp = parentOp
		return nil
	default:
		return ErrIllegalTransition
	}
}

// MarkDeadEnd transitions NEW or OPEN -> DEAD_END.
func (n *Node) MarkDeadEnd() error {
	switch n.Status {
	case StatusNew, StatusOpen:
		n.Status = StatusDeadEnd
		return nil
	default:
		return ErrIllegalTransition
	}
}
