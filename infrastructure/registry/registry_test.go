package registry

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

func TestRegistry_Intern_DedupesEqualStates(t *testing.T) {
	t.Parallel()

	r := New(0)

	id1, isNew1, err := r.Intern(task.State{1, 2, 3})
	if err != nil || !isNew1 {
		t.Fatalf("first Intern() = (%v, %v, %v)", id1, isNew1, err)
	}

	id2, isNew2, err := r.Intern(task.State{1, 2, 3})
	if err != nil {
		t.Fatalf("second Intern() error = %v", err)
	}
	if isNew2 {
		t.Error("second Intern() of an equal state reported isNew = true")
	}
	if id1 != id2 {
		t.Errorf("id1=%v id2=%v, want equal for equal states", id1, id2)
	}

	id3, isNew3, err := r.Intern(task.State{1, 2, 4})
	if err != nil || !isNew3 || id3 == id1 {
		t.Errorf("distinct state did not intern distinctly: id3=%v isNew3=%v", id3, isNew3)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := New(0)
	id, _, _ := r.Intern(task.State{5, 6})

	got := r.Lookup(id)
	if got[0] != 5 || got[1] != 6 {
		t.Errorf("Lookup() = %v, want [5 6]", got)
	}
}

func TestRegistry_Intern_OutOfMemory(t *testing.T) {
	t.Parallel()

	r := New(1)
	if _, _, err := r.Intern(task.State{1}); err != nil {
		t.Fatalf("first Intern() error = %v", err)
	}

	_, _, err := r.Intern(task.State{2})
	if !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Intern() past ceiling = %v, want ErrOutOfMemory", err)
	}
}

func TestRegistry_Successors(t *testing.T) {
	t.Parallel()

	tk := &task.Task{
		Operators: []task.Operator{
			{
				Name:         "flip",
				Precondition: []task.Fact{{Var: 0, Val: 0}},
				Effects:      []task.Effect{{Fact: task.Fact{Var: 0, Val: 1}}},
				Cost:         2,
			},
			{
				Name:         "noop-inapplicable",
				Precondition: []task.Fact{{Var: 0, Val: 9}},
			},
		},
		Metric: true,
	}

	r := New(0)
	parentID, _, _ := r.Intern(task.State{0})

	succs, err := r.Successors(tk, parentID)
	if err != nil {
		t.Fatalf("Successors() error = %v", err)
	}
	if len(succs) != 1 {
		t.Fatalf("Successors() returned %d entries, want 1", len(succs))
	}
	if succs[0].Cost != 2 || succs[0].Op != 0 {
		t.Errorf("succs[0] = %+v, want Op=0 Cost=2", succs[0])
	}
	if got := r.Lookup(succs[0].StateID); got[0] != 1 {
		t.Errorf("successor state = %v, want [1]", got)
	}
}
