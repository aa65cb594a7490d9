package builder

import (
	"testing"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

type constBuilder struct {
	value int
}

func (b *constBuilder) Instantiate(tk *task.Task, cm *ComponentMap) (int, error) {
	return GetOrCreate(cm, b, func() (int, error) {
		b.value++ // observe how many times create actually runs
		return b.value, nil
	})
}

func TestGetOrCreate_SharesByIdentity(t *testing.T) {
	t.Parallel()

	cm := NewComponentMap()
	b := &constBuilder{}

	first, err := b.Instantiate(nil, cm)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	second, err := b.Instantiate(nil, cm)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}

	if first != second {
		t.Errorf("first=%d second=%d, want equal (shared component)", first, second)
	}
	if b.value != 1 {
		t.Errorf("create ran %d times, want 1", b.value)
	}
}

func TestGetOrCreate_DistinctBuildersDoNotShare(t *testing.T) {
	t.Parallel()

	cm := NewComponentMap()
	a := &constBuilder{}
	b := &constBuilder{}

	va, _ := a.Instantiate(nil, cm)
	vb, _ := b.Instantiate(nil, cm)

	if va != 1 || vb != 1 {
		t.Errorf("va=%d vb=%d, want both 1 (each builder creates its own)", va, vb)
	}
}
