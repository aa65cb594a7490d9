package plugins

import (
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

// funcBuilder adapts a plain construction closure into a
// domain/builder.Builder[T], caching its result in the ComponentMap by
// its own pointer identity — the same sharing-by-identity pattern
// domain/builder's own tests use (constBuilder), so that re-Instantiate-ing
// the same funcBuilder against one ComponentMap (e.g. across
// application/engine.IteratedEngine's bound iterations) returns the
// previously built component instead of rebuilding it.
type funcBuilder[T any] struct {
	create func(tk *task.Task, cm *builder.ComponentMap) (T, error)
}

// newBuilder wraps create as a Builder[T].
func newBuilder[T any](create func(tk *task.Task, cm *builder.ComponentMap) (T, error)) *funcBuilder[T] {
	return &funcBuilder[T]{create: create}
}

// Instantiate implements builder.Builder[T].
func (b *funcBuilder[T]) Instantiate(tk *task.Task, cm *builder.ComponentMap) (T, error) {
	return builder.GetOrCreate(cm, b, func() (T, error) { return b.create(tk, cm) })
}
