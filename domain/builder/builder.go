// Package builder implements the two-phase construction protocol from
// spec.md §4.7: a task-independent Builder describes how to construct
// a component (an evaluator, open list, or search engine); Instantiate
// binds it against a specific Task, sharing any component reachable
// from more than one place in the composition tree exactly once via
// ComponentMap.
package builder

import "github.com/felixgeelhaar/planner-go/domain/task"

// Builder is a task-independent description of how to construct a T
// once a concrete Task is known. The same Builder value may be
// Instantiate-d against many ComponentMaps (e.g. once per iteration of
// application/engine.IteratedEngine).
type Builder[T any] interface {
	// Instantiate produces the task-specific component, consulting cm so
	// that a Builder referenced from multiple places in the composition
	// tree (e.g. one heuristic feeding both the open list's primary
	// evaluator and a preferred-operator evaluator) is only constructed
	// once.
	Instantiate(tk *task.Task, cm *ComponentMap) (T, error)
}

// ComponentMap caches the task-specific components produced during one
// Instantiate pass, keyed by the Go pointer identity of the Builder that
// produced them — the original implementation's object-identity
// sharing, expressed with Go's `any` keys and pointer-typed Builders.
type ComponentMap struct {
	components map[any]any
}

// NewComponentMap creates an empty component map for one instantiation pass.
func NewComponentMap() *ComponentMap {
	return &ComponentMap{components: make(map[any]any)}
}

// GetOrCreate returns the component previously built for key, or calls
// create and caches the result if this is the first request for key.
// key should be a pointer-typed Builder value so identity, not
// structural equality, determines sharing.
func GetOrCreate[T any](cm *ComponentMap, key any, create func() (T, error)) (T, error) {
	if existing, ok := cm.components[key]; ok {
		return existing.(T), nil
	}
	created, err := create()
	if err != nil {
		var zero T
		return zero, err
	}
	cm.components[key] = created
	return created, nil
}
