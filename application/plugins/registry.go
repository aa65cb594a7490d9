// Package plugins is the feature registry from SPEC_FULL.md §4.7: each
// buildable (evaluator, open list, search engine) is registered under a
// name with typed option parsing, mirroring the teacher's
// domain/tool.Registry (Register/Get/List/Names/Has) used for tool
// plugins — reused here for search-feature plugins instead. A
// registered factory turns one domain/config.FeatureSpec node into a
// task-independent domain/builder.Builder[T], deferring the actual
// construction to Instantiate once a Task is known.
package plugins

import (
	"fmt"
	"sort"
	"sync"

	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/config"
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/application/engine"
)

// EvaluatorBuilder produces a task-bound evaluation.Evaluator.
type EvaluatorBuilder = builder.Builder[evaluation.Evaluator]

// OpenListBuilder produces a task-bound engine.EvaluatedOpenList.
type OpenListBuilder = builder.Builder[engine.EvaluatedOpenList]

// EngineBuilder produces a task-bound *engine.Engine, ready to Run.
type EngineBuilder = builder.Builder[*engine.Engine]

// EvaluatorFactory binds one FeatureSpec node to an EvaluatorBuilder,
// recursing into reg for any nested feature arguments.
type EvaluatorFactory func(reg *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error)

// OpenListFactory binds one FeatureSpec node to an OpenListBuilder.
type OpenListFactory func(reg *Registry, spec *config.FeatureSpec) (OpenListBuilder, error)

// EngineFactory binds one FeatureSpec node to an EngineBuilder.
type EngineFactory func(reg *Registry, spec *config.FeatureSpec) (EngineBuilder, error)

// Registry holds every registered feature factory, keyed by name,
// grouped by kind (evaluator, open list, engine). Safe for concurrent
// registration and lookup.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]EvaluatorFactory
	openLists  map[string]OpenListFactory
	engines    map[string]EngineFactory
}

// NewRegistry creates an empty feature registry.
func NewRegistry() *Registry {
	return &Registry{
		evaluators: make(map[string]EvaluatorFactory),
		openLists:  make(map[string]OpenListFactory),
		engines:    make(map[string]EngineFactory),
	}
}

// RegisterEvaluator adds an evaluator feature under name.
func (r *Registry) RegisterEvaluator(name string, f EvaluatorFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.evaluators[name]; exists {
		return fmt.Errorf("%w: evaluator %q", ErrFeatureExists, name)
	}
	r.evaluators[name] = f
	return nil
}

// RegisterOpenList adds an open-list feature under name.
func (r *Registry) RegisterOpenList(name string, f OpenListFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.openLists[name]; exists {
		return fmt.Errorf("%w: open list %q", ErrFeatureExists, name)
	}
	r.openLists[name] = f
	return nil
}

// RegisterEngine adds a search-engine feature under name.
func (r *Registry) RegisterEngine(name string, f EngineFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("%w: engine %q", ErrFeatureExists, name)
	}
	r.engines[name] = f
	return nil
}

// BuildEvaluator resolves spec against the registered evaluator
// factories, recursing into any nested evaluator arguments.
func (r *Registry) BuildEvaluator(spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	r.mu.RLock()
	f, ok := r.evaluators[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFeature, spec.Name)
	}
	if err := validateOptions(spec.Name, spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	b, err := f(r, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	return b, nil
}

// BuildOpenList resolves spec against the registered open-list factories.
func (r *Registry) BuildOpenList(spec *config.FeatureSpec) (OpenListBuilder, error) {
	r.mu.RLock()
	f, ok := r.openLists[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFeature, spec.Name)
	}
	if err := validateOptions(spec.Name, spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	b, err := f(r, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	return b, nil
}

// BuildEngine resolves spec against the registered engine factories.
func (r *Registry) BuildEngine(spec *config.FeatureSpec) (EngineBuilder, error) {
	r.mu.RLock()
	f, ok := r.engines[spec.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFeature, spec.Name)
	}
	if err := validateOptions(spec.Name, spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	b, err := f(r, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrBuildFailed, spec.Name, err)
	}
	return b, nil
}

// HasEvaluator reports whether name is registered as an evaluator.
func (r *Registry) HasEvaluator(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.evaluators[name]
	return ok
}

// HasOpenList reports whether name is registered as an open list.
func (r *Registry) HasOpenList(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.openLists[name]
	return ok
}

// HasEngine reports whether name is registered as a search engine.
func (r *Registry) HasEngine(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.engines[name]
	return ok
}

// EvaluatorNames lists every registered evaluator name, sorted.
func (r *Registry) EvaluatorNames() []string { return sortedKeys(r.evaluatorKeys()) }

// OpenListNames lists every registered open-list name, sorted.
func (r *Registry) OpenListNames() []string { return sortedKeys(r.openListKeys()) }

// EngineNames lists every registered search-engine name, sorted.
func (r *Registry) EngineNames() []string { return sortedKeys(r.engineKeys()) }

func (r *Registry) evaluatorKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.evaluators))
	for name := range r.evaluators {
		out = append(out, name)
	}
	return out
}

func (r *Registry) openListKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.openLists))
	for name := range r.openLists {
		out = append(out, name)
	}
	return out
}

func (r *Registry) engineKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.engines))
	for name := range r.engines {
		out = append(out, name)
	}
	return out
}

func sortedKeys(keys []string) []string {
	sort.Strings(keys)
	return keys
}
