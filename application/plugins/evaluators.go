package plugins

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/config"
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
	infracache "github.com/felixgeelhaar/planner-go/infrastructure/cache"
	"github.com/felixgeelhaar/planner-go/infrastructure/evaluator"
)

// buildG binds `g()`, spec.md §4.4's g-evaluator.
func buildG(_ *Registry, _ *config.FeatureSpec) (EvaluatorBuilder, error) {
	return newBuilder(func(*task.Task, *builder.ComponentMap) (evaluation.Evaluator, error) {
		return evaluator.G{}, nil
	}), nil
}

// buildConst binds `const(value)`, a literal-integer evaluator.
func buildConst(_ *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	value, err := numberArg(spec, "value", 0, 0)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(*task.Task, *builder.ComponentMap) (evaluation.Evaluator, error) {
		return evaluator.Const{Value: int(value)}, nil
	}), nil
}

// buildH binds `h()`, the trivial ZeroAdapter placeholder for the
// external heuristic contract point (spec.md §4.4 "heuristic wrappers").
func buildH(_ *Registry, _ *config.FeatureSpec) (EvaluatorBuilder, error) {
	return newBuilder(func(*task.Task, *builder.ComponentMap) (evaluation.Evaluator, error) {
		return evaluator.ZeroAdapter(), nil
	}), nil
}

// buildWeight binds `weight(evaluator, w)`, spec.md §4.4 `E.value * w`.
func buildWeight(r *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	innerB, err := r.featureArg(spec, "evaluator", 0)
	if err != nil {
		return nil, err
	}
	w, err := numberArg(spec, "weight", 1, 1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (evaluation.Evaluator, error) {
		inner, err := innerB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		return evaluator.Weighted{Inner: inner, Weight: int(w)}, nil
	}), nil
}

// buildSum binds `sum([evaluators...])`.
func buildSum(r *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	innerBs, err := r.featureListArg(spec, "evaluators", 0)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (evaluation.Evaluator, error) {
		inner, err := instantiateAll(innerBs, tk, cm)
		if err != nil {
			return nil, err
		}
		return evaluator.Sum{Inner: inner}, nil
	}), nil
}

// buildMax binds `max([evaluators...])`.
func buildMax(r *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	innerBs, err := r.featureListArg(spec, "evaluators", 0)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (evaluation.Evaluator, error) {
		inner, err := instantiateAll(innerBs, tk, cm)
		if err != nil {
			return nil, err
		}
		return evaluator.Max{Inner: inner}, nil
	}), nil
}

// buildPref binds `pref(evaluator, operators=[name,...])`: a
// preferred-op evaluator (spec.md §4.6 step 4) that recommends the
// operators named in operators=, or every applicable operator when
// operators= is omitted.
func buildPref(r *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	innerB, err := r.featureArg(spec, "evaluator", 0)
	if err != nil {
		return nil, err
	}
	names, err := optionalIdentListArg(spec, "operators", -1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (evaluation.Evaluator, error) {
		inner, err := innerB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		ids, err := resolveOperatorNames(tk, names)
		if err != nil {
			return nil, err
		}
		return evaluator.Pref{Inner: inner, Operators: ids}, nil
	}), nil
}

// resolveOperatorNames maps operator names to their OperatorID in tk,
// for search-spec arguments (like pref's operators=) that name
// operators rather than positions.
func resolveOperatorNames(tk *task.Task, names []string) ([]task.OperatorID, error) {
	if len(names) == 0 {
		return nil, nil
	}
	byName := make(map[string]task.OperatorID, len(tk.Operators))
	for i, op := range tk.Operators {
		byName[op.Name] = task.OperatorID(i)
	}
	ids := make([]task.OperatorID, len(names))
	for i, name := range names {
		id, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: operators[%d]: no operator named %q", config.ErrBuildFailed, i, name)
		}
		ids[i] = id
	}
	return ids, nil
}

// buildPathCost binds `pathcost()`, the supplementary path-dependent
// evaluator from SPEC_FULL.md §4.4.
func buildPathCost(_ *Registry, _ *config.FeatureSpec) (EvaluatorBuilder, error) {
	return newBuilder(func(tk *task.Task, _ *builder.ComponentMap) (evaluation.Evaluator, error) {
		return evaluator.NewPathCost(tk), nil
	}), nil
}

// buildCached binds `cached(evaluator)`: wraps the inner evaluator with
// a bounded ristretto-backed domain/cache.Cache keyed by StateID
// (infrastructure/evaluator.Cached), the concrete home for spec.md
// §4.4's does_cache_estimates evaluators. Each instantiation gets its
// own cache, sized by infrastructure/cache.DefaultConfig, so distinct
// search runs (and distinct cached() sites within one search-spec)
// never share state.
func buildCached(r *Registry, spec *config.FeatureSpec) (EvaluatorBuilder, error) {
	innerB, err := r.featureArg(spec, "evaluator", 0)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (evaluation.Evaluator, error) {
		inner, err := innerB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		c, err := infracache.New(infracache.DefaultConfig())
		if err != nil {
			return nil, err
		}
		return evaluator.Cached{Inner: inner, Cache: c}, nil
	}), nil
}

func instantiateAll(bs []EvaluatorBuilder, tk *task.Task, cm *builder.ComponentMap) ([]evaluation.Evaluator, error) {
	out := make([]evaluation.Evaluator, len(bs))
	for i, b := range bs {
		e, err := b.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
