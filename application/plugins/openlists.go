package plugins

import (
	"fmt"

	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/config"
	"github.com/felixgeelhaar/planner-go/domain/task"
	infraopenlist "github.com/felixgeelhaar/planner-go/infrastructure/openlist"
)

// buildSingle binds `single(evaluator)`, spec.md §4.5 best-first bucketed.
func buildSingle(r *Registry, spec *config.FeatureSpec) (OpenListBuilder, error) {
	evalB, err := r.featureArg(spec, "evaluator", 0)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (engine.EvaluatedOpenList, error) {
		e, err := evalB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		return &engine.Single{Eval: e, List: infraopenlist.NewBestFirst()}, nil
	}), nil
}

// buildTieBreaking binds `tiebreaking([evaluators...])`, spec.md §4.5.
func buildTieBreaking(r *Registry, spec *config.FeatureSpec) (OpenListBuilder, error) {
	evalBs, err := r.featureListArg(spec, "evaluators", 0)
	if err != nil {
		return nil, err
	}
	if len(evalBs) == 0 {
		return nil, fmt.Errorf("%w: tiebreaking requires at least one evaluator", ErrMissingArgument)
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (engine.EvaluatedOpenList, error) {
		evals, err := instantiateAll(evalBs, tk, cm)
		if err != nil {
			return nil, err
		}
		return &engine.TieBreaking{Evals: evals, List: infraopenlist.NewBestFirst()}, nil
	}), nil
}

// buildPareto binds `pareto(cost, count?)`, spec.md §4.5's Pareto/type-based
// sibling. count defaults to a constant-1 evaluator.
func buildPareto(r *Registry, spec *config.FeatureSpec) (OpenListBuilder, error) {
	costB, err := r.featureArg(spec, "cost", 0)
	if err != nil {
		return nil, err
	}
	var countB EvaluatorBuilder
	if fs, err := requiredFeature(spec, "count", 1); err == nil {
		countB, err = r.BuildEvaluator(fs)
		if err != nil {
			return nil, err
		}
	} else {
		constSpec := &config.FeatureSpec{Name: "const", Options: []config.Option{{Value: config.Value{Kind: config.ValueNumber, Number: 1}}}}
		countB, err = r.BuildEvaluator(constSpec)
		if err != nil {
			return nil, err
		}
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (engine.EvaluatedOpenList, error) {
		cost, err := costB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		count, err := countB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		return &engine.Pareto{Cost: cost, Count: count, List: infraopenlist.NewPareto()}, nil
	}), nil
}

// childSpec is one bound `child(open_list, boost=N, pref_only=bool)`
// argument of an alternation feature.
type childSpec struct {
	list     OpenListBuilder
	boost    int
	prefOnly bool
}

// buildAlternation binds
// `alternation([child(open_list, boost=N, pref_only=bool), ...])`,
// spec.md §4.5's round-robin alternation. The `child(...)` wrapper is not
// itself a spec.md-named feature; it is the natural way to carry each
// branch's per-child boost/pref_only fields alongside its nested open
// list, the same way `weight(evaluator, w)` carries a scalar alongside
// a nested evaluator.
func buildAlternation(r *Registry, spec *config.FeatureSpec) (OpenListBuilder, error) {
	items, err := requiredList(spec, "children", 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: alternation requires at least one child", ErrMissingArgument)
	}
	children := make([]*childSpec, len(items))
	for i, item := range items {
		fs, err := item.AsFeature()
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		if fs.Name != "child" {
			return nil, fmt.Errorf("children[%d]: %w: expected child(...), got %s(...)", i, ErrMissingArgument, fs.Name)
		}
		if err := validateOptions(fs.Name, fs); err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		listB, err := r.openListArg(fs, "list", 0)
		if err != nil {
			return nil, err
		}
		boost, err := numberArg(fs, "boost", -1, 0)
		if err != nil {
			return nil, err
		}
		prefOnly, err := boolArg(fs, "pref_only", -1, false)
		if err != nil {
			return nil, err
		}
		children[i] = &childSpec{list: listB, boost: int(boost), prefOnly: prefOnly}
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (engine.EvaluatedOpenList, error) {
		out := make([]*engine.AlternationChild, len(children))
		for i, c := range children {
			l, err := c.list.Instantiate(tk, cm)
			if err != nil {
				return nil, err
			}
			out[i] = &engine.AlternationChild{List: l, Boost: c.boost, PrefOnly: c.prefOnly}
		}
		return &engine.Alternation{Children: out}, nil
	}), nil
}
