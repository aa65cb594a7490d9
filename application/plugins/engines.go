package plugins

import (
	"github.com/felixgeelhaar/planner-go/application/engine"
	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/config"
	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/evaluator"
	infraopenlist "github.com/felixgeelhaar/planner-go/infrastructure/openlist"
)

// commonParams reads the options every engine feature shares:
// reopen_closed and bound (spec.md §4.6's parameter list).
func commonParams(spec *config.FeatureSpec, reopenDefault bool) (reopenClosed bool, bound int, err error) {
	reopenClosed, err = boolArg(spec, "reopen_closed", -1, reopenDefault)
	if err != nil {
		return false, 0, err
	}
	boundF, err := numberArg(spec, "bound", -1, 0)
	if err != nil {
		return false, 0, err
	}
	bound = engine.Unbounded
	if boundF > 0 {
		bound = int(boundF)
	}
	return reopenClosed, bound, nil
}

// buildEager binds `eager(open_list, reopen_closed=bool, bound=N,
// preferred=[evaluator, ...])`, the general-purpose entry point over
// spec.md §4.6's algorithm. `preferred` accumulates the preferred-operator
// set P at each expansion (step 4); each listed evaluator is asked once
// per expansion which of the expanded state's applicable operators it
// recommends, and an Alternation
// child with PrefOnly/Boost set is how that preference actually changes
// which nodes expand sooner.
func buildEager(r *Registry, spec *config.FeatureSpec) (EngineBuilder, error) {
	olB, err := r.openListArg(spec, "open_list", 0)
	if err != nil {
		return nil, err
	}
	reopenClosed, bound, err := commonParams(spec, false)
	if err != nil {
		return nil, err
	}
	prefB, err := r.optionalFeatureListArg(spec, "preferred", -1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (*engine.Engine, error) {
		ol, err := olB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		preferred, err := instantiateAll(prefB, tk, cm)
		if err != nil {
			return nil, err
		}
		return engine.NewEngine(engine.Params{
			Task:                  tk,
			OpenList:              ol,
			ReopenClosed:          reopenClosed,
			Bound:                 bound,
			PreferredOpEvaluators: preferred,
		})
	}), nil
}

// buildAstar binds `astar(heuristic, reopen_closed=bool, bound=N,
// preferred=[evaluator, ...])`:
// `eager(single(sum([g(), heuristic])), reopen_closed=true)`, A* with
// f = g + h and reopening enabled by convention.
func buildAstar(r *Registry, spec *config.FeatureSpec) (EngineBuilder, error) {
	hB, err := r.featureArg(spec, "heuristic", 0)
	if err != nil {
		return nil, err
	}
	reopenClosed, bound, err := commonParams(spec, true)
	if err != nil {
		return nil, err
	}
	prefB, err := r.optionalFeatureListArg(spec, "preferred", -1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (*engine.Engine, error) {
		h, err := hB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		preferred, err := instantiateAll(prefB, tk, cm)
		if err != nil {
			return nil, err
		}
		f := evaluator.Sum{Inner: []evaluation.Evaluator{evaluator.G{}, h}}
		ol := &engine.Single{Eval: f, List: infraopenlist.NewBestFirst()}
		return engine.NewEngine(engine.Params{
			Task:                  tk,
			OpenList:              ol,
			ReopenClosed:          reopenClosed,
			Bound:                 bound,
			PreferredOpEvaluators: preferred,
		})
	}), nil
}

// buildWastar binds `wastar(heuristic, weight=W, reopen_closed=bool,
// bound=N, preferred=[evaluator, ...])`:
// `eager(single(sum([g(), weight(heuristic, W)])))`, weighted
// A* (spec.md §4.4's WA* example).
func buildWastar(r *Registry, spec *config.FeatureSpec) (EngineBuilder, error) {
	hB, err := r.featureArg(spec, "heuristic", 0)
	if err != nil {
		return nil, err
	}
	weight, err := numberArg(spec, "weight", 1, 1)
	if err != nil {
		return nil, err
	}
	reopenClosed, bound, err := commonParams(spec, true)
	if err != nil {
		return nil, err
	}
	prefB, err := r.optionalFeatureListArg(spec, "preferred", -1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (*engine.Engine, error) {
		h, err := hB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		preferred, err := instantiateAll(prefB, tk, cm)
		if err != nil {
			return nil, err
		}
		f := evaluator.Sum{Inner: []evaluation.Evaluator{evaluator.G{}, evaluator.Weighted{Inner: h, Weight: int(weight)}}}
		ol := &engine.Single{Eval: f, List: infraopenlist.NewBestFirst()}
		return engine.NewEngine(engine.Params{
			Task:                  tk,
			OpenList:              ol,
			ReopenClosed:          reopenClosed,
			Bound:                 bound,
			PreferredOpEvaluators: preferred,
		})
	}), nil
}

// buildGbfs binds `gbfs(heuristic, bound=N, preferred=[evaluator, ...])`:
// `eager(single(heuristic))`, greedy best-first search.
func buildGbfs(r *Registry, spec *config.FeatureSpec) (EngineBuilder, error) {
	hB, err := r.featureArg(spec, "heuristic", 0)
	if err != nil {
		return nil, err
	}
	reopenClosed, bound, err := commonParams(spec, false)
	if err != nil {
		return nil, err
	}
	prefB, err := r.optionalFeatureListArg(spec, "preferred", -1)
	if err != nil {
		return nil, err
	}
	return newBuilder(func(tk *task.Task, cm *builder.ComponentMap) (*engine.Engine, error) {
		h, err := hB.Instantiate(tk, cm)
		if err != nil {
			return nil, err
		}
		preferred, err := instantiateAll(prefB, tk, cm)
		if err != nil {
			return nil, err
		}
		ol := &engine.Single{Eval: h, List: infraopenlist.NewBestFirst()}
		return engine.NewEngine(engine.Params{
			Task:                  tk,
			OpenList:              ol,
			ReopenClosed:          reopenClosed,
			Bound:                 bound,
			PreferredOpEvaluators: preferred,
		})
	}), nil
}
