package engine

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/planner-go/domain/builder"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/domain/task"
)

// IteratedEngine runs a sequence of phase engines one after another
// over the same task, keeping the cheapest plan found across phases.
// Grounded on original_source's iterated_search.cc: each phase is a
// complete search engine config, PassBound carries the best plan cost
// so far into the next phase's Bound, and RepeatLastPhase re-runs the
// final phase again as long as it last found a solution (never on a
// failure, to avoid looping a deterministic search against itself).
type IteratedEngine struct {
	phases          []builder.Builder[*Engine]
	task            *task.Task
	components      *builder.ComponentMap
	passBound       bool
	repeatLastPhase bool
	continueOnFail  bool
	continueOnSolve bool
}

// IteratedParams configures an IteratedEngine.
type IteratedParams struct {
	// Phases is one EngineBuilder per search configuration, run in
	// order over the same task.
	Phases []builder.Builder[*Engine]
	// Task is the planning problem every phase searches over.
	Task *task.Task
	// Components is shared across every phase's Instantiate call, the
	// same way application/plugins shares one ComponentMap across a
	// single engine's evaluator/open-list tree.
	Components *builder.ComponentMap
	// PassBound carries the best plan cost found so far into each
	// subsequent phase's Params.Bound, narrowing later searches to
	// plans strictly cheaper than the best one already found (the bound
	// is exclusive, so a tying plan is pruned).
	PassBound bool
	// RepeatLastPhase re-runs the final phase again once every phase
	// has run, as long as that last run found a solution.
	RepeatLastPhase bool
	// ContinueOnFail keeps iterating past a phase that found no plan.
	ContinueOnFail bool
	// ContinueOnSolve keeps iterating past a phase that found a plan,
	// looking for a cheaper one in a later phase.
	ContinueOnSolve bool
}

// NewIteratedEngine validates params and returns a ready IteratedEngine.
func NewIteratedEngine(p IteratedParams) (*IteratedEngine, error) {
	if p.Task == nil {
		return nil, fmt.Errorf("%w: iterated engine requires a task", searcherr.Config)
	}
	if len(p.Phases) == 0 {
		return nil, fmt.Errorf("%w: iterated engine requires at least one phase", searcherr.Config)
	}
	if p.Components == nil {
		p.Components = builder.NewComponentMap()
	}
	return &IteratedEngine{
		phases:          p.Phases,
		task:            p.Task,
		components:      p.Components,
		passBound:       p.PassBound,
		repeatLastPhase: p.RepeatLastPhase,
		continueOnFail:  p.ContinueOnFail,
		continueOnSolve: p.ContinueOnSolve,
	}, nil
}

// PhaseResult is one phase's outcome, labeled with its index for
// reporting (e.g. a numbered plan-output-file suffix).
type PhaseResult struct {
	Index  int
	Result Result
}

// IteratedResult is what IteratedEngine.Run returns: every phase that
// ran, and the cheapest plan found across all of them (zero-value
// Plan if none solved).
type IteratedResult struct {
	Phases       []PhaseResult
	BestPlan     plan.Plan
	SolvedAny    bool
	BestPlanCost int
}

// Run executes each configured phase in order (and, if requested, the
// final phase again) until a stopping condition from
// original_source's step_return_value is reached: a phase fails and
// ContinueOnFail is false, a phase solves and ContinueOnSolve is
// false, or every phase (including the optional repeat) has run.
func (ie *IteratedEngine) Run(ctx context.Context) (IteratedResult, error) {
	out := IteratedResult{BestPlanCost: Unbounded}

	bound := Unbounded
	lastSolved := false

	runPhase := func(index int, b builder.Builder[*Engine]) (Result, error) {
		eng, err := b.Instantiate(ie.task, ie.components)
		if err != nil {
			return Result{}, err
		}
		if ie.passBound && bound != Unbounded {
			eng.params.Bound = bound
		}
		res, err := eng.Run(ctx)
		if err != nil {
			return Result{}, err
		}
		return res, nil
	}

	for i, b := range ie.phases {
		res, err := runPhase(i, b)
		if err != nil {
			return out, err
		}
		out.Phases = append(out.Phases, PhaseResult{Index: i, Result: res})

		lastSolved = res.Outcome == OutcomeSolved
		if lastSolved {
			out.SolvedAny = true
			if res.Plan.Cost < out.BestPlanCost {
				out.BestPlan = res.Plan
				out.BestPlanCost = res.Plan.Cost
				bound = res.Plan.Cost
			}
			if !ie.continueOnSolve {
				return out, nil
			}
		} else if !ie.continueOnFail {
			return out, nil
		}

		if ctx.Err() != nil {
			return out, ctx.Err()
		}
	}

	if ie.repeatLastPhase && lastSolved {
		last := ie.phases[len(ie.phases)-1]
		res, err := runPhase(len(ie.phases), last)
		if err != nil {
			return out, err
		}
		out.Phases = append(out.Phases, PhaseResult{Index: len(ie.phases), Result: res})
		if res.Outcome == OutcomeSolved && res.Plan.Cost < out.BestPlanCost {
			out.BestPlan = res.Plan
			out.BestPlanCost = res.Plan.Cost
			out.SolvedAny = true
		}
	}

	return out, nil
}
