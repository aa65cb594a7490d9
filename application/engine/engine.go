package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/planner-go/domain/evaluation"
	"github.com/felixgeelhaar/planner-go/domain/openlist"
	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/search"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
	"github.com/felixgeelhaar/planner-go/domain/task"
	"github.com/felixgeelhaar/planner-go/infrastructure/logging"
	"github.com/felixgeelhaar/planner-go/infrastructure/registry"
	"github.com/felixgeelhaar/planner-go/infrastructure/resilience"
	"github.com/felixgeelhaar/planner-go/infrastructure/statemachine"
)

// Engine runs one eager best-first search over a fixed task (spec.md §4.6).
type Engine struct {
	params Params
}

// NewEngine validates params and creates an Engine. A zero RunID gets a
// freshly generated one.
func NewEngine(params Params) (*Engine, error) {
	if err := validate(&params); err != nil {
		return nil, err
	}
	if params.RunID == "" {
		params.RunID = uuid.NewString()
	}
	return &Engine{params: params}, nil
}

// run is the mutable state threaded through one Run call: the state
// registry, the search space, and the running statistics. Kept
// separate from Params so Engine itself stays reusable across runs of
// the same configuration (e.g. IteratedEngine's successive bounds).
type run struct {
	reg   *registry.Registry
	space *search.Space
	stats Stats
	lazy  map[task.StateID]int
}

// Run executes the search loop to completion: SOLVED, FAILED, TIMEOUT,
// or OUT_OF_MEMORY. A non-nil error return indicates a programming
// error (an illegal node transition, a broken trace) rather than a
// normal search outcome — those are reported via Result.Outcome.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	p := e.params
	tk := p.Task
	deadline := resilience.NewDeadline(p.MaxTime)

	machine, err := statemachine.NewRunMachine()
	if err != nil {
		return Result{}, fmt.Errorf("%w: building run lifecycle: %v", searcherr.Internal, err)
	}
	rc := statemachine.NewRunContext(p.RunID)
	interp := statemachine.NewInterpreter(machine, rc)
	interp.Start()

	logging.Info().Add(logging.RunID(p.RunID)).Msg("search run starting")

	r := &run{
		reg:   registry.New(p.MaxStates),
		space: search.NewSpace(),
		lazy:  make(map[task.StateID]int),
	}

	initial := tk.Initial.Clone()
	if len(tk.Axioms) > 0 {
		initial = tk.EvaluateAxioms(initial)
	}
	id0, _, err := r.reg.Intern(initial)
	if err != nil {
		return e.finish(interp, r.stats, start, OutcomeOutOfMemory, plan.Plan{}, "initial state", err), nil
	}

	ctx0 := evaluation.Context{StateID: id0, State: initial, G: 0, LastOp: task.NoOperatorID, IsPrimary: true}
	for _, pd := range p.PathDependent {
		pd.NotifyInitialState(ctx0)
	}

	interp.StartSearch()

	node0 := r.space.Node(id0)
	entry0 := openlist.Entry{StateID: id0, Parent: task.NoStateID, Op: task.NoOperatorID, Preferred: true}
	if deadEnd, _ := p.OpenList.Insert(ctx0, entry0); deadEnd {
		r.stats.DeadEnds++
		if err := node0.MarkDeadEnd(); err != nil {
			return Result{}, fmt.Errorf("%w: marking initial state dead: %v", searcherr.Internal, err)
		}
	} else {
		if err := node0.Open(0, task.NoStateID, task.NoOperatorID); err != nil {
			return Result{}, fmt.Errorf("%w: opening initial state: %v", searcherr.Internal, err)
		}
		e.recordLazy(r, ctx0)
	}

	for {
		if deadline.Check() {
			return e.finish(interp, r.stats, start, OutcomeTimeout, plan.Plan{}, "wall-clock deadline exceeded", nil), nil
		}
		select {
		case <-ctx.Done():
			return e.finish(interp, r.stats, start, OutcomeFailed, plan.Plan{}, "context cancelled", ctx.Err()), nil
		default:
		}

		outcome, stepErr := e.step(ctx, r, interp, start)
		if stepErr != nil {
			return Result{}, stepErr
		}
		if outcome != nil {
			return *outcome, nil
		}
	}
}

// step performs one iteration of the eager loop (spec.md §4.6 "Step"):
// dequeue-until-expandable with lazy re-evaluation, expand, goal check,
// and successor generation. A non-nil *Result signals the run has
// ended (SOLVED/FAILED); a nil *Result with a nil error means "keep
// looping."
func (e *Engine) step(ctx context.Context, r *run, interp *statemachine.Interpreter, start time.Time) (*Result, error) {
	p := e.params
	tk := p.Task

	id, _, ok, stepErr := e.dequeue(r)
	if stepErr != nil {
		return nil, stepErr
	}
	if !ok {
		res := e.finish(interp, r.stats, start, OutcomeFailed, plan.Plan{}, "open list exhausted", nil)
		return &res, nil
	}

	node := r.space.Node(id)
	state := r.reg.Lookup(id)

	if err := node.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing state %d: %v", searcherr.Internal, id, err)
	}
	r.stats.Expanded++
	if p.Budget != nil {
		if err := p.Budget.Consume("expanded", 1); err != nil {
			res := e.finish(interp, r.stats, start, OutcomeOutOfMemory, plan.Plan{}, "expansion budget exhausted", err)
			return &res, nil
		}
	}

	fKey, fDead := p.OpenList.Peek(evaluation.Context{StateID: id, State: state, G: node.G, LastOp: node.ParentOp, IsPrimary: true})
	fValue := node.G
	if !fDead && len(fKey) > 0 {
		fValue = fKey[0]
	}
	if p.Metrics != nil {
		p.Metrics.RecordExpanded(ctx, fValue)
	}
	logging.Debug().
		Add(logging.RunID(p.RunID)).
		Add(logging.StateID(id)).
		Add(logging.GValue(node.G)).
		Add(logging.FValue(fValue)).
		Add(logging.Expanded(r.stats.Expanded)).
		Msg("expanding state")

	if tk.IsGoal(state) {
		ops := r.space.TracePlan(id)
		cost := 0
		for _, opID := range ops {
			cost += task.AdjustedCost(tk.Operators[opID], tk.Metric, task.CostTypeNormal)
		}
		pl := plan.Plan{Operators: ops, Cost: cost}
		res := e.finish(interp, r.stats, start, OutcomeSolved, pl, "", nil)
		return &res, nil
	}

	var applicable []task.OperatorID
	for i, op := range tk.Operators {
		if op.IsApplicable(state) {
			applicable = append(applicable, task.OperatorID(i))
		}
	}
	applicable = p.Pruning.Prune(tk, state, applicable)

	preferred := e.collectPreferred(r, id, state, node, applicable)

	for _, opID := range applicable {
		op := tk.Operators[opID]
		realCost := task.AdjustedCost(op, tk.Metric, task.CostTypeNormal)
		if p.Bound != Unbounded && node.RealG+realCost >= p.Bound {
			continue
		}

		succState := op.Apply(state)
		if len(tk.Axioms) > 0 {
			succState = tk.EvaluateAxioms(succState)
		}
		succID, isNew, err := r.reg.Intern(succState)
		if err != nil {
			res := e.finish(interp, r.stats, start, OutcomeOutOfMemory, plan.Plan{}, "registry exhausted", err)
			return &res, nil
		}
		r.stats.Generated++
		if p.Metrics != nil {
			p.Metrics.RecordGenerated(ctx, 1)
		}
		if p.Budget != nil {
			if err := p.Budget.Consume("generated", 1); err != nil {
				res := e.finish(interp, r.stats, start, OutcomeOutOfMemory, plan.Plan{}, "generation budget exhausted", err)
				return &res, nil
			}
		}
		_ = isNew

		for _, pd := range p.PathDependent {
			pd.NotifyTransition(
				evaluation.Context{StateID: id, State: state, G: node.G, LastOp: node.ParentOp, IsPrimary: true},
				opID,
				evaluation.Context{StateID: succID, State: succState, G: node.G, LastOp: opID, IsPrimary: true},
			)
		}

		adjCost := task.AdjustedCost(op, tk.Metric, p.CostType)
		gPrime := node.G + adjCost
		realGPrime := node.RealG + realCost

		isPreferred := preferred[opID]

		succNode := r.space.Node(succID)
		switch succNode.Status {
		case search.StatusDeadEnd:
			continue
		case search.StatusNew:
			ctxPrime := evaluation.Context{StateID: succID, State: succState, G: gPrime, LastOp: opID, IsPrimary: true}
			succEntry := openlist.Entry{StateID: succID, Parent: id, Op: opID, Preferred: isPreferred}
			if deadEnd, _ := p.OpenList.Insert(ctxPrime, succEntry); deadEnd {
				if err := succNode.MarkDeadEnd(); err != nil {
					return nil, fmt.Errorf("%w: marking state %d dead: %v", searcherr.Internal, succID, err)
				}
				r.stats.DeadEnds++
				if p.Metrics != nil {
					p.Metrics.RecordDeadEnd(ctx)
				}
				continue
			}
			if err := succNode.Open(gPrime, id, opID); err != nil {
				return nil, fmt.Errorf("%w: opening state %d: %v", searcherr.Internal, succID, err)
			}
			succNode.RealG = realGPrime
			e.recordLazy(r, ctxPrime)
		default:
			if succNode.G <= gPrime {
				continue
			}
			if p.ReopenClosed {
				wasClosed := succNode.Status == search.StatusClosed
				ctxPrime := evaluation.Context{StateID: succID, State: succState, G: gPrime, LastOp: opID, IsPrimary: true}
				succEntry := openlist.Entry{StateID: succID, Parent: id, Op: opID, Preferred: isPreferred}
				if deadEnd, _ := p.OpenList.Insert(ctxPrime, succEntry); deadEnd {
					if err := succNode.MarkDeadEnd(); err != nil {
						return nil, fmt.Errorf("%w: marking state %d dead: %v", searcherr.Internal, succID, err)
					}
					r.stats.DeadEnds++
					continue
				}
				if wasClosed {
					r.stats.Reopened++
					if p.Metrics != nil {
						p.Metrics.RecordReopened(ctx)
					}
					if err := succNode.Reopen(gPrime, id, opID); err != nil {
						return nil, fmt.Errorf("%w: reopening state %d: %v", searcherr.Internal, succID, err)
					}
				} else {
					if err := succNode.UpdateParent(gPrime, id, opID); err != nil {
						return nil, fmt.Errorf("%w: updating state %d: %v", searcherr.Internal, succID, err)
					}
				}
				succNode.RealG = realGPrime
				e.recordLazy(r, ctxPrime)
			} else {
				if err := succNode.UpdateParent(gPrime, id, opID); err != nil {
					return nil, fmt.Errorf("%w: updating state %d: %v", searcherr.Internal, succID, err)
				}
				succNode.RealG = realGPrime
			}
		}
	}

	return nil, nil
}

// collectPreferred implements spec.md §4.6 step 4: build ctx_pref once
// for the state being expanded and query every configured
// preferred-op evaluator against it, accumulating the ordered set P of
// preferred OperatorIDs. Evaluated once per expansion against the
// parent, not once per successor — a preferred-op evaluator decides
// which of state's applicable operators it recommends, independent of
// which successor a caller happens to be asking about.
func (e *Engine) collectPreferred(r *run, id task.StateID, state task.State, node *search.Node, applicable []task.OperatorID) map[task.OperatorID]bool {
	p := e.params
	if len(p.PreferredOpEvaluators) == 0 {
		return nil
	}
	prefCtx := evaluation.Context{
		StateID:    id,
		State:      state,
		G:          node.G,
		LastOp:     node.ParentOp,
		IsPrimary:  false,
		Applicable: applicable,
	}
	set := make(map[task.OperatorID]bool)
	for _, pe := range p.PreferredOpEvaluators {
		res := pe.Evaluate(prefCtx)
		if res.CountEvaluation {
			r.stats.Evaluated++
		}
		for _, id := range res.Preferred {
			set[id] = true
		}
	}
	return set
}

// dequeue implements spec.md §4.6 steps 1-2: pop entries until one is
// found that is neither CLOSED nor DEAD_END, applying lazy
// re-evaluation along the way when configured. ok is false only when
// the open list has been exhausted.
func (e *Engine) dequeue(r *run) (task.StateID, openlist.Entry, bool, error) {
	p := e.params
	for {
		entry, popped := p.OpenList.Pop()
		if !popped {
			return task.NoStateID, openlist.Entry{}, false, nil
		}
		node := r.space.Node(entry.StateID)
		if node.Status == search.StatusClosed || node.Status == search.StatusDeadEnd {
			continue
		}

		if p.LazyEvaluator != nil {
			state := r.reg.Lookup(entry.StateID)
			lctx := evaluation.Context{StateID: entry.StateID, State: state, G: node.G, LastOp: node.ParentOp, IsPrimary: false}
			if oldH, have := r.lazy[entry.StateID]; have {
				res := p.LazyEvaluator.Evaluate(lctx)
				if res.CountEvaluation {
					r.stats.Evaluated++
				}
				if res.Infinite {
					if err := node.MarkDeadEnd(); err != nil {
						return task.NoStateID, openlist.Entry{}, false, fmt.Errorf("%w: marking state %d dead: %v", searcherr.Internal, entry.StateID, err)
					}
					r.stats.DeadEnds++
					continue
				}
				if res.Value != oldH {
					r.lazy[entry.StateID] = res.Value
					if deadEnd, _ := p.OpenList.Insert(lctx, entry); deadEnd {
						if err := node.MarkDeadEnd(); err != nil {
							return task.NoStateID, openlist.Entry{}, false, fmt.Errorf("%w: marking state %d dead: %v", searcherr.Internal, entry.StateID, err)
						}
						r.stats.DeadEnds++
					}
					continue
				}
			}
		}

		return entry.StateID, entry, true, nil
	}
}

// recordLazy caches ctx's value under the configured lazy evaluator so
// a later pop can detect whether it has gone stale (spec.md §4.6 step 2).
func (e *Engine) recordLazy(r *run, ctx evaluation.Context) {
	if e.params.LazyEvaluator == nil {
		return
	}
	res := e.params.LazyEvaluator.Evaluate(ctx)
	if !res.Infinite {
		r.lazy[ctx.StateID] = res.Value
	}
}

// finish drives the run-lifecycle interpreter to its terminal state and
// assembles the Result, logging and recording metrics for the outcome.
func (e *Engine) finish(interp *statemachine.Interpreter, stats Stats, start time.Time, outcome Outcome, p plan.Plan, reason string, err error) Result {
	switch outcome {
	case OutcomeSolved:
		interp.Solve(&p)
	case OutcomeTimeout:
		interp.ExceedTime(reason, err)
	case OutcomeOutOfMemory:
		interp.ExhaustMemory(reason, err)
	case OutcomeUnsupported:
		interp.RejectUnsupported(reason, err)
	default:
		interp.Fail(reason, err)
	}

	duration := time.Since(start)
	if e.params.Metrics != nil {
		e.params.Metrics.RecordOutcome(context.Background(), outcome.String(), p.Cost, duration)
	}

	logEvent := logging.Info()
	if outcome != OutcomeSolved {
		logEvent = logging.Warn()
	}
	logEvent.
		Add(logging.RunID(e.params.RunID)).
		Add(logging.Str("outcome", outcome.String())).
		Add(logging.Expanded(stats.Expanded)).
		Add(logging.Generated(stats.Generated)).
		Add(logging.Reopened(stats.Reopened)).
		Add(logging.DeadEnds(stats.DeadEnds)).
		Add(logging.Duration(duration)).
		Add(logging.Reason(reason)).
		Add(logging.ErrorField(err)).
		Msg("search run finished")

	return Result{Outcome: outcome, Plan: p, Stats: stats, Duration: duration, Err: err}
}
