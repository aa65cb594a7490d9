package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/planner-go/domain/plan"
)

// Interpreter wraps the statekit interpreter with run-lifecycle helpers.
type Interpreter struct {
	interp *statekit.Interpreter[*RunContext]
	ctx    *RunContext
}

// NewInterpreter creates an interpreter for the run-lifecycle machine.
func NewInterpreter(machine *statekit.MachineConfig[*RunContext], ctx *RunContext) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **RunContext) {
		*c = ctx
	})
	return &Interpreter{interp: interp, ctx: ctx}
}

// Start enters the initial (Building) state.
func (i *Interpreter) Start() {
	i.interp.Start()
}

// State returns the current lifecycle state.
func (i *Interpreter) State() statekit.StateID {
	return i.interp.State().Value
}

// Done returns true once the machine has reached a final state.
func (i *Interpreter) Done() bool {
	return i.interp.Done()
}

// StartSearch transitions Building -> Searching.
func (i *Interpreter) StartSearch() {
	i.interp.Send(statekit.Event{Type: EventStartSearch})
}

// Solve transitions Searching -> Solved, recording the winning plan.
func (i *Interpreter) Solve(p *plan.Plan) {
	i.interp.Send(statekit.Event{Type: EventSolve, Payload: SolvedPayload{Plan: p}})
}

// Fail transitions to Failed with a reason.
func (i *Interpreter) Fail(reason string, err error) {
	i.interp.Send(statekit.Event{Type: EventFail, Payload: ReasonPayload{Reason: reason, Err: err}})
}

// ExceedTime transitions Searching -> Timeout.
func (i *Interpreter) ExceedTime(reason string, err error) {
	i.interp.Send(statekit.Event{Type: EventExceedTime, Payload: ReasonPayload{Reason: reason, Err: err}})
}

// ExhaustMemory transitions Searching -> OutOfMemory.
func (i *Interpreter) ExhaustMemory(reason string, err error) {
	i.interp.Send(statekit.Event{Type: EventExhaustMemory, Payload: ReasonPayload{Reason: reason, Err: err}})
}

// RejectUnsupported transitions Building -> Unsupported.
func (i *Interpreter) RejectUnsupported(reason string, err error) {
	i.interp.Send(statekit.Event{Type: EventRejectUnsupported, Payload: ReasonPayload{Reason: reason, Err: err}})
}

// Context returns the interpreter's run context.
func (i *Interpreter) Context() *RunContext {
	return i.ctx
}

// Matches reports whether the interpreter is currently in the given state.
func (i *Interpreter) Matches(state statekit.StateID) bool {
	return i.interp.Matches(state)
}
