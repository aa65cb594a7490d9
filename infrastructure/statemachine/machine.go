// Package statemachine builds the engine's run-lifecycle statechart:
// Building -> Searching -> {Solved, Failed, Timeout, OutOfMemory,
// Unsupported} (SPEC_FULL.md §4.6). One transition happens per phase
// change of a run, not per search-node expansion — the per-node
// NodeStatus machine in domain/search is deliberately a plain enum
// instead (spec.md §9), since statekit's interpreter overhead is the
// wrong tool for something called thousands of times per search.
package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/planner-go/domain/plan"
	"github.com/felixgeelhaar/planner-go/domain/searcherr"
)

// RunContext carries the outcome of one engine run through the
// lifecycle chart.
type RunContext struct {
	// RunID identifies the run for logging.
	RunID string
	// Plan is set on entry to Solved.
	Plan *plan.Plan
	// Reason explains Failed/Unsupported/Timeout/OutOfMemory entry.
	Reason string
	// Err is the underlying error, if any, that ended the run.
	Err error
}

// NewRunContext creates a run-lifecycle context.
func NewRunContext(runID string) *RunContext {
	return &RunContext{RunID: runID}
}

// Lifecycle state IDs.
const (
	StateBuilding    statekit.StateID = "building"
	StateSearching   statekit.StateID = "searching"
	StateSolved      statekit.StateID = "solved"
	StateFailed      statekit.StateID = "failed"
	StateTimeout     statekit.StateID = "timeout"
	StateOutOfMemory statekit.StateID = "out_of_memory"
	StateUnsupported statekit.StateID = "unsupported"
)

// Lifecycle event types.
const (
	EventStartSearch       statekit.EventType = "START_SEARCH"
	EventSolve             statekit.EventType = "SOLVE"
	EventFail              statekit.EventType = "FAIL"
	EventExceedTime        statekit.EventType = "EXCEED_TIME"
	EventExhaustMemory     statekit.EventType = "EXHAUST_MEMORY"
	EventRejectUnsupported statekit.EventType = "REJECT_UNSUPPORTED"
)

// SolvedPayload carries the winning plan into the Solved state.
type SolvedPayload struct {
	Plan *plan.Plan
}

// ReasonPayload carries a human-readable reason into a failure state.
type ReasonPayload struct {
	Reason string
	Err    error
}

// NewRunMachine builds the run-lifecycle statechart.
func NewRunMachine() (*statekit.MachineConfig[*RunContext], error) {
	return statekit.NewMachine[*RunContext]("run").
		WithInitial(StateBuilding).
		WithContext(&RunContext{}).
		WithAction("logEntry", logStateEntry).
		WithAction("recordSolved", recordSolved).
		WithAction("recordReason", recordReason).
		WithGuard("hasPlan", guardHasPlan).
		State(StateBuilding).
		OnEntry("logEntry").
		On(EventStartSearch).Target(StateSearching).
		On(EventFail).Target(StateFailed).Do("recordReason").
		On(EventRejectUnsupported).Target(StateUnsupported).Do("recordReason").
		Done().
		State(StateSearching).
		OnEntry("logEntry").
		On(EventSolve).Target(StateSolved).Guard("hasPlan").Do("recordSolved").
		On(EventFail).Target(StateFailed).Do("recordReason").
		On(EventExceedTime).Target(StateTimeout).Do("recordReason").
		On(EventExhaustMemory).Target(StateOutOfMemory).Do("recordReason").
		Done().
		State(StateSolved).
		Final().
		OnEntry("logEntry").
		Done().
		State(StateFailed).
		Final().
		OnEntry("logEntry").
		Done().
		State(StateTimeout).
		Final().
		OnEntry("logEntry").
		Done().
		State(StateOutOfMemory).
		Final().
		OnEntry("logEntry").
		Done().
		State(StateUnsupported).
		Final().
		OnEntry("logEntry").
		Done().
		Build()
}

// KindForState maps a terminal lifecycle state to its error kind for
// exit-code selection (spec.md §6, domain/searcherr).
func KindForState(s statekit.StateID) searcherr.Kind {
	switch s {
	case StateFailed:
		return searcherr.KindInternal
	case StateTimeout, StateOutOfMemory:
		return searcherr.KindResource
	case StateUnsupported:
		return searcherr.KindUnsupported
	default:
		return searcherr.KindInternal
	}
}
