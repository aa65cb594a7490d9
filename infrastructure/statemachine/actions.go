package statemachine

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/planner-go/infrastructure/logging"
)

// logStateEntry logs the lifecycle transition. Statekit actions receive
// a pointer to the context; since ours is *RunContext, actions receive
// **RunContext.
func logStateEntry(ctx **RunContext, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx
	logging.Info().Add(logging.RunID(c.RunID)).Msg("run lifecycle transition")
}

// recordSolved stores the winning plan on entry to Solved.
func recordSolved(ctx **RunContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx
	if payload, ok := event.Payload.(SolvedPayload); ok {
		c.Plan = payload.Plan
	}
}

// recordReason stores the reason and error on entry to a failure state.
func recordReason(ctx **RunContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx
	if payload, ok := event.Payload.(ReasonPayload); ok {
		c.Reason = payload.Reason
		c.Err = payload.Err
	}
}
