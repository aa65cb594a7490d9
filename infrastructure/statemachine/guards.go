package statemachine

import "github.com/felixgeelhaar/statekit"

// guardHasPlan rejects a SOLVE event with no plan attached, catching a
// caller bug at the chart level instead of silently entering Solved
// with a nil plan.
func guardHasPlan(_ *RunContext, event statekit.Event) bool {
	payload, ok := event.Payload.(SolvedPayload)
	return ok && payload.Plan != nil
}
