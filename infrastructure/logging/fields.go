package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/planner-go/domain/task"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for search-engine logging.

// RunID adds a run ID field.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// StateID adds a search-node state id field.
func StateID(id task.StateID) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("state_id", int(id))
	}
}

// OperatorID adds an applied-operator id field.
func OperatorID(id task.OperatorID) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("operator_id", int(id))
	}
}

// OperatorName adds an operator name field.
func OperatorName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operator", name)
	}
}

// GValue adds a g-value field.
func GValue(g int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("g", g)
	}
}

// FValue adds an f-value field.
func FValue(f int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("f", f)
	}
}

// Expanded adds the cumulative expanded-node count field.
func Expanded(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("expanded", n)
	}
}

// Generated adds the cumulative generated-node count field.
func Generated(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("generated", n)
	}
}

// Reopened adds the cumulative reopened-node count field.
func Reopened(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("reopened", n)
	}
}

// DeadEnds adds the cumulative dead-end count field.
func DeadEnds(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("dead_ends", n)
	}
}

// PlanCost adds a plan cost field.
func PlanCost(cost int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("plan_cost", cost)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// DurationNs adds a duration field in nanoseconds.
func DurationNs(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ns", d.Nanoseconds())
	}
}

// Cached adds a cached field, true when an evaluator estimate came from
// infrastructure/cache rather than a fresh evaluation.
func Cached(cached bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("cached", cached)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Reason adds a reason field, used when a run ends in a non-Solved
// lifecycle state.
func Reason(reason string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("reason", reason)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
