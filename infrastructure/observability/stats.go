package observability

import (
	"context"
	"time"

	"github.com/felixgeelhaar/planner-go/domain/telemetry"
)

// SearchMetrics records the eager search loop's running counters
// (spec.md §6 Statistics: generated, evaluated, expanded, reopened,
// dead_ends) and its f-value distribution over one Meter. Grounded on
// the teacher's AgentMetrics (infrastructure/observability/middleware.go),
// which built a small struct of named instruments once instead of
// constructing OTel calls inline at every call site.
type SearchMetrics struct {
	Generated telemetry.Counter
	Evaluated telemetry.Counter
	Expanded  telemetry.Counter
	Reopened  telemetry.Counter
	DeadEnds  telemetry.Counter

	FValue         telemetry.Histogram
	PlanCost       telemetry.Histogram
	SearchDuration telemetry.Histogram
}

// NewSearchMetrics creates the search instruments from meter.
func NewSearchMetrics(meter telemetry.Meter) *SearchMetrics {
	return &SearchMetrics{
		Generated: meter.Counter("search.nodes.generated",
			telemetry.WithDescription("Number of successor states generated"),
			telemetry.WithUnit("{state}"),
		),
		Evaluated: meter.Counter("search.nodes.evaluated",
			telemetry.WithDescription("Number of states passed to an evaluator"),
			telemetry.WithUnit("{state}"),
		),
		Expanded: meter.Counter("search.nodes.expanded",
			telemetry.WithDescription("Number of states popped from the open list and expanded"),
			telemetry.WithUnit("{state}"),
		),
		Reopened: meter.Counter("search.nodes.reopened",
			telemetry.WithDescription("Number of closed states reopened via a cheaper path"),
			telemetry.WithUnit("{state}"),
		),
		DeadEnds: meter.Counter("search.nodes.dead_ends",
			telemetry.WithDescription("Number of states pruned as dead ends"),
			telemetry.WithUnit("{state}"),
		),
		FValue: meter.Histogram("search.node.f_value",
			telemetry.WithDescription("Evaluator f-value of expanded nodes"),
			telemetry.WithUnit("{unit}"),
		),
		PlanCost: meter.Histogram("search.plan.cost",
			telemetry.WithDescription("Cost of the plan a run produced"),
			telemetry.WithUnit("{unit}"),
		),
		SearchDuration: meter.Histogram("search.run.duration_seconds",
			telemetry.WithDescription("Wall-clock duration of a search run"),
			telemetry.WithUnit("s"),
		),
	}
}

// RecordGenerated records n successor states generated by expanding one node.
func (m *SearchMetrics) RecordGenerated(ctx context.Context, n int64) {
	m.Generated.Add(ctx, n)
}

// RecordEvaluated records one state passed through the evaluator tree.
func (m *SearchMetrics) RecordEvaluated(ctx context.Context) {
	m.Evaluated.Add(ctx, 1)
}

// RecordExpanded records one node popped off the open list and expanded,
// and its f-value at expansion time.
func (m *SearchMetrics) RecordExpanded(ctx context.Context, fValue int) {
	m.Expanded.Add(ctx, 1)
	m.FValue.Record(ctx, float64(fValue))
}

// RecordReopened records one closed node reopened via a cheaper path.
func (m *SearchMetrics) RecordReopened(ctx context.Context) {
	m.Reopened.Add(ctx, 1)
}

// RecordDeadEnd records one node pruned as a dead end.
func (m *SearchMetrics) RecordDeadEnd(ctx context.Context) {
	m.DeadEnds.Add(ctx, 1)
}

// RecordOutcome records a run's terminal outcome: the lifecycle state
// it ended in (infrastructure/statemachine), the plan cost (0 if none),
// and the run's wall-clock duration.
func (m *SearchMetrics) RecordOutcome(ctx context.Context, outcome string, planCost int, duration time.Duration) {
	attrs := []telemetry.Attribute{telemetry.String("outcome", outcome)}
	m.PlanCost.Record(ctx, float64(planCost), attrs...)
	m.SearchDuration.Record(ctx, duration.Seconds(), attrs...)
}

// TraceRun starts a span covering one engine run, tagged with the run ID.
func TraceRun(ctx context.Context, tracer telemetry.Tracer, runID string) (context.Context, telemetry.Span) {
	return tracer.StartSpan(ctx, "search.run",
		telemetry.WithAttributes(telemetry.String("run.id", runID)),
		telemetry.WithSpanKind(telemetry.SpanKindInternal),
	)
}

// TraceOutcome finishes a run span with its terminal outcome.
func TraceOutcome(span telemetry.Span, outcome string, err error) {
	span.SetAttributes(telemetry.String("search.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(telemetry.StatusCodeError, err.Error())
	} else {
		span.SetStatus(telemetry.StatusCodeOK, "")
	}
	span.End()
}
