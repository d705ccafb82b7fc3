package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the hierarchy tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("hierarchy")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSyncSpan starts a span for a full relation sync.
	// Returns the context with span and the span itself.
	StartSyncSpan(ctx context.Context, concept, kind string) (context.Context, trace.Span)

	// StartDiffSpan starts a span for delta computation.
	// The diff span should be a child of the sync span.
	StartDiffSpan(ctx context.Context, concept, kind string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSyncSpan starts a span for a full relation sync.
func (m *otelSpanManager) StartSyncSpan(ctx context.Context, concept, kind string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "hierarchy.sync",
		trace.WithAttributes(
			attribute.String("concept", concept),
			attribute.String("kind", kind),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartDiffSpan starts a span for delta computation.
func (m *otelSpanManager) StartDiffSpan(ctx context.Context, concept, kind string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "hierarchy.diff",
		trace.WithAttributes(
			attribute.String("concept", concept),
			attribute.String("kind", kind),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
