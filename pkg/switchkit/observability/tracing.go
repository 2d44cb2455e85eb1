package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the switchkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("switchkit")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartBindSpan starts a span covering a whole discovery pass.
	StartBindSpan(ctx context.Context, rolePrefix string) (context.Context, trace.Span)

	// StartElementSpan starts a span for binding a single element.
	// The element span should be a child of the bind span.
	StartElementSpan(ctx context.Context, switchID string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartBindSpan starts a span covering a whole discovery pass.
func (m *otelSpanManager) StartBindSpan(ctx context.Context, rolePrefix string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "switchkit.bind",
		trace.WithAttributes(
			attribute.String("role.prefix", rolePrefix),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartElementSpan starts a span for binding a single element.
func (m *otelSpanManager) StartElementSpan(ctx context.Context, switchID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "switchkit.bind."+switchID,
		trace.WithAttributes(
			attribute.String("switch.id", switchID),
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
