package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records switch lifecycle metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordBind records a controller binding to an element.
	RecordBind(ctx context.Context, switchID string, initial string)

	// RecordTransition records an observed on/off state change.
	RecordTransition(ctx context.Context, switchID string, state string)

	// RecordFocus records a focus or blur on a bound element.
	RecordFocus(ctx context.Context, switchID string, focused bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	bound        metric.Int64Counter
	transitions  metric.Int64Counter
	focusChanges metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("switchkit")

	bound, err := meter.Int64Counter("switchkit.switch.bound",
		metric.WithDescription("Number of switch controllers bound"),
	)
	if err != nil {
		return nil, err
	}

	transitions, err := meter.Int64Counter("switchkit.switch.transitions",
		metric.WithDescription("Number of observed on/off state changes"),
	)
	if err != nil {
		return nil, err
	}

	focusChanges, err := meter.Int64Counter("switchkit.switch.focus_changes",
		metric.WithDescription("Number of focus and blur events on bound switches"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		bound:        bound,
		transitions:  transitions,
		focusChanges: focusChanges,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordBind records a controller binding to an element.
func (m *otelMetrics) RecordBind(ctx context.Context, switchID string, initial string) {
	m.bound.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("switch.id", switchID),
			attribute.String("switch.state", initial),
		),
	)
}

// RecordTransition records an observed on/off state change.
func (m *otelMetrics) RecordTransition(ctx context.Context, switchID string, state string) {
	m.transitions.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("switch.id", switchID),
			attribute.String("switch.state", state),
		),
	)
}

// RecordFocus records a focus or blur on a bound element.
func (m *otelMetrics) RecordFocus(ctx context.Context, switchID string, focused bool) {
	m.focusChanges.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("switch.id", switchID),
			attribute.Bool("switch.focused", focused),
		),
	)
}
