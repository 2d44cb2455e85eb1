// Package observability provides logging, metrics, and tracing helpers for
// switchkit: structured logging via slog, metrics and tracing via
// OpenTelemetry, and the plain-text diagnostic stream for state changes.
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds switch context to a logger.
// Returns a new logger with a switch_id field.
func EnrichLogger(logger *slog.Logger, switchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("switch_id", switchID),
	)
}

// LogBindStart logs the start of a discovery pass.
func LogBindStart(logger *slog.Logger, rolePrefix string) {
	if logger == nil {
		return
	}
	logger.Debug("switch discovery starting",
		slog.String("role_prefix", rolePrefix),
	)
}

// LogBindComplete logs the end of a discovery pass.
func LogBindComplete(logger *slog.Logger, bound int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("switch discovery completed",
		slog.Int("switches_bound", bound),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogBound logs a controller binding to its element.
func LogBound(logger *slog.Logger, switchID string, initial string) {
	if logger == nil {
		return
	}
	logger.Debug("switch bound",
		slog.String("switch_id", switchID),
		slog.String("state", initial),
	)
}

// LogBindSkipped logs an element skipped during discovery (tolerant mode).
func LogBindSkipped(logger *slog.Logger, tag string, reason string) {
	if logger == nil {
		return
	}
	logger.Warn("switch skipped",
		slog.String("tag", tag),
		slog.String("reason", reason),
	)
}

// LogStateChange logs an observed on/off transition.
func LogStateChange(logger *slog.Logger, switchID string, state string) {
	if logger == nil {
		return
	}
	logger.Info("switch state changed",
		slog.String("switch_id", switchID),
		slog.String("state", state),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
