package switchkit

import (
	"io"
	"log/slog"

	"github.com/randalmurphal/switchkit/pkg/switchkit/config"
	"github.com/randalmurphal/switchkit/pkg/switchkit/observability"
)

// bindConfig holds configuration for controller construction and discovery.
type bindConfig struct {
	rolePrefix string
	focusClass string
	strictIDs  bool
	logger     *slog.Logger
	diag       *observability.Diagnostics
	metrics    observability.MetricsRecorder
	spans      observability.SpanManager
}

// defaultBindConfig returns the default binding configuration.
func defaultBindConfig() bindConfig {
	return bindConfig{
		rolePrefix: "switch",
		focusClass: "focus",
		diag:       observability.NewDiagnostics(nil),
		metrics:    observability.NoopMetrics{},
		spans:      observability.NoopSpanManager{},
	}
}

// Option configures binding behavior.
type Option func(*bindConfig)

// WithRolePrefix sets the token the element's role attribute must start
// with to qualify as a switch. Default: "switch"
func WithRolePrefix(prefix string) Option {
	return func(c *bindConfig) {
		if prefix != "" {
			c.rolePrefix = prefix
		}
	}
}

// WithFocusClass sets the style class added to a switch's container while
// the switch holds keyboard focus. Default: "focus"
func WithFocusClass(class string) Option {
	return func(c *bindConfig) {
		if class != "" {
			c.focusClass = class
		}
	}
}

// WithStrictIdentifiers makes binding fail fast on a missing or duplicate
// identifier instead of skipping or overwriting.
//
// Default is the tolerant behavior: an element without an identifier is
// skipped with a warning, and when two elements share an identifier the
// last registration wins.
func WithStrictIdentifiers() Option {
	return func(c *bindConfig) {
		c.strictIDs = true
	}
}

// WithLogger sets the structured logger for bind and transition logs.
// Default: no logging
func WithLogger(logger *slog.Logger) Option {
	return func(c *bindConfig) {
		c.logger = logger
	}
}

// WithDiagnostics redirects the per-transition diagnostic line
// ("<identifier> is now <on|off>") to w. Default: stderr
func WithDiagnostics(w io.Writer) Option {
	return func(c *bindConfig) {
		c.diag = observability.NewDiagnostics(w)
	}
}

// WithMetrics sets the metrics recorder. Default: no-op
//
// Example:
//
//	controllers, err := switchkit.Bind(doc, states,
//	    switchkit.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *bindConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans around discovery and per-element
// binding. Default: disabled
func WithTracing(enabled bool) Option {
	return func(c *bindConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// FromConfig maps a loaded configuration onto binding options.
//
// Recognized keys:
//
//	role_prefix        string  (default "switch")
//	focus_class        string  (default "focus")
//	strict_identifiers bool    (default false)
//	tracing            bool    (default false)
func FromConfig(cfg config.Config) []Option {
	var opts []Option
	if cfg.Has("role_prefix") {
		opts = append(opts, WithRolePrefix(cfg.String("role_prefix", "switch")))
	}
	if cfg.Has("focus_class") {
		opts = append(opts, WithFocusClass(cfg.String("focus_class", "focus")))
	}
	if cfg.Bool("strict_identifiers", false) {
		opts = append(opts, WithStrictIdentifiers())
	}
	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}
	return opts
}
