/*
Package switchkit attaches accessible toggle-switch behavior to
checkbox-style elements.

# Overview

A switch is a two-state (on/off) control implemented atop a binary
checkable input with switch accessibility semantics. switchkit binds one
Controller to each qualifying element, maintains a shared registry mapping
element identifier to logical state, mirrors keyboard focus into a style
class on the element's container, and emits one diagnostic line per state
transition.

All behavior is event-driven and synchronous: handlers run to completion on
the goroutine that dispatches the event, with no polling and no background
scheduling.

# Basic Usage

Build a document, create a registry, and bind:

	doc := dom.NewDocument()
	label := dom.NewElement("label")
	label.AppendChild(dom.NewSwitchInput("darkmode", false))
	doc.Body().AppendChild(label)

	states := switchkit.NewStateRegistry()
	controllers, err := switchkit.Bind(doc, states)
	if err != nil {
	    log.Fatal(err)
	}

	state, _ := states.Get("darkmode") // StateOff

Discovery selects every checkbox input whose role attribute starts with
"switch" (configurable via WithRolePrefix), in document order. Elements
added to the document afterwards are not bound; run Bind again or use
NewController directly.

# State Changes

A change event re-reads the element's checked flag, updates the registry
entry, and writes one line to the diagnostic stream:

	input := doc.GetElementByID("darkmode")
	input.Click(ctx)
	// registry: darkmode -> on
	// diagnostics: "darkmode is now on"

# Focus Styling

Focus adds a class (default "focus") to the element's immediate structural
container - resolved once at construction, never re-traversed - and blur
removes it. Both directions are idempotent: repeated focus leaves exactly
one class entry, and blurring an unfocused switch is a no-op.

# Identifier Discipline

Identifiers must be non-empty and unique among bound elements. By default
switchkit tolerates malformed input the way the underlying platform does:
elements without an identifier are skipped with a warning, and when two
elements share an identifier the last registration wins. Pass
WithStrictIdentifiers to fail fast with ErrMissingID or ErrDuplicateID
instead.

# Observability

Structured logging, metrics, and tracing follow the observability
subpackage:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	controllers, err := switchkit.Bind(doc, states,
	    switchkit.WithLogger(logger),
	    switchkit.WithMetrics(observability.NewMetricsRecorder()),
	    switchkit.WithTracing(true))

The per-transition diagnostic line ("<identifier> is now <on|off>") is
separate from structured logging and defaults to stderr; redirect it with
WithDiagnostics.

# Thread Safety

  - Controller and dom trees are single-threaded by design
  - StateRegistry IS safe for concurrent use (it is exposed process-wide)
  - Dispatch is synchronous; no two handlers ever run concurrently

# Subpackages

  - dom: minimal in-memory element model the controllers bind against
  - event: synchronous event dispatch primitives
  - registry: generic thread-safe registry backing StateRegistry
  - observability: logging, metrics, tracing, diagnostics
  - config: YAML/JSON option loading
*/
package switchkit
