package switchkit

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/switchkit/pkg/switchkit/dom"
	"github.com/randalmurphal/switchkit/pkg/switchkit/observability"
)

// IsSwitch reports whether el qualifies as a switch: a checkbox input
// whose role attribute starts with rolePrefix. This predicate is the sole
// coupling between discovery and the surrounding document structure.
func IsSwitch(el *dom.Element, rolePrefix string) bool {
	return el.Tag() == "input" &&
		el.Attribute("type") == "checkbox" &&
		strings.HasPrefix(el.Attribute("role"), rolePrefix)
}

// Bind runs the discovery pass: it selects every switch element in doc, in
// document order, and constructs one Controller per match against states.
//
// Elements added to the document after Bind returns are not observed;
// callers that mutate the tree run Bind again over a fresh registry or
// construct controllers directly.
//
// Tolerant mode (the default) skips elements without an identifier and
// lets the last of two same-identifier elements win the registry entry.
// With WithStrictIdentifiers, either condition aborts the pass with a
// BindError; controllers already bound during the pass keep their
// subscriptions and registry entries.
func Bind(doc *dom.Document, states *StateRegistry, opts ...Option) ([]*Controller, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if states == nil {
		return nil, ErrNilRegistry
	}

	cfg := defaultBindConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := cfg.spans.StartBindSpan(context.Background(), cfg.rolePrefix)
	done := observability.TimedOperation()
	observability.LogBindStart(cfg.logger, cfg.rolePrefix)

	matches := doc.FindAll(func(el *dom.Element) bool {
		return IsSwitch(el, cfg.rolePrefix)
	})

	controllers := make([]*Controller, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, el := range matches {
		id := el.ID()
		if id == "" {
			if cfg.strictIDs {
				err := &BindError{Op: "bind", Err: ErrMissingID}
				cfg.spans.EndSpanWithError(span, err)
				return controllers, err
			}
			observability.LogBindSkipped(cfg.logger, el.Tag(), "missing identifier")
			continue
		}
		if _, dup := seen[id]; dup && cfg.strictIDs {
			err := &BindError{ElementID: id, Op: "bind", Err: ErrDuplicateID}
			cfg.spans.EndSpanWithError(span, err)
			return controllers, err
		}
		seen[id] = struct{}{}

		elCtx, elSpan := cfg.spans.StartElementSpan(ctx, id)
		ctrl, err := NewController(el, states, opts...)
		cfg.spans.EndSpanWithError(elSpan, err)
		if err != nil {
			cfg.spans.EndSpanWithError(span, err)
			return controllers, err
		}
		cfg.spans.AddSpanEvent(elCtx, "switch.bound",
			attribute.String("switch.id", id))
		controllers = append(controllers, ctrl)
	}

	observability.LogBindComplete(cfg.logger, len(controllers), done())
	cfg.spans.EndSpanWithError(span, nil)

	return controllers, nil
}
