package switchkit

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/switchkit/pkg/switchkit/dom"
	"github.com/randalmurphal/switchkit/pkg/switchkit/event"
	"github.com/randalmurphal/switchkit/pkg/switchkit/observability"
)

// Controller owns switch behavior for a single element: it seeds and
// maintains the element's registry entry, mirrors focus into a style class
// on the container, and emits one diagnostic line per state change.
//
// The container reference is resolved once at construction and reused by
// every focus and blur, never re-traversed. Handlers are named methods
// bound once per instance; they run synchronously and never return an
// error on well-formed events.
type Controller struct {
	element   *dom.Element
	id        string
	container *dom.Element
	states    *StateRegistry

	focusClass string
	logger     *slog.Logger
	diag       *observability.Diagnostics
	metrics    observability.MetricsRecorder

	listeners []*event.Listener
}

// NewController binds a controller to el.
//
// Construction captures the element's identifier and container, computes
// the initial logical state from the current checked flag, writes it into
// states, and subscribes the focus, blur, and change handlers.
//
// A missing identifier always fails: the controller would have no registry
// key to write. A missing container fails only under
// WithStrictIdentifiers; tolerantly bound controllers without a container
// treat focus styling as a no-op. Duplicate identifiers are not detected
// here - a second controller for the same identifier simply overwrites the
// registry entry (last registration wins); Bind enforces uniqueness in
// strict mode.
func NewController(el *dom.Element, states *StateRegistry, opts ...Option) (*Controller, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	if states == nil {
		return nil, ErrNilRegistry
	}

	cfg := defaultBindConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := el.ID()
	if id == "" {
		return nil, &BindError{Op: "bind", Err: ErrMissingID}
	}

	container := el.Parent()
	if container == nil && cfg.strictIDs {
		return nil, &BindError{ElementID: id, Op: "bind", Err: ErrNoContainer}
	}

	c := &Controller{
		element:    el,
		id:         id,
		container:  container,
		states:     states,
		focusClass: cfg.focusClass,
		logger:     cfg.logger,
		diag:       cfg.diag,
		metrics:    cfg.metrics,
	}

	initial := StateFromChecked(el.Checked())
	states.Set(id, initial)

	c.listeners = []*event.Listener{
		el.AddEventListener(event.TypeFocus, event.HandlerFunc(c.OnFocus)),
		el.AddEventListener(event.TypeBlur, event.HandlerFunc(c.OnBlur)),
		el.AddEventListener(event.TypeChange, event.HandlerFunc(c.OnChange)),
	}

	cfg.metrics.RecordBind(context.Background(), id, initial.String())
	observability.LogBound(cfg.logger, id, initial.String())

	return c, nil
}

// ID returns the controller's switch identifier.
func (c *Controller) ID() string {
	return c.id
}

// Element returns the bound element.
func (c *Controller) Element() *dom.Element {
	return c.element
}

// Container returns the element's structural container, or nil when the
// element was bound detached.
func (c *Controller) Container() *dom.Element {
	return c.container
}

// State returns the registry entry for this switch.
func (c *Controller) State() (State, bool) {
	return c.states.Get(c.id)
}

// OnFocus adds the focus class to the container. Adding an already-present
// class leaves a single entry, so repeated focus events without an
// intervening blur are harmless.
func (c *Controller) OnFocus(ctx context.Context, _ event.Event) error {
	if c.container != nil {
		c.container.Classes().Add(c.focusClass)
	}
	c.metrics.RecordFocus(ctx, c.id, true)
	return nil
}

// OnBlur removes the focus class from the container. Removing an absent
// class is a no-op, keeping blur idempotent and symmetric with OnFocus.
func (c *Controller) OnBlur(ctx context.Context, _ event.Event) error {
	if c.container != nil {
		c.container.Classes().Remove(c.focusClass)
	}
	c.metrics.RecordFocus(ctx, c.id, false)
	return nil
}

// OnChange reads the element's current checked flag, writes the mapped
// state into the registry under this controller's identifier, and emits
// one diagnostic line reporting the transition.
func (c *Controller) OnChange(ctx context.Context, _ event.Event) error {
	state := StateFromChecked(c.element.Checked())
	c.states.Set(c.id, state)

	c.diag.StateChange(c.id, state.String())
	observability.LogStateChange(c.logger, c.id, state.String())
	c.metrics.RecordTransition(ctx, c.id, state.String())
	return nil
}

// Unbind removes the controller's event subscriptions. The registry entry
// is left in place: entries outlive their controllers and are cleared only
// by whoever owns the registry.
func (c *Controller) Unbind() {
	for _, l := range c.listeners {
		l.Remove()
	}
	c.listeners = nil
}
