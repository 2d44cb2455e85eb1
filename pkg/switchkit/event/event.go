package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Well-known event types dispatched by switch elements.
const (
	TypeFocus  = "focus"
	TypeBlur   = "blur"
	TypeChange = "change"
)

// Event is a single UI occurrence: focus gained or lost, or a checked-state
// change. Events are immutable once created - any modification creates a
// new event.
type Event struct {
	// ID is the unique event identifier.
	ID string

	// Type is the event type (e.g., "focus", "change").
	Type string

	// TargetID is the identifier of the element the event fired on.
	// May be empty when the element carries no identifier.
	TargetID string

	// Target is the element the event fired on. Handlers that need more
	// than the identifier assert it to the concrete element type.
	Target any

	// Timestamp records when the event occurred.
	Timestamp time.Time
}

// Option configures event creation.
type Option func(*eventConfig)

type eventConfig struct {
	id        string
	timestamp time.Time
}

// WithEventID sets a specific event ID (default: auto-generated UUID).
func WithEventID(id string) Option {
	return func(cfg *eventConfig) {
		cfg.id = id
	}
}

// WithTimestamp sets a specific timestamp (default: time.Now()).
func WithTimestamp(t time.Time) Option {
	return func(cfg *eventConfig) {
		cfg.timestamp = t
	}
}

// New creates an event of the given type fired on the given target.
func New(eventType, targetID string, target any, opts ...Option) Event {
	cfg := &eventConfig{
		id:        uuid.New().String(),
		timestamp: time.Now(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return Event{
		ID:        cfg.id,
		Type:      eventType,
		TargetID:  targetID,
		Target:    target,
		Timestamp: cfg.timestamp,
	}
}

// Handler processes a dispatched event.
//
// Handlers run synchronously on the dispatching goroutine and should not
// block. A handler error does not abort delivery to later handlers; it is
// reported through the dispatcher's OnError hook.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// MiddlewareFunc wraps handlers to add cross-cutting concerns.
type MiddlewareFunc func(next Handler) Handler

// ChainMiddleware applies middleware in order, with first middleware outermost.
func ChainMiddleware(handler Handler, middleware ...MiddlewareFunc) Handler {
	// Apply in reverse order so first middleware is outermost
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}
