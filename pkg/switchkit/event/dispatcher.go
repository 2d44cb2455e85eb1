package event

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
)

// Dispatcher delivers events to listeners registered per event type.
//
// Delivery is fully synchronous: Dispatch runs every matching listener to
// completion, in registration order, on the calling goroutine. There is no
// buffering, no fan-out goroutine, and no concurrent handler execution.
// This matches the single-threaded event-loop model the switch controllers
// are written against.
type Dispatcher struct {
	config DispatcherConfig

	mu        sync.RWMutex
	listeners map[string][]*Listener

	middleware []MiddlewareFunc
	nextID     atomic.Int64
}

// DispatcherConfig configures dispatcher behavior.
type DispatcherConfig struct {
	// OnError is called when a listener returns an error. Delivery to the
	// remaining listeners continues regardless.
	OnError func(evt Event, listenerID string, err error)
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher(config DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		config:    config,
		listeners: make(map[string][]*Listener),
	}
}

// Listener is an active registration on a dispatcher. Remove detaches it;
// removing an already-removed listener is a no-op.
type Listener struct {
	id      string
	typ     string
	handler Handler
	d       *Dispatcher
	removed atomic.Bool
}

// ID returns the listener's dispatcher-local identifier.
func (l *Listener) ID() string {
	return l.id
}

// Remove detaches the listener from its dispatcher.
func (l *Listener) Remove() {
	if !l.removed.CompareAndSwap(false, true) {
		return
	}

	l.d.mu.Lock()
	defer l.d.mu.Unlock()

	entries := l.d.listeners[l.typ]
	for i, entry := range entries {
		if entry == l {
			l.d.listeners[l.typ] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Use adds middleware that applies to listeners registered afterwards.
func (d *Dispatcher) Use(mw MiddlewareFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.middleware = append(d.middleware, mw)
}

// AddListener registers a handler for one event type and returns the
// registration handle.
func (d *Dispatcher) AddListener(eventType string, handler Handler) *Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	l := &Listener{
		id:      strconv.FormatInt(d.nextID.Add(1), 10),
		typ:     eventType,
		handler: ChainMiddleware(handler, d.middleware...),
		d:       d,
	}
	d.listeners[eventType] = append(d.listeners[eventType], l)
	return l
}

// ListenerCount returns the number of listeners registered for an event type.
func (d *Dispatcher) ListenerCount(eventType string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[eventType])
}

// Dispatch delivers evt to every listener registered for evt.Type, in
// registration order. Listener errors are reported via OnError and never
// abort delivery. Dispatch itself returns an error only when ctx is
// already cancelled.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Snapshot under read lock so listeners may remove themselves
	// (or register new listeners) from inside a handler.
	d.mu.RLock()
	entries := make([]*Listener, len(d.listeners[evt.Type]))
	copy(entries, d.listeners[evt.Type])
	d.mu.RUnlock()

	for _, l := range entries {
		if l.removed.Load() {
			continue
		}
		if err := l.handler.Handle(ctx, evt); err != nil && d.config.OnError != nil {
			d.config.OnError(evt, l.id, err)
		}
	}

	return nil
}
