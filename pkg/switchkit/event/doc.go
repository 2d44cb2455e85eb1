// Package event provides the synchronous event primitives switch elements
// dispatch on: focus, blur, and change.
//
// The model is deliberately small:
//   - Event carries a UUID, a type, the target element, and a timestamp
//   - Handler/HandlerFunc process events; middleware wraps handlers
//   - Dispatcher holds per-type listener lists and delivers synchronously,
//     in registration order, on the dispatching goroutine
//
// There is no pub/sub fan-out and no background goroutine: every event is a
// direct, immediate reaction to a user-driven action, and handlers run to
// completion before the dispatching call returns. Listener errors are
// observed through DispatcherConfig.OnError and never abort delivery.
package event
