package switchkit

import "github.com/randalmurphal/switchkit/pkg/switchkit/registry"

// State is the logical position of a switch. It is derived from the
// element's checked flag and never holds an intermediate value.
type State string

const (
	// StateOn means the underlying element is checked.
	StateOn State = "on"

	// StateOff means the underlying element is unchecked.
	StateOff State = "off"
)

// StateFromChecked maps an element's checked flag to its logical state.
func StateFromChecked(checked bool) State {
	if checked {
		return StateOn
	}
	return StateOff
}

// Toggled returns the opposite state.
func (s State) Toggled() State {
	if s == StateOn {
		return StateOff
	}
	return StateOn
}

// String returns "on" or "off".
func (s State) String() string {
	return string(s)
}

// StateRegistry is the shared mapping from switch identifier to logical
// state. Each controller writes only its own key; the registry as a whole
// is exposed to any collaborator holding a reference, so it is
// mutex-guarded even though dispatch itself is single-threaded.
//
// The registry is injectable by design: construct one with
// NewStateRegistry and pass it to Bind or NewController. Nothing in this
// package keeps an ambient global.
type StateRegistry = registry.Registry[string, State]

// NewStateRegistry creates an empty state registry.
func NewStateRegistry() *StateRegistry {
	return registry.New[string, State]()
}
