package switchkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding and discovery.
var (
	// ErrNilDocument indicates Bind was called with a nil document.
	ErrNilDocument = errors.New("document cannot be nil")

	// ErrNilElement indicates NewController was called with a nil element.
	ErrNilElement = errors.New("element cannot be nil")

	// ErrNilRegistry indicates a nil state registry was supplied.
	ErrNilRegistry = errors.New("state registry cannot be nil")

	// ErrMissingID indicates an element carries no identifier.
	// Reported only in strict mode; tolerant mode skips the element.
	ErrMissingID = errors.New("element has no identifier")

	// ErrDuplicateID indicates two elements in one discovery pass share an
	// identifier. Reported only in strict mode; tolerant mode lets the
	// last registration win.
	ErrDuplicateID = errors.New("duplicate switch identifier")

	// ErrNoContainer indicates an element has no parent to carry the focus
	// class. Reported only in strict mode; tolerant mode binds anyway and
	// focus styling becomes a no-op.
	ErrNoContainer = errors.New("element has no structural container")
)

// BindError wraps an error with the element context it occurred on.
type BindError struct {
	// ElementID is the identifier of the element that failed to bind.
	// Empty when the failure is a missing identifier.
	ElementID string
	// Op is the operation that failed (e.g., "bind").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	if e.ElementID == "" {
		return fmt.Sprintf("switch %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("switch %q: %s: %v", e.ElementID, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Err
}
