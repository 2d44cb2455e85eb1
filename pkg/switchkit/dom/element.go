package dom

import (
	"context"

	"github.com/randalmurphal/switchkit/pkg/switchkit/event"
)

// Element is a node in the document tree. Elements carry a tag, an optional
// identifier, string attributes, a class list, a checked flag (meaningful
// for checkbox inputs), and a per-element event dispatcher.
//
// Element is NOT safe for concurrent mutation. All mutation happens either
// during single-goroutine tree construction or inside synchronous event
// handlers, matching the single-threaded event-loop model.
type Element struct {
	tag      string
	id       string
	attrs    map[string]string
	classes  *ClassList
	checked  bool
	parent   *Element
	children []*Element

	doc        *Document
	dispatcher *event.Dispatcher
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{
		tag:        tag,
		attrs:      make(map[string]string),
		classes:    NewClassList(),
		dispatcher: event.NewDispatcher(event.DispatcherConfig{}),
	}
}

// NewSwitchInput creates a checkbox input carrying the accessibility role
// "switch" - the element shape the discovery predicate matches.
func NewSwitchInput(id string, checked bool) *Element {
	el := NewElement("input").
		SetID(id).
		SetAttribute("type", "checkbox").
		SetAttribute("role", "switch")
	el.checked = checked
	return el
}

// SetID sets the element identifier. Returns the element for chaining.
func (e *Element) SetID(id string) *Element {
	e.id = id
	return e
}

// ID returns the element identifier, or "" when none is set.
func (e *Element) ID() string {
	return e.id
}

// Tag returns the element tag (e.g., "input", "label").
func (e *Element) Tag() string {
	return e.tag
}

// SetAttribute sets a string attribute. Returns the element for chaining.
func (e *Element) SetAttribute(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// Attribute returns the attribute value, or "" when the attribute is absent.
func (e *Element) Attribute(name string) string {
	return e.attrs[name]
}

// HasAttribute reports whether the attribute is set.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// Classes returns the element's class list.
func (e *Element) Classes() *ClassList {
	return e.classes
}

// Checked returns the element's checked flag.
func (e *Element) Checked() bool {
	return e.checked
}

// SetChecked sets the checked flag without dispatching a change event,
// mirroring programmatic assignment to the checked property. Use Click or
// Toggle to simulate user interaction.
func (e *Element) SetChecked(checked bool) {
	e.checked = checked
}

// Parent returns the element's parent, or nil for a detached or root
// element. The parent is the switch's immediate structural container.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in document order. The returned
// slice is the element's own; callers must not mutate it.
func (e *Element) Children() []*Element {
	return e.children
}

// AppendChild attaches child as the last child of e. Returns e for
// chaining. A child already attached elsewhere is not detached first;
// callers build trees top-down.
func (e *Element) AppendChild(child *Element) *Element {
	child.parent = e
	child.setDocument(e.doc)
	e.children = append(e.children, child)
	return e
}

func (e *Element) setDocument(doc *Document) {
	e.doc = doc
	for _, child := range e.children {
		child.setDocument(doc)
	}
}

// AddEventListener registers a handler for one event type and returns the
// registration handle.
func (e *Element) AddEventListener(eventType string, handler event.Handler) *event.Listener {
	return e.dispatcher.AddListener(eventType, handler)
}

// DispatchEvent delivers evt synchronously to this element's listeners.
func (e *Element) DispatchEvent(ctx context.Context, evt event.Event) error {
	return e.dispatcher.Dispatch(ctx, evt)
}

// Focus gives the element keyboard focus, dispatching a focus event. When
// the element belongs to a document, the previously focused element is
// blurred first.
func (e *Element) Focus(ctx context.Context) error {
	if e.doc != nil {
		return e.doc.focusElement(ctx, e)
	}
	return e.DispatchEvent(ctx, event.New(event.TypeFocus, e.id, e))
}

// Blur removes keyboard focus, dispatching a blur event. Blurring an
// unfocused element still dispatches; handlers are required to be
// idempotent.
func (e *Element) Blur(ctx context.Context) error {
	if e.doc != nil && e.doc.focused == e {
		e.doc.focused = nil
	}
	return e.DispatchEvent(ctx, event.New(event.TypeBlur, e.id, e))
}

// Toggle flips the checked flag and dispatches a change event, simulating a
// user-driven state change.
func (e *Element) Toggle(ctx context.Context) error {
	e.checked = !e.checked
	return e.DispatchEvent(ctx, event.New(event.TypeChange, e.id, e))
}

// Click simulates a user click. On a checkbox input this toggles the
// checked flag and fires change; on other elements it is a no-op.
func (e *Element) Click(ctx context.Context) error {
	if e.tag == "input" && e.Attribute("type") == "checkbox" {
		return e.Toggle(ctx)
	}
	return nil
}

func newFocusEvent(e *Element) event.Event {
	return event.New(event.TypeFocus, e.id, e)
}

func newBlurEvent(e *Element) event.Event {
	return event.New(event.TypeBlur, e.id, e)
}
