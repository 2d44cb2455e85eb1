package dom

import "context"

// Document is a minimal in-memory element tree. It owns a body element that
// all content hangs off, tracks which element currently holds keyboard
// focus, and provides document-order traversal for discovery.
type Document struct {
	body    *Element
	focused *Element
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	d := &Document{
		body: NewElement("body"),
	}
	d.body.doc = d
	return d
}

// Body returns the document's body element.
func (d *Document) Body() *Element {
	return d.body
}

// FocusedElement returns the element currently holding focus, or nil.
func (d *Document) FocusedElement() *Element {
	return d.focused
}

// Walk visits every element in document order (depth-first, parents before
// children, siblings left to right), starting at the body. Walking stops
// when fn returns false.
func (d *Document) Walk(fn func(*Element) bool) {
	walk(d.body, fn)
}

func walk(el *Element, fn func(*Element) bool) bool {
	if !fn(el) {
		return false
	}
	for _, child := range el.children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// FindAll returns every element matching pred, in document order.
func (d *Document) FindAll(pred func(*Element) bool) []*Element {
	var matches []*Element
	d.Walk(func(el *Element) bool {
		if pred(el) {
			matches = append(matches, el)
		}
		return true
	})
	return matches
}

// GetElementByID returns the first element in document order with the given
// identifier, or nil. With duplicate identifiers in the tree, later
// elements are shadowed, mirroring browser lookup behavior.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.Walk(func(el *Element) bool {
		if el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// focusElement moves focus to el: the previously focused element receives a
// blur event before el receives focus. Focusing the already-focused element
// re-dispatches focus without an intervening blur.
func (d *Document) focusElement(ctx context.Context, el *Element) error {
	if d.focused != nil && d.focused != el {
		prev := d.focused
		d.focused = nil
		if err := prev.DispatchEvent(ctx, newBlurEvent(prev)); err != nil {
			return err
		}
	}
	d.focused = el
	return el.DispatchEvent(ctx, newFocusEvent(el))
}
