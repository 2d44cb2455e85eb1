package dom

import "strings"

// ClassList is the set of style classes on an element, with the set-like
// semantics of DOMTokenList: Add of a present class is a no-op (no duplicate
// entries), Remove of an absent class is a no-op (not an error).
//
// ClassList is not safe for concurrent use; it is only ever mutated from
// synchronous event handlers.
type ClassList struct {
	order   []string
	present map[string]struct{}
}

// NewClassList creates an empty class list.
func NewClassList() *ClassList {
	return &ClassList{
		present: make(map[string]struct{}),
	}
}

// Add inserts a class. Adding a class that is already present is a no-op,
// so repeated Add calls leave exactly one entry.
func (c *ClassList) Add(name string) {
	if _, ok := c.present[name]; ok {
		return
	}
	c.present[name] = struct{}{}
	c.order = append(c.order, name)
}

// Remove deletes a class. Removing an absent class is a no-op.
func (c *ClassList) Remove(name string) {
	if _, ok := c.present[name]; !ok {
		return
	}
	delete(c.present, name)
	for i, existing := range c.order {
		if existing == name {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			return
		}
	}
}

// Contains reports whether a class is present.
func (c *ClassList) Contains(name string) bool {
	_, ok := c.present[name]
	return ok
}

// Toggle adds the class if absent and removes it if present, returning
// whether the class is present afterwards.
func (c *ClassList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

// Len returns the number of classes.
func (c *ClassList) Len() int {
	return len(c.order)
}

// Values returns the classes in insertion order. The returned slice is a
// copy.
func (c *ClassList) Values() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// String returns the classes space-joined, in insertion order, matching the
// serialized form of a class attribute.
func (c *ClassList) String() string {
	return strings.Join(c.order, " ")
}
