/*
Package dom provides the minimal in-memory element model the switch
controllers bind against.

# Overview

dom is not a browser DOM. It models exactly what switch behavior needs:
a tree of elements with tags, identifiers, string attributes, set-semantics
class lists, a checked flag, and synchronous per-element event dispatch.
Because the whole model is plain Go values, tests construct documents
directly instead of faking a rendering engine.

# Building a tree

Elements chain their builder-style setters:

	doc := dom.NewDocument()
	label := dom.NewElement("label")
	input := dom.NewSwitchInput("darkmode", false)
	label.AppendChild(input)
	doc.Body().AppendChild(label)

The element's parent is its immediate structural container; callers arrange
markup so the container exists and carries the focus style rule.

# Simulating interaction

User actions are methods that dispatch the corresponding event
synchronously:

	input.Focus(ctx)  // blurs the previously focused element, fires focus
	input.Click(ctx)  // toggles checked, fires change
	input.Blur(ctx)   // fires blur

SetChecked mutates the flag without dispatching, mirroring programmatic
property assignment.

# Thread Safety

Documents and elements are single-threaded by design: construction happens
on one goroutine, and all later mutation happens inside synchronous event
handlers. ClassList and Element are not safe for concurrent use.
*/
package dom
