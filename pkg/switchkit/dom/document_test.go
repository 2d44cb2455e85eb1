package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/switchkit/pkg/switchkit/event"
)

// buildFixture creates a document with three labelled switches and one
// plain button-role input.
func buildFixture() (*Document, []*Element) {
	doc := NewDocument()

	var inputs []*Element
	for _, id := range []string{"darkmode", "notifications", "wifi"} {
		label := NewElement("label")
		input := NewSwitchInput(id, false)
		label.AppendChild(input)
		doc.Body().AppendChild(label)
		inputs = append(inputs, input)
	}

	button := NewElement("input").
		SetID("submit").
		SetAttribute("type", "checkbox").
		SetAttribute("role", "button")
	doc.Body().AppendChild(button)

	return doc, inputs
}

func TestWalkDocumentOrder(t *testing.T) {
	doc, _ := buildFixture()

	var tags []string
	doc.Walk(func(el *Element) bool {
		tags = append(tags, el.Tag())
		return true
	})

	// body, then label/input pairs depth-first, then the trailing input
	assert.Equal(t, []string{"body", "label", "input", "label", "input", "label", "input", "input"}, tags)
}

func TestWalkEarlyStop(t *testing.T) {
	doc, _ := buildFixture()

	visited := 0
	doc.Walk(func(_ *Element) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestFindAllDocumentOrder(t *testing.T) {
	doc, _ := buildFixture()

	inputs := doc.FindAll(func(el *Element) bool {
		return el.Tag() == "input"
	})

	require.Len(t, inputs, 4)
	assert.Equal(t, "darkmode", inputs[0].ID())
	assert.Equal(t, "notifications", inputs[1].ID())
	assert.Equal(t, "wifi", inputs[2].ID())
	assert.Equal(t, "submit", inputs[3].ID())
}

func TestGetElementByID(t *testing.T) {
	doc, inputs := buildFixture()

	assert.Same(t, inputs[0], doc.GetElementByID("darkmode"))
	assert.Nil(t, doc.GetElementByID("missing"))
	assert.Nil(t, doc.GetElementByID(""))
}

func TestGetElementByIDDuplicateShadowed(t *testing.T) {
	doc := NewDocument()
	first := NewSwitchInput("dup", false)
	second := NewSwitchInput("dup", true)
	doc.Body().AppendChild(first)
	doc.Body().AppendChild(second)

	// First in document order wins lookup
	assert.Same(t, first, doc.GetElementByID("dup"))
}

func TestAppendChildPropagatesDocument(t *testing.T) {
	doc := NewDocument()
	label := NewElement("label")
	input := NewSwitchInput("darkmode", false)
	label.AppendChild(input)

	// Attached after the subtree was assembled
	doc.Body().AppendChild(label)

	require.NoError(t, input.Focus(context.Background()))
	assert.Same(t, input, doc.FocusedElement())
}

func TestFocusBlursPrevious(t *testing.T) {
	doc, inputs := buildFixture()
	ctx := context.Background()

	var log []string
	for _, input := range inputs {
		id := input.ID()
		input.AddEventListener(event.TypeFocus, event.HandlerFunc(func(_ context.Context, _ event.Event) error {
			log = append(log, "focus:"+id)
			return nil
		}))
		input.AddEventListener(event.TypeBlur, event.HandlerFunc(func(_ context.Context, _ event.Event) error {
			log = append(log, "blur:"+id)
			return nil
		}))
	}

	require.NoError(t, inputs[0].Focus(ctx))
	require.NoError(t, inputs[1].Focus(ctx))

	assert.Equal(t, []string{"focus:darkmode", "blur:darkmode", "focus:notifications"}, log)
	assert.Same(t, inputs[1], doc.FocusedElement())
}

func TestBlurClearsFocusedElement(t *testing.T) {
	doc, inputs := buildFixture()
	ctx := context.Background()

	require.NoError(t, inputs[0].Focus(ctx))
	require.NoError(t, inputs[0].Blur(ctx))

	assert.Nil(t, doc.FocusedElement())
}

func TestRefocusSameElementNoBlur(t *testing.T) {
	_, inputs := buildFixture()
	ctx := context.Background()

	blurs := 0
	inputs[0].AddEventListener(event.TypeBlur, event.HandlerFunc(func(_ context.Context, _ event.Event) error {
		blurs++
		return nil
	}))

	require.NoError(t, inputs[0].Focus(ctx))
	require.NoError(t, inputs[0].Focus(ctx))

	assert.Equal(t, 0, blurs)
}
