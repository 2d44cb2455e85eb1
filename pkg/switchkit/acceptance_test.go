package switchkit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/switchkit/pkg/switchkit/dom"
)

// TestAcceptanceDarkmodeLifecycle walks the full widget lifecycle on a
// realistic settings page: bootstrap, keyboard focus, a user toggle, and
// the resulting registry and diagnostic output.
func TestAcceptanceDarkmodeLifecycle(t *testing.T) {
	ctx := context.Background()

	doc := dom.NewDocument()
	for _, s := range []struct {
		id      string
		checked bool
	}{
		{"darkmode", false},
		{"notifications", true},
	} {
		label := dom.NewElement("label")
		label.AppendChild(dom.NewSwitchInput(s.id, s.checked))
		doc.Body().AppendChild(label)
	}

	var diag bytes.Buffer
	states := NewStateRegistry()

	controllers, err := Bind(doc, states, WithDiagnostics(&diag))
	require.NoError(t, err)
	require.Len(t, controllers, 2)

	// Bootstrap seeded both entries from the checked flags
	assert.Equal(t, map[string]State{
		"darkmode":      StateOff,
		"notifications": StateOn,
	}, states.Snapshot())

	// Keyboard navigation: focus styles the container, never the state
	darkmode := doc.GetElementByID("darkmode")
	require.NoError(t, darkmode.Focus(ctx))
	assert.True(t, darkmode.Parent().Classes().Contains("focus"))
	state, _ := states.Get("darkmode")
	assert.Equal(t, StateOff, state)

	// The user checks darkmode
	require.NoError(t, darkmode.Click(ctx))
	state, _ = states.Get("darkmode")
	assert.Equal(t, StateOn, state)
	assert.Equal(t, "darkmode is now on\n", diag.String())

	// Tabbing away blurs darkmode and focuses notifications
	notifications := doc.GetElementByID("notifications")
	require.NoError(t, notifications.Focus(ctx))
	assert.False(t, darkmode.Parent().Classes().Contains("focus"))
	assert.True(t, notifications.Parent().Classes().Contains("focus"))

	// Turning notifications off produces exactly one more line
	require.NoError(t, notifications.Click(ctx))
	state, _ = states.Get("notifications")
	assert.Equal(t, StateOff, state)
	assert.Equal(t, "darkmode is now on\nnotifications is now off\n", diag.String())
}

// TestAcceptanceStructuredLogging verifies the slog integration end to end.
func TestAcceptanceStructuredLogging(t *testing.T) {
	ctx := context.Background()

	doc := dom.NewDocument()
	label := dom.NewElement("label")
	label.AppendChild(dom.NewSwitchInput("darkmode", false))
	doc.Body().AppendChild(label)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	states := NewStateRegistry()
	_, err := Bind(doc, states,
		WithLogger(logger),
		WithDiagnostics(&bytes.Buffer{}))
	require.NoError(t, err)

	require.NoError(t, doc.GetElementByID("darkmode").Click(ctx))

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		messages = append(messages, record["msg"].(string))
	}

	assert.Contains(t, messages, "switch discovery starting")
	assert.Contains(t, messages, "switch bound")
	assert.Contains(t, messages, "switch discovery completed")
	assert.Contains(t, messages, "switch state changed")
}

// TestAcceptanceExternalRegistryReader exercises the registry as shared
// process-wide state: an outside collaborator reads entries it did not
// write.
func TestAcceptanceExternalRegistryReader(t *testing.T) {
	ctx := context.Background()

	doc := dom.NewDocument()
	label := dom.NewElement("label")
	label.AppendChild(dom.NewSwitchInput("wifi", true))
	doc.Body().AppendChild(label)

	states := NewStateRegistry()
	_, err := Bind(doc, states, WithDiagnostics(&bytes.Buffer{}))
	require.NoError(t, err)

	// A reader holding only the registry reference sees live state
	observed := make(map[string]State)
	states.Range(func(id string, s State) bool {
		observed[id] = s
		return true
	})
	assert.Equal(t, map[string]State{"wifi": StateOn}, observed)

	require.NoError(t, doc.GetElementByID("wifi").Click(ctx))

	s, _ := states.Get("wifi")
	assert.Equal(t, StateOff, s)
}
