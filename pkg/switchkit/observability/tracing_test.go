package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewSpanManager(t *testing.T) {
	sm := NewSpanManager()
	require.NotNil(t, sm)
}

func TestStartBindSpan(t *testing.T) {
	sm := NewSpanManager()

	// Without a configured tracer provider, spans are non-recording but
	// the lifecycle still works.
	ctx, span := sm.StartBindSpan(context.Background(), "switch")
	assert.NotNil(t, ctx)
	require.NotNil(t, span)

	sm.AddSpanEvent(ctx, "switch.bound", attribute.String("switch.id", "darkmode"))
	sm.EndSpanWithError(span, nil)
}

func TestStartElementSpan(t *testing.T) {
	sm := NewSpanManager()

	_, span := sm.StartElementSpan(context.Background(), "darkmode")
	require.NotNil(t, span)
	sm.EndSpanWithError(span, errors.New("boom"))
}

func TestEndSpanWithErrorNilSpan(t *testing.T) {
	sm := NewSpanManager()
	// Must not panic.
	sm.EndSpanWithError(nil, nil)
	sm.EndSpanWithError(nil, errors.New("boom"))
}
