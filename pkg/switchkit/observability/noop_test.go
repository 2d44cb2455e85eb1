package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}

	// All methods are safe no-ops.
	ctx := context.Background()
	m.RecordBind(ctx, "darkmode", "off")
	m.RecordTransition(ctx, "darkmode", "on")
	m.RecordFocus(ctx, "darkmode", true)
}

func TestNoopSpanManager(t *testing.T) {
	var sm SpanManager = NoopSpanManager{}

	ctx := context.Background()
	spanCtx, span := sm.StartBindSpan(ctx, "switch")
	assert.Equal(t, ctx, spanCtx)
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())

	elCtx, elSpan := sm.StartElementSpan(ctx, "darkmode")
	assert.Equal(t, ctx, elCtx)

	sm.EndSpanWithError(span, nil)
	sm.EndSpanWithError(elSpan, errors.New("boom"))
	sm.EndSpanWithError(nil, nil)
	sm.AddSpanEvent(ctx, "ignored")
}
