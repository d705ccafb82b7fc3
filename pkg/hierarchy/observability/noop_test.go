package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_ImplementsInterface(t *testing.T) {
	var _ MetricsRecorder = NoopMetrics{}
}

func TestNoopMetrics_RecordSync(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSync(context.Background(), "org", "children", 100*time.Millisecond, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSync(context.Background(), "org", "children", 100*time.Millisecond, errors.New("test"))
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSync(nil, "org", "children", 0, nil)
		})
	})

	t.Run("does not panic with empty concept", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordSync(context.Background(), "", "", 0, nil)
		})
	})
}

func TestNoopMetrics_RecordDiff(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordDiff(context.Background(), "org", "children", 5)
		})
	})

	t.Run("does not panic with zero changes", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordDiff(context.Background(), "org", "children", 0)
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordDiff(nil, "org", "children", 1)
		})
	})
}

func TestNoopMetrics_RecordStoreOp(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(context.Background(), "save", nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(context.Background(), "delete", errors.New("test"))
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordStoreOp(nil, "", nil)
		})
	})
}

func TestNoopSpanManager_ImplementsInterface(t *testing.T) {
	var _ SpanManager = NoopSpanManager{}
}

func TestNoopSpanManager_StartSyncSpan(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("returns same context", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := sm.StartSyncSpan(ctx, "org", "children")

		assert.Equal(t, ctx, newCtx, "Context should be unchanged")
		assert.NotNil(t, span, "Span should not be nil")
	})

	t.Run("span is valid noop span", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartSyncSpan(ctx, "org", "children")

		// Noop spans are not recording
		assert.False(t, span.IsRecording())
	})

	t.Run("does not panic with empty args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.StartSyncSpan(context.Background(), "", "")
		})
	})
}

func TestNoopSpanManager_StartDiffSpan(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("returns same context", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := sm.StartDiffSpan(ctx, "org", "children")

		assert.Equal(t, ctx, newCtx, "Context should be unchanged")
		assert.NotNil(t, span, "Span should not be nil")
	})

	t.Run("span is valid noop span", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartDiffSpan(ctx, "org", "children")

		assert.False(t, span.IsRecording())
	})
}

func TestNoopSpanManager_EndSpanWithError(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("does not panic with nil span", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(nil, nil)
		})
	})

	t.Run("does not panic with nil error", func(t *testing.T) {
		_, span := sm.StartSyncSpan(context.Background(), "o", "k")
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, nil)
		})
	})

	t.Run("does not panic with error", func(t *testing.T) {
		_, span := sm.StartSyncSpan(context.Background(), "o", "k")
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, errors.New("test error"))
		})
	})
}

func TestNoopSpanManager_AddSpanEvent(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "test_event", attribute.String("key", "value"))
		})
	})

	t.Run("does not panic with no attributes", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "test_event")
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(nil, "test_event")
		})
	})
}

func TestNoopImplementations_NoSideEffects(t *testing.T) {
	// This test verifies that noop implementations can be used
	// in a realistic scenario without any side effects

	metrics := NoopMetrics{}
	spans := NoopSpanManager{}

	ctx := context.Background()

	// Simulate a relation sync
	ctx, syncSpan := spans.StartSyncSpan(ctx, "org-chart", "children")

	diffCtx, diffSpan := spans.StartDiffSpan(ctx, "org-chart", "children")
	metrics.RecordDiff(diffCtx, "org-chart", "children", 3)
	spans.EndSpanWithError(diffSpan, nil)

	for i, op := range []string{"delete", "save", "save"} {
		var err error
		if i == 1 {
			err = errors.New("simulated error")
		}
		metrics.RecordStoreOp(ctx, op, err)
	}

	spans.AddSpanEvent(ctx, "delta applied", attribute.Int("deleted", 1))
	metrics.RecordSync(ctx, "org-chart", "children", 100*time.Millisecond, nil)
	spans.EndSpanWithError(syncSpan, nil)

	// If we get here without panicking, the test passes
}
