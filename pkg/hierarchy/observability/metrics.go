package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records hierarchy metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSync records a relation sync with its duration and error status.
	RecordSync(ctx context.Context, concept, kind string, duration time.Duration, err error)

	// RecordDiff records a computed delta and its total changed subjects.
	RecordDiff(ctx context.Context, concept, kind string, changes int)

	// RecordStoreOp records a single store operation (save/delete).
	RecordStoreOp(ctx context.Context, op string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	syncs       metric.Int64Counter
	syncLatency metric.Float64Histogram
	syncErrors  metric.Int64Counter
	diffChanges metric.Int64Histogram
	storeOps    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("hierarchy")

	syncs, err := meter.Int64Counter("hierarchy.sync.operations",
		metric.WithDescription("Number of relation sync operations"),
	)
	if err != nil {
		return nil, err
	}

	syncLatency, err := meter.Float64Histogram("hierarchy.sync.latency_ms",
		metric.WithDescription("Relation sync latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	syncErrors, err := meter.Int64Counter("hierarchy.sync.errors",
		metric.WithDescription("Number of relation sync errors"),
	)
	if err != nil {
		return nil, err
	}

	diffChanges, err := meter.Int64Histogram("hierarchy.diff.changes",
		metric.WithDescription("Changed subjects per computed delta"),
	)
	if err != nil {
		return nil, err
	}

	storeOps, err := meter.Int64Counter("hierarchy.store.operations",
		metric.WithDescription("Number of relation store operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		syncs:       syncs,
		syncLatency: syncLatency,
		syncErrors:  syncErrors,
		diffChanges: diffChanges,
		storeOps:    storeOps,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSync records a relation sync.
func (m *otelMetrics) RecordSync(ctx context.Context, concept, kind string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("concept", concept),
		attribute.String("kind", kind),
	}

	m.syncs.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.syncLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.syncErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordDiff records a computed delta.
func (m *otelMetrics) RecordDiff(ctx context.Context, concept, kind string, changes int) {
	attrs := []attribute.KeyValue{
		attribute.String("concept", concept),
		attribute.String("kind", kind),
	}
	m.diffChanges.Record(ctx, int64(changes), metric.WithAttributes(attrs...))
}

// RecordStoreOp records a store operation.
func (m *otelMetrics) RecordStoreOp(ctx context.Context, op string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", op),
		attribute.Bool("success", err == nil),
	}
	m.storeOps.Add(ctx, 1, metric.WithAttributes(attrs...))
}
