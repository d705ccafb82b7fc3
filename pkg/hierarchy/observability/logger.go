// Package observability provides production-grade observability features
// for hierarchy persistence: structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds hierarchy context to a logger.
// Returns a new logger with concept and kind fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "org-chart", "children")
//	enriched.Info("syncing") // includes concept, kind
func EnrichLogger(logger *slog.Logger, concept, kind string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("concept", concept),
		slog.String("kind", kind),
	)
}

// LogSyncStart logs the start of a relation sync.
func LogSyncStart(logger *slog.Logger, concept, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("relation sync starting",
		slog.String("concept", concept),
		slog.String("kind", kind),
	)
}

// LogSyncComplete logs successful relation sync completion.
func LogSyncComplete(logger *slog.Logger, concept, kind string, durationMs float64, changes int) {
	if logger == nil {
		return
	}
	logger.Info("relation sync completed",
		slog.String("concept", concept),
		slog.String("kind", kind),
		slog.Float64("duration_ms", durationMs),
		slog.Int("changed_subjects", changes),
	)
}

// LogSyncError logs relation sync failure.
func LogSyncError(logger *slog.Logger, concept, kind string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("relation sync failed",
		slog.String("concept", concept),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogDiff logs the shape of a computed delta.
func LogDiff(logger *slog.Logger, concept, kind string, deleted, inserted, removed, added int) {
	if logger == nil {
		return
	}
	logger.Debug("relation diff computed",
		slog.String("concept", concept),
		slog.String("kind", kind),
		slog.Int("deleted", deleted),
		slog.Int("inserted", inserted),
		slog.Int("removed", removed),
		slog.Int("added", added),
	)
}

// LogStoreError logs a store operation failure (non-fatal contexts).
func LogStoreError(logger *slog.Logger, op, subject string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("relation store operation failed",
		slog.String("operation", op),
		slog.String("subject", subject),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
