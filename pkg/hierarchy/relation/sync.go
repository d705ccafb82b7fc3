package relation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy/observability"
)

// Syncer applies relation deltas to a Store as minimal updates.
// Observability is opt-in: by default it logs via slog.Default() and
// records nothing.
type Syncer struct {
	store   Store
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// NewSyncer creates a syncer over the given store.
func NewSyncer(store Store) *Syncer {
	return &Syncer{
		store:   store,
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// WithLogger sets the logger for the syncer.
func (s *Syncer) WithLogger(logger *slog.Logger) *Syncer {
	s.logger = logger
	return s
}

// WithMetrics sets the metrics recorder for the syncer.
func (s *Syncer) WithMetrics(metrics observability.MetricsRecorder) *Syncer {
	s.metrics = metrics
	return s
}

// WithSpans sets the span manager for the syncer.
func (s *Syncer) WithSpans(spans observability.SpanManager) *Syncer {
	s.spans = spans
	return s
}

// Sync reconciles the stored snapshot for (concept, kind) with current:
// it loads what the store holds, diffs it against current, and applies
// the delta as minimal updates. Returns the applied delta.
func (s *Syncer) Sync(ctx context.Context, concept string, kind Kind, current Map) (Delta, error) {
	if !kind.Valid() {
		return Delta{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	observability.LogSyncStart(s.logger, concept, string(kind))
	done := observability.TimedOperation()
	start := time.Now()

	ctx, span := s.spans.StartSyncSpan(ctx, concept, string(kind))

	delta, err := s.sync(ctx, concept, kind, current)

	s.spans.EndSpanWithError(span, err)
	s.metrics.RecordSync(ctx, concept, string(kind), time.Since(start), err)

	if err != nil {
		observability.LogSyncError(s.logger, concept, string(kind), err, done())
		return Delta{}, err
	}

	observability.LogSyncComplete(s.logger, concept, string(kind), done(), delta.Changes())
	return delta, nil
}

func (s *Syncer) sync(ctx context.Context, concept string, kind Kind, current Map) (Delta, error) {
	stored, err := s.store.Load(ctx, concept, kind)
	if err != nil {
		return Delta{}, fmt.Errorf("load stored relations: %w", err)
	}

	diffCtx, diffSpan := s.spans.StartDiffSpan(ctx, concept, string(kind))
	delta := Diff(stored, current)
	s.spans.EndSpanWithError(diffSpan, nil)
	s.metrics.RecordDiff(diffCtx, concept, string(kind), delta.Changes())
	observability.LogDiff(s.logger, concept, string(kind),
		len(delta.Deleted), len(delta.Inserted), len(delta.Removed), len(delta.Added))

	if delta.Empty() {
		return delta, nil
	}
	if err := s.Apply(ctx, concept, kind, delta); err != nil {
		return Delta{}, err
	}
	return delta, nil
}

// Apply writes a delta to the store as minimal updates: deleted subjects
// are removed, inserted subjects are saved whole, and subjects with
// removed or added targets are loaded, patched, and saved back.
func (s *Syncer) Apply(ctx context.Context, concept string, kind Kind, delta Delta) error {
	for _, subject := range delta.Deleted {
		err := s.store.Delete(ctx, concept, kind, subject)
		s.metrics.RecordStoreOp(ctx, "delete", err)
		if err != nil {
			observability.LogStoreError(s.logger, "delete", subject, err)
			return fmt.Errorf("delete subject %q: %w", subject, err)
		}
	}

	for _, subject := range delta.Inserted.Subjects() {
		err := s.store.Save(ctx, concept, kind, subject, delta.Inserted[subject])
		s.metrics.RecordStoreOp(ctx, "save", err)
		if err != nil {
			observability.LogStoreError(s.logger, "save", subject, err)
			return fmt.Errorf("insert subject %q: %w", subject, err)
		}
	}

	for _, subject := range delta.ChangedSubjects() {
		next, err := s.patchSubject(ctx, concept, kind, subject, delta)
		if err != nil {
			return err
		}
		err = s.store.Save(ctx, concept, kind, subject, next)
		s.metrics.RecordStoreOp(ctx, "save", err)
		if err != nil {
			observability.LogStoreError(s.logger, "save", subject, err)
			return fmt.Errorf("update subject %q: %w", subject, err)
		}
	}

	s.spans.AddSpanEvent(ctx, "delta applied",
		attribute.Int("deleted", len(delta.Deleted)),
		attribute.Int("inserted", len(delta.Inserted)),
		attribute.Int("updated", len(delta.ChangedSubjects())),
	)
	return nil
}

// patchSubject loads a subject's stored targets and applies the delta's
// removals and additions for it.
func (s *Syncer) patchSubject(ctx context.Context, concept string, kind Kind, subject string, delta Delta) ([]string, error) {
	current, err := s.store.LoadSubject(ctx, concept, kind, subject)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load subject %q: %w", subject, err)
	}

	if removed := delta.Removed[subject]; len(removed) > 0 {
		drop := make(map[string]struct{}, len(removed))
		for _, t := range removed {
			drop[t] = struct{}{}
		}
		current = slices.DeleteFunc(current, func(t string) bool {
			_, ok := drop[t]
			return ok
		})
	}

	for _, t := range delta.Added[subject] {
		if !slices.Contains(current, t) {
			current = append(current, t)
		}
	}

	if current == nil {
		current = []string{}
	}
	return current, nil
}
