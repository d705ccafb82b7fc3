package relation

import (
	"context"
	"errors"
)

// Store persists relation snapshots, one record per (concept, kind,
// subject). Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the related set for a subject.
	// Overwrites an existing record for (concept, kind, subject).
	Save(ctx context.Context, concept string, kind Kind, subject string, related []string) error

	// Load returns the full relation map for a concept and kind.
	// Returns an empty map (not an error) if nothing is stored.
	Load(ctx context.Context, concept string, kind Kind) (Map, error)

	// LoadSubject returns the related set for one subject.
	// Returns ErrNotFound if no record exists.
	LoadSubject(ctx context.Context, concept string, kind Kind, subject string) ([]string, error)

	// Delete removes the record for a subject.
	// Returns nil if the record doesn't exist.
	Delete(ctx context.Context, concept string, kind Kind, subject string) error

	// DeleteConcept removes every record for a concept across all kinds.
	// Returns nil if the concept has no records.
	DeleteConcept(ctx context.Context, concept string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a relation record doesn't exist.
	ErrNotFound = errors.New("relation not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("relation store closed")

	// ErrInvalidKind indicates an unknown relation kind was given.
	ErrInvalidKind = errors.New("invalid relation kind")
)
