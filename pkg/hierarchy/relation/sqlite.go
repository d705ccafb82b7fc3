package relation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists relations to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite relation store.
// The path should be a file path (e.g., "./relations.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS relations (
			concept TEXT NOT NULL,
			kind TEXT NOT NULL,
			subject TEXT NOT NULL,
			related TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (concept, kind, subject)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_relations_concept_kind
		ON relations(concept, kind)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, concept string, kind Kind, subject string, related []string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if related == nil {
		related = []string{}
	}
	encoded, err := json.Marshal(related)
	if err != nil {
		return fmt.Errorf("encode related set: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO relations (concept, kind, subject, related, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(concept, kind, subject) DO UPDATE SET
			related = excluded.related,
			updated_at = excluded.updated_at
	`, concept, string(kind), subject, string(encoded), time.Now().UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("save relation: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, concept string, kind Kind) (Map, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, related FROM relations
		WHERE concept = ? AND kind = ?
	`, concept, string(kind))
	if err != nil {
		return nil, fmt.Errorf("load relations: %w", err)
	}
	defer rows.Close()

	out := make(Map)
	for rows.Next() {
		var subject, encoded string
		if err := rows.Scan(&subject, &encoded); err != nil {
			return nil, fmt.Errorf("scan relation: %w", err)
		}
		var related []string
		if err := json.Unmarshal([]byte(encoded), &related); err != nil {
			return nil, fmt.Errorf("decode related set for %q: %w", subject, err)
		}
		out[subject] = related
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relations: %w", err)
	}

	return out, nil
}

// LoadSubject implements Store.
func (s *SQLiteStore) LoadSubject(ctx context.Context, concept string, kind Kind, subject string) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var encoded string
	err := s.db.QueryRowContext(ctx, `
		SELECT related FROM relations
		WHERE concept = ? AND kind = ? AND subject = ?
	`, concept, string(kind), subject).Scan(&encoded)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load relation: %w", err)
	}

	var related []string
	if err := json.Unmarshal([]byte(encoded), &related); err != nil {
		return nil, fmt.Errorf("decode related set for %q: %w", subject, err)
	}
	return related, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, concept string, kind Kind, subject string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM relations
		WHERE concept = ? AND kind = ? AND subject = ?
	`, concept, string(kind), subject)
	if err != nil {
		return fmt.Errorf("delete relation: %w", err)
	}
	return nil
}

// DeleteConcept implements Store.
func (s *SQLiteStore) DeleteConcept(ctx context.Context, concept string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM relations WHERE concept = ?
	`, concept)
	if err != nil {
		return fmt.Errorf("delete concept relations: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
