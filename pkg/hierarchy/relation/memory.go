package relation

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory relation store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[Kind]Map // concept -> kind -> subject -> related
	closed bool
}

// NewMemoryStore creates a new in-memory relation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[Kind]Map),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, concept string, kind Kind, subject string, related []string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[concept] == nil {
		m.data[concept] = make(map[Kind]Map)
	}
	if m.data[concept][kind] == nil {
		m.data[concept][kind] = make(Map)
	}

	// Copy to avoid retaining the caller's slice
	stored := make([]string, len(related))
	copy(stored, related)
	m.data[concept][kind][subject] = stored

	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, concept string, kind Kind) (Map, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	out := make(Map)
	if kinds, ok := m.data[concept]; ok {
		for subject, related := range kinds[kind] {
			out[subject] = slices.Clone(related)
		}
	}
	return out, nil
}

// LoadSubject implements Store.
func (m *MemoryStore) LoadSubject(_ context.Context, concept string, kind Kind, subject string) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	kinds, ok := m.data[concept]
	if !ok {
		return nil, ErrNotFound
	}
	related, ok := kinds[kind][subject]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(related), nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(_ context.Context, concept string, kind Kind, subject string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if kinds, ok := m.data[concept]; ok {
		delete(kinds[kind], subject)
	}
	return nil
}

// DeleteConcept implements Store.
func (m *MemoryStore) DeleteConcept(_ context.Context, concept string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, concept)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of stored records across all concepts.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, kinds := range m.data {
		for _, subjects := range kinds {
			count += len(subjects)
		}
	}
	return count
}
