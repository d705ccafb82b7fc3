// Package relation models hierarchy relations as identifier multimaps,
// computes set differences between two relation snapshots, and persists
// relations to an external store keyed by concept and relation kind.
package relation

import (
	"slices"
	"sort"
)

// Kind distinguishes what a persisted relation set represents.
type Kind string

// Relation kinds.
const (
	// KindChildren maps a subject to its direct children.
	KindChildren Kind = "children"

	// KindDescendants maps a subject to every node below it.
	KindDescendants Kind = "descendants"

	// KindAncestors maps a subject to its ancestor chain, nearest first.
	KindAncestors Kind = "ancestors"
)

// Valid reports whether k is a known relation kind.
func (k Kind) Valid() bool {
	switch k {
	case KindChildren, KindDescendants, KindAncestors:
		return true
	}
	return false
}

// Pair is a single parent/child relationship, used as hierarchy
// construction input. Pair order defines sibling order.
type Pair struct {
	Parent string
	Child  string
}

// Map is a relation snapshot: a mapping from subject identifier to its
// ordered set of related identifiers. It is used both as hierarchy
// construction input and as the unit of external persistence.
type Map map[string][]string

// Subjects returns the subject identifiers in sorted order.
func (m Map) Subjects() []string {
	subjects := make([]string, 0, len(m))
	for subject := range m {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for subject, targets := range m {
		out[subject] = slices.Clone(targets)
	}
	return out
}

// Equal reports whether two snapshots hold the same subjects with the
// same targets. Target order within a subject is ignored.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for subject, targets := range m {
		got, ok := other[subject]
		if !ok || len(got) != len(targets) {
			return false
		}
		a := slices.Clone(targets)
		b := slices.Clone(got)
		sort.Strings(a)
		sort.Strings(b)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}
