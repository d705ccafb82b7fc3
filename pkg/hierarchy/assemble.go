package hierarchy

import (
	"fmt"
	"sort"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy/relation"
)

// FromPairs builds a hierarchy from items and parent/child identifier
// pairs. Pair order defines sibling order; item order defines root order.
//
// Returns a *MissingItemError if a pair references an identifier with no
// corresponding item, naming the identifier and the unresolved side.
// Empty items and pairs produce an empty hierarchy, not an error.
func FromPairs[T any](concept string, items []T, identify func(T) string, pairs []relation.Pair) (*Hierarchy[T], error) {
	h := New(concept, identify)

	nodes := make(map[string]*Node[T], len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		id := identify(item)
		if _, exists := nodes[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		n := NewNode(item)
		n.owner = h.tag
		nodes[id] = n
		order = append(order, id)
	}

	for _, p := range pairs {
		parent, ok := nodes[p.Parent]
		if !ok {
			return nil, &MissingItemError{ID: p.Parent, Side: SideParent}
		}
		child, ok := nodes[p.Child]
		if !ok {
			return nil, &MissingItemError{ID: p.Child, Side: SideChild}
		}
		if err := parent.Attach(child); err != nil {
			return nil, fmt.Errorf("attach %q under %q: %w", p.Child, p.Parent, err)
		}
	}

	for _, id := range order {
		h.index[id] = nodes[id]
		if nodes[id].IsRoot() {
			h.roots = append(h.roots, nodes[id])
		}
	}
	return h, nil
}

// FromMultimap builds a hierarchy from items and an identifier-to-children
// multimap. Child order within a subject follows the multimap's slices;
// subjects are processed in sorted order for determinism.
func FromMultimap[T any](concept string, items []T, identify func(T) string, rel relation.Map) (*Hierarchy[T], error) {
	var pairs []relation.Pair
	for _, subject := range rel.Subjects() {
		for _, child := range rel[subject] {
			pairs = append(pairs, relation.Pair{Parent: subject, Child: child})
		}
	}
	return FromPairs(concept, items, identify, pairs)
}

// FromRelations builds an identifier-only hierarchy from a multimap: the
// identifiers themselves are the items. Every subject and target becomes
// a node; roots are the identifiers never appearing as a target, in
// sorted order.
func FromRelations(concept string, rel relation.Map) (*Hierarchy[string], error) {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, subject := range rel.Subjects() {
		add(subject)
		for _, target := range rel[subject] {
			add(target)
		}
	}
	sort.Strings(ids)

	return FromMultimap(concept, ids, func(id string) string { return id }, rel)
}
