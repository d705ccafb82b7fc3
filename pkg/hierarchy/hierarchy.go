package hierarchy

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy/relation"
	"github.com/randalmurphal/hierarchy/pkg/hierarchy/traverse"
)

// Hierarchy is a named collection of root nodes plus an identifier index
// over every node it contains. The concept name distinguishes this
// hierarchy's persisted relations from others sharing a store.
//
// A Hierarchy owns its nodes through a branding tag: indexed nodes are
// stamped with the hierarchy's tag, and attachment across hierarchies is
// rejected. Hierarchies are not safe for concurrent mutation.
type Hierarchy[T any] struct {
	concept  string
	tag      uuid.UUID
	identify func(T) string
	roots    []*Node[T]
	index    map[string]*Node[T]
}

// New creates an empty hierarchy. The identify function maps an item to
// its identifier and must be stable for the item's lifetime.
//
// Panics if identify is nil.
func New[T any](concept string, identify func(T) string) *Hierarchy[T] {
	if identify == nil {
		panic("hierarchy: identify function cannot be nil")
	}
	return &Hierarchy[T]{
		concept:  concept,
		tag:      uuid.New(),
		identify: identify,
		index:    make(map[string]*Node[T]),
	}
}

// Concept returns the hierarchy's logical name.
func (h *Hierarchy[T]) Concept() string {
	return h.concept
}

// Roots returns the root nodes in insertion order.
func (h *Hierarchy[T]) Roots() []*Node[T] {
	return slices.Clone(h.roots)
}

// Node returns the node for an identifier.
func (h *Hierarchy[T]) Node(id string) (*Node[T], bool) {
	n, ok := h.index[id]
	return n, ok
}

// Len returns the number of indexed nodes.
func (h *Hierarchy[T]) Len() int {
	return len(h.index)
}

// IDs returns every indexed identifier in sorted order.
func (h *Hierarchy[T]) IDs() []string {
	ids := make([]string, 0, len(h.index))
	for id := range h.index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddRoot adopts node (and its whole subtree) as a new root.
//
// Returns ErrNilNode, ErrAlreadyAttached if node has a parent,
// ErrForeignNode if it belongs to another hierarchy, or ErrDuplicateID if
// any identifier in the subtree is already indexed.
func (h *Hierarchy[T]) AddRoot(node *Node[T]) error {
	if node == nil {
		return ErrNilNode
	}
	if node.parent != nil {
		return ErrAlreadyAttached
	}
	if err := h.adopt(node); err != nil {
		return err
	}
	h.roots = append(h.roots, node)
	return nil
}

// AttachTo adopts node (and its subtree) and attaches it under the node
// identified by parentID.
//
// Returns ErrUnknownID if parentID is not indexed, plus the AddRoot error
// conditions.
func (h *Hierarchy[T]) AttachTo(parentID string, node *Node[T]) error {
	parent, ok := h.index[parentID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, parentID)
	}
	if node == nil {
		return ErrNilNode
	}
	if node.parent != nil {
		return ErrAlreadyAttached
	}
	if err := h.adopt(node); err != nil {
		return err
	}
	return parent.Attach(node)
}

// Detach removes the node identified by id, and its entire subtree, from
// the hierarchy (a cascading delete from the index). The node is detached
// from its parent, or removed from the root set, and the subtree's owner
// tags are cleared so the nodes can be adopted elsewhere.
//
// Returns ErrUnknownID if id is not indexed.
func (h *Hierarchy[T]) Detach(id string) error {
	node, ok := h.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}

	for _, m := range traverse.Flatten([]*Node[T]{node}, childrenOf[T]) {
		delete(h.index, h.identify(m.item))
		m.owner = uuid.Nil
	}

	if node.parent != nil {
		return node.parent.Detach(node)
	}
	if idx := slices.Index(h.roots, node); idx >= 0 {
		h.roots = slices.Delete(h.roots, idx, idx+1)
	}
	return nil
}

// adopt stamps and indexes the subtree rooted at node. The whole subtree
// is validated before any mutation, so a failed adopt leaves the
// hierarchy unchanged.
func (h *Hierarchy[T]) adopt(node *Node[T]) error {
	if node.owner != uuid.Nil && node.owner != h.tag {
		return ErrForeignNode
	}

	subtree := traverse.Flatten([]*Node[T]{node}, childrenOf[T])
	for _, m := range subtree {
		if m.owner != uuid.Nil && m.owner != h.tag {
			return ErrForeignNode
		}
		if _, exists := h.index[h.identify(m.item)]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateID, h.identify(m.item))
		}
	}
	for _, m := range subtree {
		m.owner = h.tag
		h.index[h.identify(m.item)] = m
	}
	return nil
}

// Traverse lazily walks the hierarchy from its roots.
func (h *Hierarchy[T]) Traverse(opts ...traverse.Option) iter.Seq[*Node[T]] {
	return traverse.Traverse(h.roots, childrenOf[T], opts...)
}

// Flatten eagerly collects the hierarchy's nodes in traversal order.
func (h *Hierarchy[T]) Flatten(opts ...traverse.Option) []*Node[T] {
	return traverse.Flatten(h.roots, childrenOf[T], opts...)
}

// Find returns the first node matching pred in visitation order,
// short-circuiting the traversal.
func (h *Hierarchy[T]) Find(pred func(*Node[T]) bool, opts ...traverse.Option) (*Node[T], bool) {
	return traverse.Find(h.roots, childrenOf[T], pred, opts...)
}

// FindAll returns every node matching pred in visitation order.
func (h *Hierarchy[T]) FindAll(pred func(*Node[T]) bool, opts ...traverse.Option) []*Node[T] {
	return traverse.FindAll(h.roots, childrenOf[T], pred, opts...)
}

// Relations returns the hierarchy's relation snapshot for a kind,
// suitable for diffing and persistence.
func (h *Hierarchy[T]) Relations(kind relation.Kind) (relation.Map, error) {
	switch kind {
	case relation.KindChildren:
		return h.Children(), nil
	case relation.KindDescendants:
		return h.Descendants(), nil
	case relation.KindAncestors:
		return h.Ancestors(), nil
	}
	return nil, fmt.Errorf("%w: %q", relation.ErrInvalidKind, kind)
}

// Children returns the direct-children snapshot. Subjects are every root
// and every node with at least one child; a childless root maps to an
// empty set.
func (h *Hierarchy[T]) Children() relation.Map {
	m := make(relation.Map)
	for n := range h.Traverse() {
		if !n.IsRoot() && len(n.children) == 0 {
			continue
		}
		ids := make([]string, 0, len(n.children))
		for _, c := range n.children {
			ids = append(ids, h.identify(c.item))
		}
		m[h.identify(n.item)] = ids
	}
	return m
}

// Descendants returns the full-descendants snapshot, with the same
// subject rule as Children. Targets appear in breadth-first order.
func (h *Hierarchy[T]) Descendants() relation.Map {
	m := make(relation.Map)
	for n := range h.Traverse() {
		if !n.IsRoot() && len(n.children) == 0 {
			continue
		}
		ids := []string{}
		for d := range traverse.Traverse([]*Node[T]{n}, childrenOf[T], traverse.WithoutSelf()) {
			ids = append(ids, h.identify(d.item))
		}
		m[h.identify(n.item)] = ids
	}
	return m
}

// Ancestors returns the ancestor-chain snapshot. Subjects are every
// non-root node; targets run nearest first, ending at the root.
func (h *Hierarchy[T]) Ancestors() relation.Map {
	m := make(relation.Map)
	for n := range h.Traverse() {
		if n.IsRoot() {
			continue
		}
		ids := []string{}
		for a := range n.Ancestors() {
			ids = append(ids, h.identify(a.item))
		}
		m[h.identify(n.item)] = ids
	}
	return m
}
