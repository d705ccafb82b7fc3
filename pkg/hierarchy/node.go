package hierarchy

import (
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy/traverse"
)

// Node wraps an item of type T in a tree position: at most one parent and
// an ordered collection of children. Child order is attachment order and
// is semantically meaningful. The parent link is a non-owning back-pointer
// kept purely for navigation; the parent's child collection is the sole
// ownership link.
//
// Nodes indexed into a Hierarchy carry its owner tag; attaching a node
// owned by one hierarchy under a node of another is rejected. Nodes are
// not safe for concurrent mutation, and must not be mutated while a
// traversal over them is in progress.
type Node[T any] struct {
	item     T
	parent   *Node[T]
	children []*Node[T]
	owner    uuid.UUID
}

// NewNode creates a standalone node wrapping item.
func NewNode[T any](item T) *Node[T] {
	return &Node[T]{item: item}
}

// Item returns the wrapped item.
func (n *Node[T]) Item() T {
	return n.item
}

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns the node's children in attachment order.
// The returned slice is the node's internal storage; callers must not
// mutate it.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Attach appends child to the node's children.
//
// Returns ErrNilNode if child is nil, ErrAlreadyAttached if child already
// has a parent, and ErrForeignNode if child is owned by a different
// hierarchy. Attach is a bare container operation: it does not index the
// child into any hierarchy; use Hierarchy.AttachTo for that.
func (n *Node[T]) Attach(child *Node[T]) error {
	if child == nil {
		return ErrNilNode
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	if child.owner != uuid.Nil && child.owner != n.owner {
		return ErrForeignNode
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Detach removes child from the node's children, clearing its parent
// link. Returns ErrNotChild if child is not attached to this node.
func (n *Node[T]) Detach(child *Node[T]) error {
	if child == nil {
		return ErrNilNode
	}
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return ErrNotChild
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	return nil
}

// DetachFromParent removes the node from its parent's children.
// A root node is left unchanged.
func (n *Node[T]) DetachFromParent() {
	if n.parent != nil {
		_ = n.parent.Detach(n)
	}
}

// Descend lazily traverses the subtree rooted at n.
func (n *Node[T]) Descend(opts ...traverse.Option) iter.Seq[*Node[T]] {
	return traverse.Traverse([]*Node[T]{n}, childrenOf[T], opts...)
}

// Ancestors lazily walks the parent chain of n, nearest first.
func (n *Node[T]) Ancestors() iter.Seq[*Node[T]] {
	return traverse.ChainNext(n.parent, func(a *Node[T]) (*Node[T], bool) {
		return a.parent, a.parent != nil
	})
}

// childrenOf adapts Node's child collection to a traverse.ChildFunc.
func childrenOf[T any](n *Node[T]) []*Node[T] {
	return n.children
}
