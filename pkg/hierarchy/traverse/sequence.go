package traverse

import "iter"

// ChainVisitFunc is invoked once per element of a linear chain.
type ChainVisitFunc[N comparable] func(s *ChainSignal[N], node N)

// NextFunc returns the successor of an element in a linear chain.
// The boolean reports whether a successor exists.
type NextFunc[N comparable] func(node N) (N, bool)

// ChainSignal drives traversal over a linear chain, such as a linked list.
// It is the single-branch analog of Signal: one pending next slot instead
// of a frontier, with the same Skip/Yield and Next/Prune mutual-exclusion
// contract. One ChainSignal exists per Chain call.
type ChainSignal[N comparable] struct {
	next    N
	hasNext bool
	index   int
	count   int

	skipped    bool
	yielded    bool
	pruned     bool
	nextCalled bool
}

// Index returns the zero-based position of the current element.
func (s *ChainSignal[N]) Index() int {
	return s.index
}

// Count returns the number of elements yielded so far, excluding the
// element currently being visited.
func (s *ChainSignal[N]) Count() int {
	return s.count
}

// Skip excludes the current element from the output.
//
// Panics if Yield was already called on the same element.
func (s *ChainSignal[N]) Skip() {
	if s.yielded {
		panic("hierarchy: cannot call Skip after Yield on the same node")
	}
	s.skipped = true
}

// Yield explicitly marks the current element for inclusion. Elements are
// included by default.
//
// Panics if Skip was already called on the same element.
func (s *ChainSignal[N]) Yield() {
	if s.skipped {
		panic("hierarchy: cannot call Yield after Skip on the same node")
	}
	s.yielded = true
}

// Next sets the element to visit after the current one. A zero-valued
// node (nil for pointer chains) is treated as absent and ends the
// traversal.
//
// Panics if Prune was already called on the same element.
func (s *ChainSignal[N]) Next(node N) {
	if s.pruned {
		panic("hierarchy: cannot call Next after Prune on the same node")
	}
	s.nextCalled = true
	var zero N
	if node == zero {
		return
	}
	s.next = node
	s.hasNext = true
}

// Prune explicitly declines to advance past the current element,
// ending the traversal. It is equivalent to omitting Next, but guards
// against accidentally also calling Next on the same element.
//
// Panics if Next was already called on the same element.
func (s *ChainSignal[N]) Prune() {
	if s.nextCalled {
		panic("hierarchy: cannot call Prune after Next on the same node")
	}
	s.pruned = true
}

// Chain lazily traverses a linear chain starting at first, driving visit
// for each element. Traversal ends when the callback provides no next
// element. A zero-valued first yields an empty sequence.
func Chain[N comparable](first N, visit ChainVisitFunc[N]) iter.Seq[N] {
	return func(yield func(N) bool) {
		s := &ChainSignal[N]{}
		var zero N
		node := first
		for node != zero {
			s.skipped = false
			s.yielded = false
			s.pruned = false
			s.nextCalled = false
			s.hasNext = false
			s.next = zero

			visit(s, node)

			if !s.skipped {
				s.count++
				if !yield(node) {
					return
				}
			}
			s.index++
			if !s.hasNext {
				return
			}
			node = s.next
		}
	}
}

// ChainNext traverses a linear chain using a successor function,
// wrapping it in an auto-advancing chain callback.
func ChainNext[N comparable](first N, next NextFunc[N]) iter.Seq[N] {
	return Chain(first, func(s *ChainSignal[N], node N) {
		if succ, ok := next(node); ok {
			s.Next(succ)
		}
	})
}
