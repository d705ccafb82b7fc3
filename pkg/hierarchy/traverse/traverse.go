package traverse

import "iter"

// Traverse lazily walks the graph reachable from roots, using children to
// discover each node's successors. Nodes are produced in the configured
// order as the sequence is consumed; abandoning the sequence abandons the
// remaining frontier with no further side effects.
//
// The result is finite unless the input graph is infinite and acyclic.
// For cyclic structures, WithCycleDetection is required or the traversal
// diverges; the default leaves detection off, matching the common
// no-cycles case.
func Traverse[N comparable](roots []N, children ChildFunc[N], opts ...Option) iter.Seq[N] {
	return TraverseFunc(roots, autoAdvance(children), opts...)
}

// TraverseFunc is the fine-grained variant of Traverse: visit receives the
// traversal signal for every node and decides what to enqueue (Next),
// whether to exclude the node (Skip), and whether to end the branch
// (Prune) or the whole traversal (Stop).
func TraverseFunc[N comparable](roots []N, visit VisitFunc[N], opts ...Option) iter.Seq[N] {
	cfg := buildOptions(opts)
	return func(yield func(N) bool) {
		s := start(roots, visit, cfg)
		for {
			node, ok := s.tryGetNext()
			if !ok {
				return
			}
			visit(s, node)
			if s.finishVisit() && !yield(node) {
				return
			}
		}
	}
}

// Flatten eagerly collects the traversal into a slice, enabling
// deterministic dense iteration without caller-side streaming. Traversal
// semantics are identical to Traverse.
func Flatten[N comparable](roots []N, children ChildFunc[N], opts ...Option) []N {
	return FlattenFunc(roots, autoAdvance(children), opts...)
}

// FlattenFunc is the eager counterpart of TraverseFunc.
func FlattenFunc[N comparable](roots []N, visit VisitFunc[N], opts ...Option) []N {
	var out []N
	for node := range TraverseFunc(roots, visit, opts...) {
		out = append(out, node)
	}
	return out
}

// autoAdvance wraps a child function in a signal callback that enqueues
// every returned child.
func autoAdvance[N comparable](children ChildFunc[N]) VisitFunc[N] {
	return func(s *Signal[N], node N) {
		if kids := children(node); len(kids) > 0 {
			s.Next(kids...)
		}
	}
}

// start constructs the signal for a traversal. With includeSelf the
// frontier is seeded with the roots themselves. Without it, the callback
// runs once against each root in seeding mode: Next records what would
// have been enqueued, nothing is yielded, and the recorded nodes become
// the depth-0 frontier.
func start[N comparable](roots []N, visit VisitFunc[N], cfg options) *Signal[N] {
	if cfg.includeSelf {
		return newSignal(roots, cfg)
	}

	s := newSignal[N](nil, cfg)
	s.seeding = true
	var zero N
	for _, root := range roots {
		if root == zero {
			continue
		}
		s.node = root
		s.resetFlags()
		visit(s, root)
	}
	s.seeding = false
	s.resetDepth()
	return s
}
