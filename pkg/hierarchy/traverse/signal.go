package traverse

// VisitFunc is invoked once per visited node. The signal carries the
// traversal state for the node being visited: call Next to enqueue its
// children, Skip to exclude it from the output, Prune to explicitly
// decline descending, or Stop to end the traversal.
type VisitFunc[N comparable] func(s *Signal[N], node N)

// ChildFunc returns the children of a node in sibling order.
// It is the simpler alternative to a raw VisitFunc: Traverse wraps it in a
// callback that enqueues every returned child.
type ChildFunc[N comparable] func(node N) []N

// Signal is the state machine driving a single graph traversal. It owns
// the frontier, the optional visited set, per-node flags, and depth
// bookkeeping. A Signal is constructed per traversal call, mutated only
// during that call, and discarded afterwards; it is not safe for
// concurrent use.
//
// During a visit the callback may call at most one of Skip/Yield and at
// most one of Next/Prune. Calling both members of a pair on the same node
// is a programmer error and panics immediately.
type Signal[N comparable] struct {
	front   frontier[N]
	visited map[N]struct{} // nil when cycle detection is off
	order   Order
	reverse bool

	node  N
	depth int
	count int

	// wavefront counts the remaining nodes of the current breadth-first
	// level; depth increments each time it is re-seeded from the frontier.
	wavefront int

	// frames holds pending-sibling counts per active depth-first branch.
	// Every non-empty Next pushes a frame; exhausted frames are popped
	// before the next detach. Depth is len(frames)-1.
	frames []int

	skipped    bool
	yielded    bool
	pruned     bool
	nextCalled bool

	seeding bool
	stopped bool
}

// newSignal constructs a signal seeded with roots. Zero-valued roots
// (nil nodes) are dropped, so an absent root yields an empty traversal
// rather than an error.
func newSignal[N comparable](roots []N, cfg options) *Signal[N] {
	s := &Signal[N]{
		order:   cfg.order,
		reverse: cfg.reverse,
	}
	if cfg.order == DepthFirst {
		s.front = &stackFrontier[N]{}
	} else {
		s.front = &queueFrontier[N]{}
	}
	if cfg.detectCycles {
		s.visited = make(map[N]struct{})
	}

	var zero N
	seeds := make([]N, 0, len(roots))
	for _, r := range roots {
		if r == zero {
			continue
		}
		seeds = append(seeds, r)
	}
	s.front.attachMany(seeds, cfg.reverse)
	s.resetDepth()
	return s
}

// resetDepth re-seeds the depth bookkeeping from the current frontier,
// treating its contents as depth-0 roots.
func (s *Signal[N]) resetDepth() {
	s.depth = 0
	if s.order == DepthFirst {
		s.frames = s.frames[:0]
		if n := s.front.size(); n > 0 {
			s.frames = append(s.frames, n)
		}
		return
	}
	s.wavefront = s.front.size()
}

// tryGetNext detaches the next node to visit, updates depth bookkeeping,
// and resets the per-node flags. It reports false once the frontier is
// exhausted or Stop was called.
func (s *Signal[N]) tryGetNext() (N, bool) {
	var zero N
	for {
		if s.stopped {
			return zero, false
		}

		if s.order == DepthFirst {
			for len(s.frames) > 0 && s.frames[len(s.frames)-1] == 0 {
				s.frames = s.frames[:len(s.frames)-1]
			}
		} else if s.wavefront == 0 && s.front.size() > 0 {
			s.depth++
			s.wavefront = s.front.size()
		}

		node, ok := s.front.tryDetach()
		if !ok {
			return zero, false
		}

		if s.order == DepthFirst {
			s.frames[len(s.frames)-1]--
			s.depth = len(s.frames) - 1
		} else {
			s.wavefront--
		}

		if s.visited != nil {
			if _, seen := s.visited[node]; seen {
				// Enqueued again after its first visit; drop silently.
				continue
			}
			s.visited[node] = struct{}{}
		}

		s.node = node
		s.resetFlags()
		return node, true
	}
}

// resetFlags clears the per-node flags before a visit.
func (s *Signal[N]) resetFlags() {
	s.skipped = false
	s.yielded = false
	s.pruned = false
	s.nextCalled = false
}

// shouldYield reports whether the current node belongs in the output.
// Nodes are included by default; only Skip excludes them.
func (s *Signal[N]) shouldYield() bool {
	return !s.skipped
}

// finishVisit updates the yielded count after a visit and reports whether
// the node should be produced.
func (s *Signal[N]) finishVisit() bool {
	if s.skipped {
		return false
	}
	s.count++
	return true
}

// Node returns the node currently being visited.
func (s *Signal[N]) Node() N {
	return s.node
}

// Depth returns the depth of the current node. Roots (or, with
// WithoutSelf, the nodes seeded from them) are at depth 0.
func (s *Signal[N]) Depth() int {
	return s.depth
}

// Count returns the number of nodes yielded so far, excluding the node
// currently being visited.
func (s *Signal[N]) Count() int {
	return s.count
}

// Skip excludes the current node from the output. Traversal still descends
// into whatever Next enqueued for it.
//
// Panics if Yield was already called on the same node.
func (s *Signal[N]) Skip() {
	if s.yielded {
		panic("hierarchy: cannot call Skip after Yield on the same node")
	}
	s.skipped = true
}

// Yield explicitly marks the current node for inclusion. Nodes are
// included by default, so Yield is only needed to guard against an
// accidental Skip on the same node.
//
// Panics if Skip was already called on the same node.
func (s *Signal[N]) Yield() {
	if s.skipped {
		panic("hierarchy: cannot call Yield after Skip on the same node")
	}
	s.yielded = true
}

// Next enqueues nodes as children of the current node, respecting the
// configured sibling order. It may be called multiple times per visit.
//
// Panics if Prune was already called on the same node.
func (s *Signal[N]) Next(nodes ...N) {
	if s.pruned {
		panic("hierarchy: cannot call Next after Prune on the same node")
	}
	s.nextCalled = true
	if s.stopped || len(nodes) == 0 {
		return
	}
	s.front.attachMany(nodes, s.reverse)
	if s.order == DepthFirst && !s.seeding {
		s.frames = append(s.frames, len(nodes))
	}
}

// Prune declines to enqueue any children for the current node. It is
// equivalent to omitting Next, but guards against accidentally also
// calling Next on the same node. Only the current branch is affected.
//
// Panics if Next was already called on the same node.
func (s *Signal[N]) Prune() {
	if s.nextCalled {
		panic("hierarchy: cannot call Prune after Next on the same node")
	}
	s.pruned = true
}

// Stop clears the entire frontier, ending the traversal after the current
// node's post-processing. Unlike Prune, which affects only the current
// branch, Stop terminates globally.
func (s *Signal[N]) Stop() {
	s.stopped = true
	s.front.clear()
}
