package traverse

// frontier is an ordered store of nodes that have been discovered but not
// yet visited. The choice of backing container determines traversal order:
// a queue yields breadth-first, a stack yields depth-first.
type frontier[N comparable] interface {
	// attach adds a single node to the frontier.
	attach(node N)

	// attachMany adds nodes preserving their given order, unless reverse
	// is set, in which case they are attached back-to-front.
	attachMany(nodes []N, reverse bool)

	// tryDetach removes and returns the next node to visit.
	// The boolean reports whether the frontier was non-empty.
	tryDetach() (N, bool)

	// size returns the number of pending nodes.
	size() int

	// clear drops all pending nodes.
	clear()
}

// queueFrontier detaches from the front. It backs breadth-first traversal.
//
// The head index avoids shifting the slice on every detach; the buffer is
// reset once fully drained so memory is reclaimed between wavefronts.
type queueFrontier[N comparable] struct {
	nodes []N
	head  int
}

func (q *queueFrontier[N]) attach(node N) {
	q.nodes = append(q.nodes, node)
}

func (q *queueFrontier[N]) attachMany(nodes []N, reverse bool) {
	if reverse {
		for i := len(nodes) - 1; i >= 0; i-- {
			q.nodes = append(q.nodes, nodes[i])
		}
		return
	}
	q.nodes = append(q.nodes, nodes...)
}

func (q *queueFrontier[N]) tryDetach() (N, bool) {
	var zero N
	if q.head >= len(q.nodes) {
		return zero, false
	}
	node := q.nodes[q.head]
	q.nodes[q.head] = zero // release the reference
	q.head++
	if q.head == len(q.nodes) {
		q.nodes = q.nodes[:0]
		q.head = 0
	}
	return node, true
}

func (q *queueFrontier[N]) size() int {
	return len(q.nodes) - q.head
}

func (q *queueFrontier[N]) clear() {
	q.nodes = nil
	q.head = 0
}

// stackFrontier detaches the most recently attached node. It backs
// depth-first traversal: the last child attached is the first visited,
// so attaching children in declared order visits them back-to-front.
type stackFrontier[N comparable] struct {
	nodes []N
}

func (s *stackFrontier[N]) attach(node N) {
	s.nodes = append(s.nodes, node)
}

func (s *stackFrontier[N]) attachMany(nodes []N, reverse bool) {
	if reverse {
		for i := len(nodes) - 1; i >= 0; i-- {
			s.nodes = append(s.nodes, nodes[i])
		}
		return
	}
	s.nodes = append(s.nodes, nodes...)
}

func (s *stackFrontier[N]) tryDetach() (N, bool) {
	var zero N
	if len(s.nodes) == 0 {
		return zero, false
	}
	last := len(s.nodes) - 1
	node := s.nodes[last]
	s.nodes[last] = zero
	s.nodes = s.nodes[:last]
	return node, true
}

func (s *stackFrontier[N]) size() int {
	return len(s.nodes)
}

func (s *stackFrontier[N]) clear() {
	s.nodes = nil
}
