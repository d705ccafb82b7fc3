package traverse

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// link is a minimal linked-list element for chain tests.
type link struct {
	name string
	next *link
}

// chainOf builds a linked chain from names and returns its head.
func chainOf(names ...string) *link {
	var head, tail *link
	for _, name := range names {
		l := &link{name: name}
		if head == nil {
			head = l
		} else {
			tail.next = l
		}
		tail = l
	}
	return head
}

// succ adapts link to a NextFunc.
func succ(l *link) (*link, bool) {
	return l.next, l.next != nil
}

// linkNames collects the names of a chain sequence.
func linkNames(seq func(func(*link) bool)) []string {
	var out []string
	for l := range seq {
		out = append(out, l.name)
	}
	return out
}

// TestChainNext_Order verifies elements are produced head to tail.
func TestChainNext_Order(t *testing.T) {
	head := chainOf("a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, linkNames(ChainNext(head, succ)))
}

// TestChainNext_NilFirst verifies an absent head yields an empty
// sequence.
func TestChainNext_NilFirst(t *testing.T) {
	assert.Empty(t, slices.Collect(ChainNext[*link](nil, succ)))
}

// TestChain_Skip verifies skipped elements are excluded while traversal
// continues past them.
func TestChain_Skip(t *testing.T) {
	head := chainOf("a", "b", "c")
	seq := Chain(head, func(s *ChainSignal[*link], l *link) {
		if l.name == "b" {
			s.Skip()
		}
		if l.next != nil {
			s.Next(l.next)
		}
	})
	assert.Equal(t, []string{"a", "c"}, linkNames(seq))
}

// TestChain_Prune verifies pruning ends the chain after the current
// element.
func TestChain_Prune(t *testing.T) {
	head := chainOf("a", "b", "c")
	seq := Chain(head, func(s *ChainSignal[*link], l *link) {
		if l.name == "b" {
			s.Prune()
			return
		}
		if l.next != nil {
			s.Next(l.next)
		}
	})
	assert.Equal(t, []string{"a", "b"}, linkNames(seq))
}

// TestChain_ZeroNext verifies a zero-valued next is treated as absent.
func TestChain_ZeroNext(t *testing.T) {
	head := chainOf("a", "b")
	seq := Chain(head, func(s *ChainSignal[*link], l *link) {
		s.Next(l.next) // nil for the last element
	})
	assert.Equal(t, []string{"a", "b"}, linkNames(seq))
}

// TestChain_IndexAndCount verifies position and yielded-count tracking,
// with count lagging over skipped elements.
func TestChain_IndexAndCount(t *testing.T) {
	head := chainOf("a", "b", "c")
	var indexes, counts []int
	seq := Chain(head, func(s *ChainSignal[*link], l *link) {
		indexes = append(indexes, s.Index())
		counts = append(counts, s.Count())
		if l.name == "a" {
			s.Skip()
		}
		if l.next != nil {
			s.Next(l.next)
		}
	})
	_ = linkNames(seq)

	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []int{0, 0, 1}, counts)
}

// TestChain_EarlyAbandon verifies the consumer can stop pulling without
// visiting the rest of the chain.
func TestChain_EarlyAbandon(t *testing.T) {
	head := chainOf("a", "b", "c")
	visited := 0
	seq := Chain(head, func(s *ChainSignal[*link], l *link) {
		visited++
		if l.next != nil {
			s.Next(l.next)
		}
	})
	for range seq {
		break
	}
	assert.Equal(t, 1, visited)
}

// TestChain_ContractViolations verifies conflicting chain signal calls
// panic immediately.
func TestChain_ContractViolations(t *testing.T) {
	testCases := []struct {
		name  string
		visit ChainVisitFunc[*link]
		want  string
	}{
		{
			"skip after yield",
			func(s *ChainSignal[*link], _ *link) { s.Yield(); s.Skip() },
			"hierarchy: cannot call Skip after Yield on the same node",
		},
		{
			"yield after skip",
			func(s *ChainSignal[*link], _ *link) { s.Skip(); s.Yield() },
			"hierarchy: cannot call Yield after Skip on the same node",
		},
		{
			"next after prune",
			func(s *ChainSignal[*link], l *link) { s.Prune(); s.Next(l.next) },
			"hierarchy: cannot call Next after Prune on the same node",
		},
		{
			"prune after next",
			func(s *ChainSignal[*link], l *link) { s.Next(l.next); s.Prune() },
			"hierarchy: cannot call Prune after Next on the same node",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tc.want, func() {
				_ = linkNames(Chain(chainOf("a", "b"), tc.visit))
			})
		})
	}
}
