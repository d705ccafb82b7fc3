/*
Package traverse implements signal-driven graph and sequence traversal.

# Overview

traverse walks arbitrary node graphs without recursion, so deep or cyclic
structures cannot overflow the stack. Callers supply roots plus either a
child function or a raw signal callback; the engine produces nodes lazily
(Traverse, via iter.Seq) or eagerly (Flatten), in breadth-first or
depth-first order, preserving sibling insertion order.

# Basic Usage

Walk a tree breadth-first with a child function:

	for n := range traverse.Traverse([]*Item{root}, (*Item).Kids) {
	    fmt.Println(n.Name)
	}

Or take full control with a signal callback:

	nodes := traverse.FlattenFunc([]*Item{root}, func(s *traverse.Signal[*Item], n *Item) {
	    if n.Hidden {
	        s.Skip()  // exclude from output, still descend
	    }
	    if s.Depth() < 3 {
	        s.Next(n.Kids()...)
	    } else {
	        s.Prune() // explicitly end this branch
	    }
	})

# Signals

During each visit the callback may call on the signal:

  - Skip: exclude the current node from the output
  - Yield: explicit inclusion marker (inclusion is the default)
  - Next: enqueue children, respecting the configured sibling order
  - Prune: explicitly enqueue nothing for this node
  - Stop: clear the frontier and end the whole traversal

Skip/Yield are mutually exclusive, as are Next/Prune; calling both members
of a pair on the same node panics immediately. These are programmer
contract violations, not recoverable conditions.

# Ordering

Breadth-first visits all nodes at depth d before any node at depth d+1.
Depth-first pushes children onto a stack in declared order, so siblings are
visited back-to-front by default; WithReverse inverts each node's sibling
order (for depth-first that produces left-to-right document order).

# Cycles

Cycle detection is off by default. WithCycleDetection tracks visited node
identities (instance identity, not item equality) so each node is yielded
at most once and traversal terminates on graphs with back-edges.

# Sequences

Chain and ChainNext are the linear analogs for linked-list-like structures,
driven by a ChainSignal with the same skip/yield/prune contract.

# Thread Safety

Every call constructs fresh signal state; nothing is shared across calls.
A traversal and its signal must be used from a single goroutine, and the
underlying graph must not be mutated while a traversal over it is in
progress.
*/
package traverse
