/*
Package hierarchy models tree-shaped structures of identifiable items,
built from relation data, with traversal, search, diffing, and external
persistence of the resulting relations.

# Overview

A Hierarchy is a named collection of root nodes plus an identifier index.
It is built once from relation data (parent/child pairs or an
identifier-to-children multimap) and an identification function, then
traversed, searched, mutated, and snapshotted into relation maps for
diffing and persistence.

The library deliberately separates three concerns:

  - hierarchy (this package): nodes, hierarchies, assembly, relation
    snapshot extraction
  - traverse: the non-recursive, signal-driven traversal engine
  - relation: relation multimaps, snapshot diffing, and persistence
    stores (in-memory and SQLite)

# Basic Usage

Build a hierarchy from parent/child pairs and walk it:

	type Dept struct{ ID, Name string }

	h, err := hierarchy.FromPairs("org-chart", depts,
	    func(d Dept) string { return d.ID },
	    []relation.Pair{
	        {Parent: "eng", Child: "platform"},
	        {Parent: "eng", Child: "product"},
	    })
	if err != nil {
	    log.Fatal(err)
	}

	for n := range h.Traverse() {
	    fmt.Println(n.Item().Name)
	}

Search with depth-aware pruning via the traverse options:

	match, ok := h.Find(func(n *hierarchy.Node[Dept]) bool {
	    return n.Item().Name == "Platform"
	}, traverse.WithDepthFirst())

# Persistence

Relation snapshots (children, descendants, or ancestors per subject) are
diffed and synced to a relation.Store:

	store, err := relation.NewSQLiteStore("./relations.db")
	defer store.Close()

	current, _ := h.Relations(relation.KindChildren)
	delta, err := relation.NewSyncer(store).Sync(ctx, h.Concept(), relation.KindChildren, current)

Only the changed subjects are written: deleted subjects are removed,
new subjects inserted, and modified subjects patched in place.

# Ownership

Each hierarchy brands its nodes with an owner tag. Attaching a node owned
by one hierarchy into another fails with ErrForeignNode, guarding against
cross-hierarchy contamination. Detach clears the tags, so detached
subtrees can be adopted elsewhere.

# Thread Safety

  - Node and Hierarchy are NOT safe for concurrent mutation
  - Traversals own their state per call and may run concurrently over a
    structure that is not being mutated
  - relation.Store implementations are safe for concurrent use

# Subpackages

  - traverse: breadth-first/depth-first signal-driven traversal
  - relation: relation maps, diffing, persistence stores, syncing
  - config: hierarchy definitions from YAML/JSON files
  - observability: logging, metrics, and tracing helpers
*/
package hierarchy
