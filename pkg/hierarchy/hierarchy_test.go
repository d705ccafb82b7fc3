package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/hierarchy/pkg/hierarchy/relation"
	"github.com/randalmurphal/hierarchy/pkg/hierarchy/traverse"
)

// identity is the identifier function for string-item hierarchies.
func identity(s string) string { return s }

// exampleHierarchy builds the tree 0:[1,2,3] 1:[11,12] 12:[121] 3:[31,32].
func exampleHierarchy(t *testing.T) *Hierarchy[string] {
	t.Helper()
	h, err := FromRelations("example", relation.Map{
		"0":  {"1", "2", "3"},
		"1":  {"11", "12"},
		"12": {"121"},
		"3":  {"31", "32"},
	})
	require.NoError(t, err)
	return h
}

// itemsOf collects node items from a slice of nodes.
func itemsOf(nodes []*Node[string]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Item())
	}
	return out
}

// TestNew_NilIdentify verifies the constructor contract.
func TestNew_NilIdentify(t *testing.T) {
	assert.PanicsWithValue(t, "hierarchy: identify function cannot be nil", func() {
		New[string]("bad", nil)
	})
}

// TestHierarchy_AddRoot verifies root adoption indexes the whole subtree.
func TestHierarchy_AddRoot(t *testing.T) {
	h := New("concept", identity)

	root := NewNode("r")
	require.NoError(t, root.Attach(NewNode("r1")))
	require.NoError(t, h.AddRoot(root))

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []string{"r", "r1"}, h.IDs())
	assert.Equal(t, []*Node[string]{root}, h.Roots())

	n, ok := h.Node("r1")
	require.True(t, ok)
	assert.Equal(t, "r1", n.Item())
}

// TestHierarchy_AddRoot_Errors verifies the adoption error conditions.
func TestHierarchy_AddRoot_Errors(t *testing.T) {
	h := New("concept", identity)
	require.NoError(t, h.AddRoot(NewNode("r")))

	assert.ErrorIs(t, h.AddRoot(nil), ErrNilNode)
	assert.ErrorIs(t, h.AddRoot(NewNode("r")), ErrDuplicateID)

	parent := NewNode("p")
	child := NewNode("c")
	require.NoError(t, parent.Attach(child))
	assert.ErrorIs(t, h.AddRoot(child), ErrAlreadyAttached)

	other := New("other", identity)
	require.NoError(t, other.AddRoot(NewNode("theirs")))
	theirs, _ := other.Node("theirs")
	require.NoError(t, other.Detach("theirs")) // cleared tag, adoptable again
	assert.NoError(t, h.AddRoot(theirs))
}

// TestHierarchy_AddRoot_DuplicateInSubtree verifies a failed adoption
// leaves the hierarchy unchanged.
func TestHierarchy_AddRoot_DuplicateInSubtree(t *testing.T) {
	h := New("concept", identity)
	require.NoError(t, h.AddRoot(NewNode("x")))

	root := NewNode("r")
	require.NoError(t, root.Attach(NewNode("x")))
	assert.ErrorIs(t, h.AddRoot(root), ErrDuplicateID)

	assert.Equal(t, 1, h.Len())
	_, ok := h.Node("r")
	assert.False(t, ok)
}

// TestHierarchy_AttachTo verifies attaching a subtree under an indexed
// parent.
func TestHierarchy_AttachTo(t *testing.T) {
	h := New("concept", identity)
	require.NoError(t, h.AddRoot(NewNode("r")))

	sub := NewNode("s")
	require.NoError(t, sub.Attach(NewNode("s1")))
	require.NoError(t, h.AttachTo("r", sub))

	assert.Equal(t, []string{"r", "s", "s1"}, h.IDs())
	r, _ := h.Node("r")
	assert.Equal(t, []string{"s"}, itemsOf(r.Children()))
}

// TestHierarchy_AttachTo_UnknownParent verifies the missing-parent error.
func TestHierarchy_AttachTo_UnknownParent(t *testing.T) {
	h := New("concept", identity)
	err := h.AttachTo("nope", NewNode("n"))
	assert.ErrorIs(t, err, ErrUnknownID)
	assert.ErrorContains(t, err, `"nope"`)
}

// TestHierarchy_Detach_Cascades verifies detaching removes the entire
// subtree from the index and clears ownership for re-adoption.
func TestHierarchy_Detach_Cascades(t *testing.T) {
	h := exampleHierarchy(t)
	require.Equal(t, 9, h.Len())

	require.NoError(t, h.Detach("1"))

	assert.Equal(t, []string{"0", "2", "3", "31", "32"}, h.IDs())
	for _, id := range []string{"1", "11", "12", "121"} {
		_, ok := h.Node(id)
		assert.False(t, ok, id)
	}

	root, _ := h.Node("0")
	assert.Equal(t, []string{"2", "3"}, itemsOf(root.Children()))
}

// TestHierarchy_Detach_Root verifies a detached root leaves the root set.
func TestHierarchy_Detach_Root(t *testing.T) {
	h := exampleHierarchy(t)
	require.NoError(t, h.Detach("0"))

	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Roots())
}

// TestHierarchy_Detach_Unknown verifies the missing-identifier error.
func TestHierarchy_Detach_Unknown(t *testing.T) {
	h := exampleHierarchy(t)
	assert.ErrorIs(t, h.Detach("missing"), ErrUnknownID)
}

// TestHierarchy_Detach_ThenAdoptElsewhere verifies a detached subtree can
// move between hierarchies.
func TestHierarchy_Detach_ThenAdoptElsewhere(t *testing.T) {
	h := exampleHierarchy(t)
	sub, ok := h.Node("1")
	require.True(t, ok)
	require.NoError(t, h.Detach("1"))

	other := New("other", identity)
	require.NoError(t, other.AddRoot(sub))
	assert.Equal(t, []string{"1", "11", "12", "121"}, other.IDs())
}

// TestHierarchy_Traverse verifies the traversal facades honor options.
func TestHierarchy_Traverse(t *testing.T) {
	h := exampleHierarchy(t)

	assert.Equal(t,
		[]string{"0", "1", "2", "3", "11", "12", "31", "32", "121"},
		itemsOf(h.Flatten()))

	assert.Equal(t,
		[]string{"0", "3", "32", "31", "2", "1", "12", "121", "11"},
		itemsOf(h.Flatten(traverse.WithDepthFirst())))

	var lazy []string
	for n := range h.Traverse(traverse.WithoutSelf()) {
		lazy = append(lazy, n.Item())
	}
	assert.Equal(t, []string{"1", "2", "3", "11", "12", "31", "32", "121"}, lazy)
}

// TestHierarchy_Find verifies the search facades.
func TestHierarchy_Find(t *testing.T) {
	h := exampleHierarchy(t)

	got, ok := h.Find(func(n *Node[string]) bool { return len(n.Item()) == 2 })
	require.True(t, ok)
	assert.Equal(t, "11", got.Item())

	all := h.FindAll(func(n *Node[string]) bool { return len(n.Item()) >= 2 })
	assert.Equal(t, []string{"11", "12", "31", "32", "121"}, itemsOf(all))

	_, ok = h.Find(func(n *Node[string]) bool { return n.Item() == "nope" })
	assert.False(t, ok)
}

// TestHierarchy_Children verifies the direct-children snapshot: subjects
// are roots plus every node with children, and a childless root maps to
// an empty set.
func TestHierarchy_Children(t *testing.T) {
	h := exampleHierarchy(t)
	require.NoError(t, h.AddRoot(NewNode("lone")))

	assert.Equal(t, relation.Map{
		"0":    {"1", "2", "3"},
		"1":    {"11", "12"},
		"12":   {"121"},
		"3":    {"31", "32"},
		"lone": {},
	}, h.Children())
}

// TestHierarchy_Descendants verifies the transitive snapshot with
// breadth-first target order.
func TestHierarchy_Descendants(t *testing.T) {
	h := exampleHierarchy(t)

	assert.Equal(t, relation.Map{
		"0":  {"1", "2", "3", "11", "12", "31", "32", "121"},
		"1":  {"11", "12", "121"},
		"12": {"121"},
		"3":  {"31", "32"},
	}, h.Descendants())
}

// TestHierarchy_Ancestors verifies the ancestor snapshot runs nearest
// first for every non-root node.
func TestHierarchy_Ancestors(t *testing.T) {
	h := exampleHierarchy(t)

	assert.Equal(t, relation.Map{
		"1":   {"0"},
		"2":   {"0"},
		"3":   {"0"},
		"11":  {"1", "0"},
		"12":  {"1", "0"},
		"121": {"12", "1", "0"},
		"31":  {"3", "0"},
		"32":  {"3", "0"},
	}, h.Ancestors())
}

// TestHierarchy_Relations verifies kind dispatch and the invalid-kind
// error.
func TestHierarchy_Relations(t *testing.T) {
	h := exampleHierarchy(t)

	children, err := h.Relations(relation.KindChildren)
	require.NoError(t, err)
	assert.Equal(t, h.Children(), children)

	ancestors, err := h.Relations(relation.KindAncestors)
	require.NoError(t, err)
	assert.Equal(t, h.Ancestors(), ancestors)

	_, err = h.Relations(relation.Kind("bogus"))
	assert.ErrorIs(t, err, relation.ErrInvalidKind)
}

// TestHierarchy_DiffAfterMutations walks a full edit session: snapshot,
// mutate, snapshot again, diff. The delta must separate deletions,
// insertions, and per-subject target changes.
func TestHierarchy_DiffAfterMutations(t *testing.T) {
	h, err := FromRelations("concepts", relation.Map{
		"A":  {"A1", "A2"},
		"A2": {"A21"},
		"B":  {"B1"},
		"B1": {"B11", "B12", "B13"},
	})
	require.NoError(t, err)

	before := h.Children()

	require.NoError(t, h.Detach("A")) // cascades to A1, A2, A21
	require.NoError(t, h.AddRoot(NewNode("C")))
	d := NewNode("D")
	require.NoError(t, d.Attach(NewNode("D1")))
	require.NoError(t, h.AddRoot(d))
	require.NoError(t, h.Detach("B11"))
	require.NoError(t, h.AttachTo("B1", NewNode("B14")))

	after := h.Children()
	assert.Equal(t, relation.Map{
		"B":  {"B1"},
		"B1": {"B12", "B13", "B14"},
		"C":  {},
		"D":  {"D1"},
	}, after)

	delta := relation.Diff(before, after)
	assert.Equal(t, []string{"A", "A2"}, delta.Deleted)
	assert.Equal(t, relation.Map{"C": {}, "D": {"D1"}}, delta.Inserted)
	assert.Equal(t, relation.Map{"B1": {"B11"}}, delta.Removed)
	assert.Equal(t, relation.Map{"B1": {"B14"}}, delta.Added)
}
