package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/tree"
)

// panicErr runs fn and returns the error it panicked with, or nil.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

// edgeIDs collects the ids of t.Edges() in order.
func edgeIDs(t *tree.Tree) []tree.EdgeID {
	var out []tree.EdgeID
	for _, e := range t.Edges() {
		out = append(out, e.ID)
	}
	return out
}

// path builds a rooted path 1-2-...-n (1 is the root).
func path(n int) *tree.Tree {
	t := tree.New()
	v := t.InsertRoot()
	for i := 1; i < n; i++ {
		v = t.AddChild(v)
	}
	return t
}

func TestInsertRoot_Idempotent(t *testing.T) {
	tr := tree.New()
	assert.Equal(t, tree.None, tr.Root())

	r := tr.InsertRoot()
	assert.Equal(t, tree.VertexID(1), r)
	assert.Equal(t, r, tr.InsertRoot(), "second InsertRoot returns the existing root")
	assert.Equal(t, 1, tr.VertexCount())
	assert.Equal(t, 0, tr.EdgeCount())
	assert.True(t, tr.IsRoot(r))
	require.NoError(t, tr.Validate())
}

func TestAddChild_SortedListsAndIDs(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)
	c := tr.AddChild(a)

	assert.Equal(t, []tree.VertexID{2, 3, 4}, []tree.VertexID{a, b, c})
	assert.Equal(t, []tree.VertexID{a, b}, tr.Children(r))
	assert.Equal(t, []tree.EdgeID{1, 2}, tr.IncidentEdges(r))
	assert.Equal(t, []tree.EdgeID{1, 3}, tr.IncidentEdges(a))
	assert.Equal(t, tree.Edge{ID: 3, Lower: a, Higher: c}, tr.EdgeAt(2))
	assert.True(t, tr.IsChild(r, a))
	assert.False(t, tr.IsChild(r, c))
	require.NoError(t, tr.Validate())
}

func TestRemoveVertex_RootWithTwoChildren(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)

	tr.RemoveVertex(r)

	require.NoError(t, tr.Validate())
	assert.Equal(t, 2, tr.VertexCount())
	assert.Equal(t, 1, tr.EdgeCount())
	assert.Equal(t, a, tr.Root(), "lower child is promoted")
	assert.Equal(t, a, tr.Parent(b))
	assert.True(t, tr.IsNeighbor(a, b))
	assert.Equal(t, []tree.EdgeID{3}, edgeIDs(tr), "a fresh edge joins the siblings")
}

func TestRemoveVertex_RootWithOneChild(t *testing.T) {
	tr := path(3)
	tr.RemoveVertex(1)

	require.NoError(t, tr.Validate())
	assert.Equal(t, tree.VertexID(2), tr.Root())
	assert.Equal(t, []tree.EdgeID{2}, edgeIDs(tr), "no new edge when the only child is promoted")
}

func TestRemoveVertex_ReconnectsChildrenToParent(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	mid := tr.AddChild(r)
	k1 := tr.AddChild(mid)
	k2 := tr.AddChild(mid)
	k3 := tr.AddChild(mid)

	tr.RemoveVertex(mid)

	require.NoError(t, tr.Validate())
	assert.Equal(t, 4, tr.VertexCount())
	assert.Equal(t, []tree.VertexID{k1, k2, k3}, tr.Children(r))
	assert.Equal(t, []tree.EdgeID{5, 6, 7}, edgeIDs(tr), "three children, three new edges")
	assert.False(t, tr.IsVertex(mid))
}

func TestRemoveVertex_LeafAndLastVertex(t *testing.T) {
	tr := path(2)
	tr.RemoveVertex(2)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 0, tr.EdgeCount())
	assert.True(t, tr.IsLeaf(1))

	tr.RemoveVertex(1)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 0, tr.VertexCount())
	assert.Equal(t, tree.None, tr.Root())

	assert.Equal(t, tree.VertexID(3), tr.InsertRoot(), "ids are never reused")
}

func TestRemoveSubtree(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)
	tr.AddChild(a)
	tr.AddChild(a)

	tr.RemoveSubtree(a)
	require.NoError(t, tr.Validate())
	assert.Equal(t, []tree.VertexID{r, b}, tr.Vertices())
	assert.Equal(t, 1, tr.EdgeCount())

	tr.RemoveSubtree(r)
	assert.Equal(t, 0, tr.VertexCount())
	require.NoError(t, tr.Validate())
}

func TestAddParent_AboveRoot(t *testing.T) {
	tr := path(2)
	n := tr.AddParent(1)

	require.NoError(t, tr.Validate())
	assert.Equal(t, n, tr.Root())
	assert.Equal(t, []tree.VertexID{1}, tr.Children(n))
	assert.Equal(t, []tree.EdgeID{1, 2}, edgeIDs(tr))
}

func TestAddParent_Splice(t *testing.T) {
	tr := path(2)
	n := tr.AddParent(2)

	require.NoError(t, tr.Validate())
	assert.Equal(t, tree.VertexID(3), n)
	assert.Equal(t, n, tr.Parent(2))
	assert.Equal(t, tree.VertexID(1), tr.Parent(n))
	assert.False(t, tr.IsEdge(1), "the replaced edge id is retired")
	assert.Equal(t, []tree.EdgeID{2, 3}, edgeIDs(tr))

	e, ok := tr.EdgeBetween(n, 2)
	require.True(t, ok)
	assert.Equal(t, tree.EdgeID(3), e.ID)
}

func TestSetParent_Move(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)
	c := tr.AddChild(a)

	tr.SetParent(c, b)
	require.NoError(t, tr.Validate())
	assert.Empty(t, tr.Children(a))
	assert.Equal(t, []tree.VertexID{c}, tr.Children(b))
	assert.Equal(t, []tree.EdgeID{1, 2, 4}, edgeIDs(tr))

	tr.SetParent(c, b)
	assert.Equal(t, []tree.EdgeID{1, 2, 4}, edgeIDs(tr), "same parent is a no-op")
}

func TestSetParent_UnderDescendantReroots(t *testing.T) {
	tr := path(4) // 1-2-3-4, edges 1,2,3

	tr.SetParent(2, 4)

	require.NoError(t, tr.Validate())
	assert.Equal(t, tree.VertexID(3), tr.Root())
	assert.Equal(t, tree.VertexID(3), tr.Parent(4))
	assert.Equal(t, tree.VertexID(4), tr.Parent(2))
	assert.Equal(t, tree.VertexID(2), tr.Parent(1))
	assert.Equal(t, []tree.EdgeID{1, 3, 4}, edgeIDs(tr))
}

func TestSetParent_UnderDirectChild(t *testing.T) {
	tr := path(2)
	tr.SetParent(1, 2)

	require.NoError(t, tr.Validate())
	assert.Equal(t, tree.VertexID(2), tr.Root())
	assert.Equal(t, tree.VertexID(2), tr.Parent(1))
	assert.Equal(t, []tree.EdgeID{1}, edgeIDs(tr), "re-rooting keeps edge ids")
}

func TestSwapWithParent_BelowRoot(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)
	c := tr.AddChild(a)

	tr.SwapWithParent(a)

	require.NoError(t, tr.Validate())
	assert.Equal(t, a, tr.Root())
	assert.Equal(t, []tree.VertexID{r, c}, tr.Children(a))
	assert.Equal(t, []tree.VertexID{b}, tr.Children(r))
	assert.Equal(t, []tree.EdgeID{1, 2, 3}, edgeIDs(tr))
}

func TestSwapWithParent_RelabelsGrandparentEdge(t *testing.T) {
	tr := tree.New()
	g := tr.InsertRoot()
	p := tr.AddChild(g)    // edge 1
	v := tr.AddChild(p)    // edge 2
	s := tr.AddChild(p)    // edge 3
	leaf := tr.AddChild(v) // edge 4

	tr.SwapWithParent(v)

	require.NoError(t, tr.Validate())
	assert.Equal(t, g, tr.Parent(v))
	assert.Equal(t, v, tr.Parent(p))
	assert.Equal(t, []tree.VertexID{p, leaf}, tr.Children(v))
	assert.Equal(t, []tree.VertexID{s}, tr.Children(p))

	assert.False(t, tr.IsEdge(1))
	assert.Equal(t, []tree.EdgeID{2, 3, 4, 5}, edgeIDs(tr))
	assert.Equal(t, tree.Edge{ID: 5, Lower: g, Higher: v}, tr.EdgeAt(3))
	pv, ok := tr.EdgeBetween(p, v)
	require.True(t, ok)
	assert.Equal(t, tree.EdgeID(2), pv.ID, "parent edge keeps its id")
}

func TestContractViolationsPanic(t *testing.T) {
	tr := path(2)

	assert.ErrorIs(t, panicErr(t, func() { tr.AddChild(42) }), tree.ErrUnknownVertex)
	assert.ErrorIs(t, panicErr(t, func() { tr.SwapWithParent(1) }), tree.ErrNoParent)
	assert.ErrorIs(t, panicErr(t, func() { tr.SetParent(2, 2) }), tree.ErrCycle)
	assert.ErrorIs(t, panicErr(t, func() { tr.EdgeAt(5) }), tree.ErrPosition)
	assert.ErrorIs(t, panicErr(t, func() { tree.New().Height() }), tree.ErrEmptyTree)
	assert.NoError(t, panicErr(t, func() { tr.Parent(2) }))
	assert.True(t, errors.Is(tree.ErrUnknownVertex, tree.ErrUnknownVertex))
}

func TestQueries(t *testing.T) {
	tr := tree.New()
	r := tr.InsertRoot()
	a := tr.AddChild(r)
	b := tr.AddChild(r)
	c := tr.AddChild(a)
	d := tr.AddChild(c)

	assert.Equal(t, []tree.VertexID{b, d}, tr.Leaves())
	assert.Equal(t, 2, tr.LeafCount())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, 1, tr.HeightOf(c))
	assert.Equal(t, 3, tr.Depth(d))
	assert.Equal(t, 0, tr.Depth(r))
	assert.Equal(t, []tree.VertexID{r, c}, tr.Neighbors(a))
	assert.Equal(t, 2, tr.NeighborCount(a))
	assert.True(t, tr.IsNeighbor(c, a))
	assert.False(t, tr.IsNeighbor(r, c))
	assert.Equal(t, b, tr.ChildAt(r, 1))
	assert.Equal(t, 2, tr.ChildCount(r))
	assert.Equal(t, 3, tr.SubtreeSize(a))
	assert.True(t, tr.IsAncestor(r, d))
	assert.False(t, tr.IsAncestor(d, r))
	assert.False(t, tr.IsAncestor(a, a))
	assert.Equal(t, []tree.VertexID{r, a, c, d, b}, tr.PreOrder(r))
	assert.Equal(t, []tree.VertexID{d, c, a, b, r}, tr.PostOrder(r))

	e, ok := tr.Edge(2)
	require.True(t, ok)
	assert.Equal(t, b, e.Other(r))
	_, ok = tr.Edge(99)
	assert.False(t, ok)
}

func TestClone_Independent(t *testing.T) {
	tr := path(3)
	c := tr.Clone()

	c.AddChild(1)
	c.RemoveVertex(2)
	require.NoError(t, c.Validate())

	assert.Equal(t, 3, tr.VertexCount())
	assert.Equal(t, []tree.EdgeID{1, 2}, edgeIDs(tr))
	assert.Equal(t, tr.AddChild(3), tree.VertexID(4), "original allocator unaffected by the clone")
}

func TestReset(t *testing.T) {
	tr := path(3)
	tr.Reset()
	require.NoError(t, tr.Validate())
	assert.Equal(t, 0, tr.VertexCount())
	assert.Equal(t, tree.VertexID(4), tr.InsertRoot())
}
