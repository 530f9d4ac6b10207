package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/verify"
)

// cycle4 returns the 4-cycle 1-2-3-4-1.
func cycle4(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	g.AddVertices(4)
	for _, e := range [][]graph.Vertex{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		_, err := g.AddEdge(e...)
		require.NoError(t, err)
	}
	return g
}

// twoBags builds root bag a with one child bag b.
func twoBags(a, b []graph.Vertex) *decomposition.Decomposition {
	d := decomposition.New()
	r := d.InsertRoot()
	d.SetBag(r, a)
	d.SetBag(d.AddChild(r), b)
	return d
}

func TestCheck_Valid(t *testing.T) {
	g := cycle4(t)
	require.NoError(t, verify.Check(g, twoBags([]graph.Vertex{1, 2, 3}, []graph.Vertex{1, 3, 4})))

	d := decomposition.New()
	d.SetBag(d.InsertRoot(), g.Vertices())
	require.NoError(t, verify.Check(g, d))
}

func TestCheck_Violations(t *testing.T) {
	g := cycle4(t)

	require.ErrorIs(t, verify.Check(nil, decomposition.New()), verify.ErrNilInput)
	require.ErrorIs(t, verify.Check(g, decomposition.New()), verify.ErrEmptyDecomposition)
	require.NoError(t, verify.Check(graph.NewGraph(), decomposition.New()))

	require.ErrorIs(t,
		verify.Check(g, twoBags([]graph.Vertex{1, 2, 3}, []graph.Vertex{1, 3})),
		verify.ErrVertexNotCovered)

	require.ErrorIs(t,
		verify.Check(g, twoBags([]graph.Vertex{1, 2, 3}, []graph.Vertex{2, 4})),
		verify.ErrEdgeNotCovered)

	require.ErrorIs(t,
		verify.Check(g, twoBags([]graph.Vertex{1, 2, 3}, []graph.Vertex{1, 3, 9})),
		verify.ErrUnknownBagVertex)

	// 1 appears at both ends of a path whose middle bag lacks it.
	d := decomposition.New()
	r := d.InsertRoot()
	m := d.AddChild(r)
	l := d.AddChild(m)
	d.SetBag(r, []graph.Vertex{1, 2})
	d.SetBag(m, []graph.Vertex{2, 3, 4})
	d.SetBag(l, []graph.Vertex{1, 4})
	require.ErrorIs(t, verify.Check(g, d), verify.ErrNotConnected)
}
