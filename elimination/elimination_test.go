package elimination_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/builder"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/preprocess"
	"github.com/katalvlaran/treewidth/strategy"
	"github.com/katalvlaran/treewidth/verify"
)

func buildGraph(t *testing.T, n int, edges [][]graph.Vertex) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	g.AddVertices(n)
	for _, e := range edges {
		_, err := g.AddEdge(e...)
		require.NoError(t, err)
	}
	return g
}

// grid returns the w×h grid graph; its treewidth is min(w, h).
func grid(t *testing.T, w, h int) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(h, w))
	require.NoError(t, err)
	return g
}

func randomGraph(t *testing.T, seed int64, n int, p float64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	return g
}

func input(t *testing.T, g graph.View) strategy.Input {
	t.Helper()
	pre, err := preprocess.Prepare(context.Background(), g)
	require.NoError(t, err)
	return strategy.Input{Graph: g, Preprocessed: pre}
}

func TestOrderings_ProduceValidDecompositions(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"grid4x3":  grid(t, 4, 3),
		"random":   randomGraph(t, 3, 25, 0.2),
		"forest":   buildGraph(t, 7, [][]graph.Vertex{{1, 2}, {2, 3}, {4, 5}}),
		"hyper":    buildGraph(t, 5, [][]graph.Vertex{{1, 2, 3}, {3, 4, 5}}),
		"isolated": buildGraph(t, 3, nil),
	}
	for name, g := range graphs {
		for _, o := range elimination.Orderings() {
			s := elimination.NewBucketElimination(o, elimination.WithSeed(11))
			d, err := s.ComputeDecomposition(context.Background(), input(t, g))
			require.NoError(t, err, "%s/%s", name, o)
			require.NotNil(t, d, "%s/%s", name, o)
			require.NoError(t, verify.Check(g, d), "%s/%s", name, o)
		}
	}
}

func TestBucketElimination_KnownWidths(t *testing.T) {
	path := buildGraph(t, 4, [][]graph.Vertex{{1, 2}, {2, 3}, {3, 4}})
	d, err := elimination.NewBucketElimination(elimination.MinDegree).ComputeDecomposition(context.Background(), input(t, path))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Width())
	assert.Equal(t, 3, d.VertexCount(), "compression leaves one bag per edge")

	clique := buildGraph(t, 4, [][]graph.Vertex{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})
	d, err = elimination.NewBucketElimination(elimination.MinFill).ComputeDecomposition(context.Background(), input(t, clique))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width())
	assert.Equal(t, 1, d.VertexCount())

	d, err = elimination.NewBucketElimination(elimination.MinFill).ComputeDecomposition(context.Background(), input(t, grid(t, 3, 3)))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width(), "3x3 grid has treewidth 3")
}

func TestBucketElimination_BoundFailsFast(t *testing.T) {
	clique := buildGraph(t, 4, [][]graph.Vertex{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})
	in := input(t, clique)
	in.MaxBagSize = 3

	d, err := elimination.NewBucketElimination(elimination.MinDegree).ComputeDecomposition(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, used, err := elimination.NewBucketElimination(elimination.Random).ComputeBudgeted(context.Background(), in, 5)
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Equal(t, 5, used)
}

func TestBucketElimination_BudgetStopsAtFirstFit(t *testing.T) {
	in := input(t, grid(t, 3, 3))
	in.MaxBagSize = 100

	d, used, err := elimination.NewBucketElimination(elimination.MinFill).ComputeBudgeted(context.Background(), in, 10)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 1, used)
}

func TestBucketElimination_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := elimination.NewBucketElimination(elimination.MinFill)
	assert.False(t, s.SafelyInterruptible())
	d, used, err := s.ComputeBudgeted(ctx, input(t, grid(t, 3, 3)), 3)
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Equal(t, 0, used)
}

func TestBucketElimination_SeedDeterminism(t *testing.T) {
	g := randomGraph(t, 5, 30, 0.15)
	in := input(t, g)

	a := elimination.NewBucketElimination(elimination.Random, elimination.WithSeed(9))
	b := a.Clone()
	da, err := a.ComputeDecomposition(context.Background(), in)
	require.NoError(t, err)
	db, err := b.ComputeDecomposition(context.Background(), in)
	require.NoError(t, err)

	for _, v := range da.Vertices() {
		assert.Equal(t, da.Bag(v), db.Bag(v))
	}
	assert.Equal(t, "bucket-elimination/random", a.Name())
}

func TestBucketElimination_AppliesOperations(t *testing.T) {
	star := buildGraph(t, 6, [][]graph.Vertex{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6}})
	in := input(t, star)
	limit, err := manipulation.NewLimitChildCount(2)
	require.NoError(t, err)
	in.Operations = []manipulation.Operation{limit, manipulation.NewInducedSubgraphLabeling()}

	d, err := elimination.NewBucketElimination(elimination.MinDegree).ComputeDecomposition(context.Background(), in)
	require.NoError(t, err)
	require.NoError(t, verify.Check(star, d))
	assert.LessOrEqual(t, manipulation.MaxChildCount(d), 2)
	assert.NotEmpty(t, d.LabelNames())
}

func TestTrivial(t *testing.T) {
	g := buildGraph(t, 3, [][]graph.Vertex{{1, 2}, {2, 3}})
	s := elimination.NewTrivial()
	assert.True(t, s.SafelyInterruptible())

	d, err := s.ComputeDecomposition(context.Background(), strategy.Input{Graph: g})
	require.NoError(t, err)
	assert.Equal(t, 1, d.VertexCount())
	assert.Equal(t, 3, d.Width())
	assert.Len(t, d.InducedHyperedges(d.Root()), 2)

	s.SetComputeInducedEdges(false)
	d, err = s.Clone().ComputeDecomposition(context.Background(), strategy.Input{Graph: g})
	require.NoError(t, err)
	assert.Empty(t, d.InducedHyperedges(d.Root()))

	d, err = s.ComputeDecomposition(context.Background(), strategy.Input{Graph: g, MaxBagSize: 2})
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = s.ComputeDecomposition(context.Background(), strategy.Input{})
	require.ErrorIs(t, err, strategy.ErrNoGraph)
}

func TestParseOrdering(t *testing.T) {
	for _, o := range elimination.Orderings() {
		got, err := elimination.ParseOrdering(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	got, err := elimination.ParseOrdering(" Min-Fill ")
	require.NoError(t, err)
	assert.Equal(t, elimination.MinFill, got)

	_, err = elimination.ParseOrdering("best")
	require.ErrorIs(t, err, elimination.ErrUnknownOrdering)
}
