package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/builder"
	"github.com/katalvlaran/treewidth/graph"
)

func TestClassic_Sizes(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(6), 6, 10},
		{"complete", builder.Complete(5), 5, 10},
		{"singleton", builder.Complete(1), 1, 0},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestComposition_DisjointUnion(t *testing.T) {
	g := builder.MustBuild(builder.Path(3), builder.Cycle(3))
	assert.Equal(t, 6, g.VertexCount())
	assert.True(t, g.IsNeighbor(4, 6), "cycle closes on its own vertices")
	assert.False(t, g.IsNeighbor(3, 4))

	g = builder.MustBuild(builder.Grid(2, 3))
	assert.True(t, g.IsNeighbor(builder.GridCell(3, 0, 1), builder.GridCell(3, 1, 1)))
}

func TestValidation(t *testing.T) {
	bad := map[string]struct {
		con  builder.Constructor
		want error
	}{
		"path":        {builder.Path(1), builder.ErrTooFewVertices},
		"cycle":       {builder.Cycle(2), builder.ErrTooFewVertices},
		"wheel":       {builder.Wheel(3), builder.ErrTooFewVertices},
		"grid":        {builder.Grid(0, 3), builder.ErrTooFewVertices},
		"probability": {builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		"no rng":      {builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		"hyper k":     {builder.RandomHypergraph(3, 1, 4), builder.ErrTooFewVertices},
		"hyper rng":   {builder.RandomHypergraph(5, 1, 3), builder.ErrNeedRandSource},
		"nil":         {nil, builder.ErrConstructFailed},
	}
	for name, tc := range bad {
		_, err := builder.BuildGraph(nil, nil, tc.con)
		require.ErrorIs(t, err, tc.want, name)
	}
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandom_Deterministic(t *testing.T) {
	build := func(seed int64) *graph.Graph {
		g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(20, 0.3), builder.RandomHypergraph(10, 8, 3))
		require.NoError(t, err)
		return g
	}
	a, b := build(5), build(5)
	assert.Equal(t, a.Hyperedges(), b.Hyperedges())
	assert.Equal(t, 30, a.VertexCount())

	sizes := map[int]int{}
	for _, e := range a.Hyperedges() {
		sizes[len(e.Vertices)]++
	}
	assert.Equal(t, 8, sizes[3])

	full := builder.MustBuild(builder.RandomSparse(4, 1))
	assert.Equal(t, 6, full.EdgeCount(), "p = 1 needs no random source")
}
