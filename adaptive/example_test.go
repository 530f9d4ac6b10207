package adaptive_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treewidth/adaptive"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/logging"
)

// ExampleController shows a run on the path 1-2-3 with a single strategy
// that always puts every vertex in one bag.
func ExampleController() {
	g := graph.NewGraph()
	g.AddVertices(3)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)

	c := adaptive.New(adaptive.WithLogger(logging.Discard()))
	c.Register(elimination.NewTrivial(), nil)

	d, err := c.Decompose(context.Background(), g, nil,
		func(_ graph.View, d *decomposition.Decomposition, f decomposition.Fitness) {
			fmt.Println("improved:", f)
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", d.VertexCount(), "edges:", d.EdgeCount(), "width:", d.Width())
	// Output:
	// improved: -3 @ 0
	// nodes: 1 edges: 0 width: 3
}
