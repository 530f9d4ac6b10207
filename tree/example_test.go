package tree_test

import (
	"fmt"

	"github.com/katalvlaran/treewidth/tree"
)

// ExampleTree_RemoveVertex shows how the children of a removed root are reconnected.
func ExampleTree_RemoveVertex() {
	t := tree.New()
	root := t.InsertRoot()
	t.AddChild(root)
	t.AddChild(root)

	t.RemoveVertex(root)

	fmt.Println("vertices:", t.Vertices())
	fmt.Println("root:", t.Root())
	fmt.Println("edges:", t.Edges())
	// Output:
	// vertices: [2 3]
	// root: 2
	// edges: [{3 2 3}]
}

// ExampleTree_SwapWithParent shows the edge relabelled by a rotation.
func ExampleTree_SwapWithParent() {
	t := tree.New()
	g := t.InsertRoot()
	p := t.AddChild(g)
	v := t.AddChild(p)

	t.SwapWithParent(v)

	fmt.Println("parent of v:", t.Parent(v))
	fmt.Println("parent of p:", t.Parent(p))
	fmt.Println("edges:", t.Edges())
	// Output:
	// parent of v: 1
	// parent of p: 3
	// edges: [{2 2 3} {3 1 3}]
}
