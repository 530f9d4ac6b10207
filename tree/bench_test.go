package tree_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/tree"
)

// BenchmarkTree_AddChildChain measures building a 10,000-vertex path.
func BenchmarkTree_AddChildChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := tree.New()
		v := t.InsertRoot()
		for j := 0; j < 10000; j++ {
			v = t.AddChild(v)
		}
	}
}

// BenchmarkTree_SwapWithParent measures repeated rotations at the bottom of a deep path.
// Each rotation relabels one edge without reordering the edge collection.
func BenchmarkTree_SwapWithParent(b *testing.B) {
	t := tree.New()
	v := t.InsertRoot()
	for j := 0; j < 1000; j++ {
		v = t.AddChild(v)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if t.IsRoot(v) {
			b.StopTimer()
			t.RemoveSubtree(v)
			v = t.InsertRoot()
			for j := 0; j < 1000; j++ {
				v = t.AddChild(v)
			}
			b.StartTimer()
		}
		t.SwapWithParent(v)
	}
}

// BenchmarkTree_RemoveVertexStar measures removing the hub of a 1,000-leaf star.
func BenchmarkTree_RemoveVertexStar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := tree.New()
		root := t.InsertRoot()
		hub := t.AddChild(root)
		for j := 0; j < 1000; j++ {
			t.AddChild(hub)
		}
		b.StartTimer()

		t.RemoveVertex(hub)
	}
}
