package format

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// ErrNilInput is returned when WriteTd gets a nil graph or decomposition.
var ErrNilInput = errors.New("format: graph or decomposition is nil")

// WriteTd writes d as a PACE .td file:
//
//	s td <bags> <max bag size> <graph vertices>
//	b <i> <v>...
//	<i> <j>
//
// Bags are numbered 1..bags in node order; tree edges follow in edge order.
func WriteTd(w io.Writer, g graph.View, d *decomposition.Decomposition) error {
	if g == nil || d == nil {
		return ErrNilInput
	}
	bw := bufio.NewWriter(w)

	nodes := d.Vertices()
	index := make(map[tree.VertexID]int, len(nodes))

	line := make([]byte, 0, 64)
	line = append(line, "s td "...)
	line = strconv.AppendInt(line, int64(len(nodes)), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(d.MaximumBagSize()), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(g.VertexCount()), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return errors.Wrap(err, "format: write header")
	}

	for i, v := range nodes {
		index[v] = i + 1
		line = append(line[:0], "b "...)
		line = strconv.AppendInt(line, int64(i+1), 10)
		for _, x := range d.Bag(v) {
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(x), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "format: write bag %d", i+1)
		}
	}

	for _, e := range d.Edges() {
		line = strconv.AppendInt(line[:0], int64(index[e.Lower]), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(index[e.Higher]), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "format: write edge %d", e.ID)
		}
	}
	return errors.Wrap(bw.Flush(), "format: flush")
}

// WriteWidth writes the maximum bag size of d followed by a newline.
func WriteWidth(w io.Writer, d *decomposition.Decomposition) error {
	if d == nil {
		return ErrNilInput
	}
	_, err := io.WriteString(w, strconv.Itoa(d.MaximumBagSize())+"\n")
	return errors.Wrap(err, "format: write width")
}

// WriteHuman writes d as an indented pre-order listing, two spaces per
// level, one node per line:
//
//	NODE 1: [ 1, 2 ]
//	  NODE 2: [ 2, 3 ]
//
// Node numbers are the decomposition's own vertex ids.
func WriteHuman(w io.Writer, g graph.View, d *decomposition.Decomposition) error {
	if g == nil || d == nil {
		return ErrNilInput
	}
	if d.VertexCount() == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	depth := make(map[tree.VertexID]int, d.VertexCount())
	line := make([]byte, 0, 64)
	for _, v := range d.PreOrder(d.Root()) {
		if p := d.Parent(v); p != tree.None {
			depth[v] = depth[p] + 1
		}
		line = line[:0]
		for i := 0; i < depth[v]; i++ {
			line = append(line, "  "...)
		}
		line = append(line, "NODE "...)
		line = strconv.AppendUint(line, uint64(v), 10)
		line = append(line, ": [ "...)
		for i, x := range d.Bag(v) {
			if i > 0 {
				line = append(line, ", "...)
			}
			line = strconv.AppendUint(line, uint64(x), 10)
		}
		if d.BagSize(v) > 0 {
			line = append(line, ' ')
		}
		line = append(line, "]\n"...)
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "format: write node %d", v)
		}
	}
	return errors.Wrap(bw.Flush(), "format: flush")
}

// ErrNotGraph is returned by WriteGr for hypergraphs.
var ErrNotGraph = errors.New("format: .gr needs edges with exactly two endpoints")

// WriteGr writes g as a .gr file. Every edge must have two endpoints.
func WriteGr(w io.Writer, g graph.View) error {
	if g == nil {
		return ErrNilInput
	}
	for _, e := range g.Hyperedges() {
		if len(e.Vertices) != 2 {
			return errors.Wrapf(ErrNotGraph, "hyperedge %d %v", e.ID, e.Vertices)
		}
	}
	return writeProblem(w, "tw", g)
}

// WriteHgr writes g as a .hgr file with problem kind "htd".
func WriteHgr(w io.Writer, g graph.View) error {
	if g == nil {
		return ErrNilInput
	}
	return writeProblem(w, "htd", g)
}

func writeProblem(w io.Writer, kind string, g graph.View) error {
	bw := bufio.NewWriter(w)
	edges := g.Hyperedges()

	line := make([]byte, 0, 64)
	line = append(line, "p "...)
	line = append(line, kind...)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(g.VertexCount()), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(len(edges)), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return errors.Wrap(err, "format: write problem line")
	}

	for _, e := range edges {
		line = line[:0]
		for i, v := range e.Vertices {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(v), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "format: write edge %d", e.ID)
		}
	}
	return errors.Wrap(bw.Flush(), "format: flush")
}
