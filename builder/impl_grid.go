// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices in row-major order: cell (r,c) is first + r*cols + c.
//   - For each cell emit the Right edge, then the Bottom edge, when present.
//
// Treewidth of a rows×cols grid is min(rows, cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid appends a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		first := g.AddVertices(rows * cols)
		cell := func(r, c int) graph.Vertex { return first + graph.Vertex(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// GridCell returns the vertex of cell (r,c) in a grid built first on an empty graph.
func GridCell(cols, r, c int) graph.Vertex {
	return graph.Vertex(r*cols + c + 1)
}
