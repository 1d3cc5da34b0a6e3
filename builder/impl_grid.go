// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) constructor.
//
// Model:
//   - Orthogonal grid, 4-neighborhood. Cell (r,c) is the node allocated at
//     position r*cols + c (row-major).
//   - For each cell, emit Right then Bottom where the neighbor exists.
//
// Complexity:
//   - Time O(rows·cols), Space O(rows·cols) for the ID list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walkview/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols grid (each ≥ 1).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := addNodes(g, rows*cols)
		at := func(r, c int) string { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
