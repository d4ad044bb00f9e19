// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols) with 4-neighborhood.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim.
//   • Vertex IDs use the fixed scheme "r,c" (row-major), not cfg.idFn.
//   • For each cell emit right then bottom neighbor, each as both arcs
//     (forward first).

package builder

import "fmt"

const gridIDFmt = "%d,%d"

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := ensureVertex(g, methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}

		link := func(a, b string) error {
			if err := ensureEdge(g, cfg, methodGrid, a, b); err != nil {
				return err
			}
			return ensureEdge(g, cfg, methodGrid, b, a)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
