// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go - Star(n): hub CenterVertexID with n-1 leaves.
//
// Contract:
//   • n ≥ MinStarNodes.
//   • Leaves are cfg.idFn(0..n-2); for each leaf, emit Center→leaf then leaf→Center.

package builder

// Star returns a Constructor for a bidirectional star.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := ensureVertex(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		leaves, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := ensureEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
			if err := ensureEdge(g, cfg, methodStar, leaf, CenterVertexID); err != nil {
				return err
			}
		}

		return nil
	}
}
