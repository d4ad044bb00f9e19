// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ MinPathNodes; arcs i→i+1 for i in [0..n-2].
//   • Cycle: n ≥ MinCycleNodes; Path arcs plus (n-1)→0.
//   • Vertices via cfg.idFn in ascending index order.

package builder

// Path returns a Constructor for the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor for the directed cycle 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids, err := addVertices(g, cfg, method, n)
	if err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := ensureEdge(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return ensureEdge(g, cfg, method, ids[n-1], ids[0])
	}

	return nil
}
