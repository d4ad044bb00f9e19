// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_complete.go - Complete(n) and RandomSparse(n, p).
//
// Both iterate ordered pairs (i, j), i asc then j asc, never i == j.
// RandomSparse keeps each pair with probability p; it needs an RNG unless
// p is 0 or 1.

package builder

import "fmt"

// Complete returns a Constructor for the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteN); err != nil {
			return err
		}

		return pairs(g, cfg, methodComplete, n, func() bool { return true })
	}
}

// RandomSparse returns a Constructor sampling each ordered pair independently
// with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		keep := func() bool {
			switch {
			case p == 0:
				return false
			case p == 1:
				return true
			}
			return cfg.rng.Float64() < p
		}

		return pairs(g, cfg, methodRandomSparse, n, keep)
	}
}

func pairs(g *Graph, cfg builderConfig, method string, n int, keep func() bool) error {
	ids, err := addVertices(g, cfg, method, n)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !keep() {
				continue
			}
			if err := ensureEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
