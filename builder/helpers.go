// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// helpers.go - idempotent vertex/edge insertion shared by constructors.

package builder

import "fmt"

// methodTag values name constructors in wrapped errors.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Topology minima.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinGridDim    = 1
	MinCompleteN  = 1
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

// builderErrorf formats "<method>: <msg>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// ensureVertex inserts id unless present.
func ensureVertex(g *Graph, method, id string) error {
	if g.ContainsNode(id) {
		return nil
	}
	if err := g.InsertNode(id); err != nil {
		return builderErrorf(method, "InsertNode(%s): %w", id, err)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(g *Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureVertex(g, method, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// ensureEdge inserts from→to with the next configured weight unless the edge exists.
func ensureEdge(g *Graph, cfg builderConfig, method, from, to string) error {
	if g.ContainsEdge(from, to) {
		return nil
	}
	w := cfg.weight()
	if err := g.InsertEdge(from, to, w); err != nil {
		return builderErrorf(method, "InsertEdge(%s→%s, w=%g): %w", from, to, w, err)
	}

	return nil
}

func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}
