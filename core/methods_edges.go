// File: methods_edges.go
// Role: Edge lifecycle & queries, plus the successor traversal primitive used
//       by shortest-path algorithms.
// Determinism:
//   - Successors()/RangeSuccessors() follow edge insertion order for a node.
//   - Edges() follows node bucket order, then per-node insertion order.
package core

import "fmt"

// InsertEdge creates the directed edge from → to with weight w.
//
// Steps:
//  1. Resolve both endpoints; a missing one fails with ErrNodeNotFound naming it.
//  2. Scan from's outgoing list; an existing (from,to) fails with ErrDuplicateEdge.
//  3. Append to from.out and to.in; increment the edge count.
//
// Complexity: O(out(from)).
func (g *Graph[N, W]) InsertEdge(from, to N, w W) error {
	src, err := g.lookup(from)
	if err != nil {
		return fmt.Errorf("predecessor: %w", err)
	}
	dst, err := g.lookup(to)
	if err != nil {
		return fmt.Errorf("successor: %w", err)
	}
	if findEdge(src, dst) != nil {
		return fmt.Errorf("%w: %v→%v", ErrDuplicateEdge, from, to)
	}

	e := &edge[N, W]{from: src, to: dst, weight: w}
	src.out = append(src.out, e)
	dst.in = append(dst.in, e)
	g.edgeCount++

	return nil
}

// SetEdgeWeight overwrites the weight of an existing edge.
// Errors: ErrNodeNotFound, ErrEdgeNotFound.
func (g *Graph[N, W]) SetEdgeWeight(from, to N, w W) error {
	e, err := g.edgeBetween(from, to)
	if err != nil {
		return err
	}
	e.weight = w

	return nil
}

// RemoveEdge deletes the directed edge from → to.
// Errors: ErrNodeNotFound, ErrEdgeNotFound.
// Complexity: O(out(from) + in(to)).
func (g *Graph[N, W]) RemoveEdge(from, to N) error {
	e, err := g.edgeBetween(from, to)
	if err != nil {
		return err
	}
	e.from.out = dropEdge(e.from.out, e)
	e.to.in = dropEdge(e.to.in, e)
	g.edgeCount--

	return nil
}

// ContainsEdge reports whether the directed edge from → to exists.
// Complexity: O(out(from)).
func (g *Graph[N, W]) ContainsEdge(from, to N) bool {
	_, err := g.edgeBetween(from, to)

	return err == nil
}

// GetEdge returns the weight of the directed edge from → to.
// Errors: ErrNodeNotFound, ErrEdgeNotFound.
func (g *Graph[N, W]) GetEdge(from, to N) (W, error) {
	e, err := g.edgeBetween(from, to)
	if err != nil {
		var zero W
		return zero, err
	}

	return e.weight, nil
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph[N, W]) EdgeCount() int { return g.edgeCount }

// RangeSuccessors calls fn for every edge leaving id, in insertion order,
// until fn returns false. fn must not mutate the graph.
// Errors: ErrNilNode, ErrNodeNotFound.
func (g *Graph[N, W]) RangeSuccessors(id N, fn func(to N, w W) bool) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}
	for _, e := range n.out {
		if !fn(e.to.id, e.weight) {
			break
		}
	}

	return nil
}

// Successors returns a copy of the edges leaving id, in insertion order.
func (g *Graph[N, W]) Successors(id N) ([]Edge[N, W], error) {
	n, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	out := make([]Edge[N, W], 0, len(n.out))
	for _, e := range n.out {
		out = append(out, Edge[N, W]{From: n.id, To: e.to.id, Weight: e.weight})
	}

	return out, nil
}

// Edges returns a snapshot of every edge.
// Complexity: O(capacity + V + E).
func (g *Graph[N, W]) Edges() []Edge[N, W] {
	out := make([]Edge[N, W], 0, g.edgeCount)
	g.nodes.Range(func(_ N, n *node[N, W]) bool {
		for _, e := range n.out {
			out = append(out, Edge[N, W]{From: n.id, To: e.to.id, Weight: e.weight})
		}
		return true
	})

	return out
}

// edgeBetween resolves both endpoints and returns the edge record joining them.
func (g *Graph[N, W]) edgeBetween(from, to N) (*edge[N, W], error) {
	src, err := g.lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := g.lookup(to)
	if err != nil {
		return nil, err
	}
	e := findEdge(src, dst)
	if e == nil {
		return nil, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return e, nil
}

// findEdge scans src's outgoing list for an edge into dst.
func findEdge[N any, W Weight](src, dst *node[N, W]) *edge[N, W] {
	for _, e := range src.out {
		if e.to == dst {
			return e
		}
	}

	return nil
}

// dropEdge removes target from list, preserving the order of the remainder.
func dropEdge[N any, W Weight](list []*edge[N, W], target *edge[N, W]) []*edge[N, W] {
	for i, e := range list {
		if e == target {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}

	return list
}
