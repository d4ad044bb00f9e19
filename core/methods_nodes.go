// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - AllNodes() follows the registry's bucket order. It is stable for a fixed
//     sequence of mutations but is NOT insertion order.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/hashmap"
)

// InsertNode adds a node with the given identifier.
//
// Implementation:
//   - Stage 1: Allocate a node record with empty edge lists.
//   - Stage 2: Register it in the node map; translate map sentinels to graph sentinels.
//
// Behavior highlights:
//   - Not idempotent: a second insert of the same id fails and leaves the
//     existing node and its edges untouched. Loaders guard with ContainsNode.
//
// Errors:
//   - ErrNilNode: id is nil.
//   - ErrDuplicateNode: id already present.
//
// Complexity:
//   - Time O(1) expected, amortized over registry resizes.
func (g *Graph[N, W]) InsertNode(id N) error {
	err := g.nodes.Put(id, &node[N, W]{id: id})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hashmap.ErrNullKey):
		return ErrNilNode
	case errors.Is(err, hashmap.ErrDuplicateKey):
		return fmt.Errorf("%w: %v", ErrDuplicateNode, id)
	default:
		return err
	}
}

// RemoveNode deletes a node and every edge in which it is predecessor or successor.
//
// Implementation:
//   - Stage 1: Look up the record (ErrNodeNotFound).
//   - Stage 2: Detach each outgoing edge from its successor's incoming list.
//   - Stage 3: Detach each incoming edge from its predecessor's outgoing list.
//   - Stage 4: Drop the record from the registry and adjust the edge count.
//
// Behavior highlights:
//   - A self-loop sits in both lists of the removed node; it is counted once.
//
// Complexity:
//   - Time O(Σ deg(neighbor)) for list compaction.
func (g *Graph[N, W]) RemoveNode(id N) error {
	n, err := g.lookup(id)
	if err != nil {
		return err
	}

	removed := len(n.out)
	for _, e := range n.out {
		if e.to != n {
			e.to.in = dropEdge(e.to.in, e)
		}
	}
	for _, e := range n.in {
		if e.from != n {
			e.from.out = dropEdge(e.from.out, e)
			removed++
		}
	}
	n.out, n.in = nil, nil

	if _, err = g.nodes.Remove(id); err != nil {
		return err
	}
	g.edgeCount -= removed

	return nil
}

// ContainsNode reports whether id is a node of the graph. A nil id is never present.
// Complexity: O(1) expected.
func (g *Graph[N, W]) ContainsNode(id N) bool {
	return g.nodes.ContainsKey(id)
}

// AllNodes returns every node identifier in registry bucket order.
// Complexity: O(capacity + V).
func (g *Graph[N, W]) AllNodes() []N {
	return g.nodes.Keys()
}

// NodeCount returns the number of nodes.
func (g *Graph[N, W]) NodeCount() int { return g.nodes.Size() }

// OutDegree returns the number of edges leaving id.
func (g *Graph[N, W]) OutDegree(id N) (int, error) {
	n, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return len(n.out), nil
}

// InDegree returns the number of edges entering id.
func (g *Graph[N, W]) InDegree(id N) (int, error) {
	n, err := g.lookup(id)
	if err != nil {
		return 0, err
	}

	return len(n.in), nil
}

// Clear removes every node and edge. Registry capacity is kept.
func (g *Graph[N, W]) Clear() {
	g.nodes.Clear()
	g.edgeCount = 0
}

// lookup fetches the node record for id, mapping map errors to graph sentinels.
func (g *Graph[N, W]) lookup(id N) (*node[N, W], error) {
	n, err := g.nodes.Get(id)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, hashmap.ErrNullKey):
		return nil, ErrNilNode
	default:
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
}
