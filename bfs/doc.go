// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edge distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing edge count from a start node.
//   - Edge weights are ignored; every edge counts as one hop.
//   - Returns a Result with the visit Order plus Depth and PathTo lookups.
//   - Hooks: OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual edges.
//   - WithMaxDepth caps the number of hops (d>0) or disables the cap (d==0).
//   - WithContext cancels long traversals.
//
// Determinism
//
//	core.Graph yields successors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is reproducible for a given build order.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
