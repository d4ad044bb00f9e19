// Package dijkstra answers "cheapest path" queries over a core.Graph using
// Dijkstra's algorithm with non-negative edge weights.
//
// Overview:
//
//   - Engine.ShortestPathData(start, end) returns the node sequence start→…→end.
//   - Engine.ShortestPathCost(start, end) returns the accumulated float64 weight.
//   - Engine.Tree(start) settles every reachable node once, so many destination
//     queries from the same start cost a single run.
//
// Algorithm (per query):
//
//  1. Validate: start and end must be nodes (ErrEndpointNotFound).
//  2. Initialize: seed a min-heap frontier with a search node for start at cost 0
//     and no predecessor; create an empty settled-set (a hashmap.Map keyed by
//     the graph's own node hasher).
//  3. Relax loop: pop the cheapest search node; skip it if its node is already
//     settled (stale entry); settle it; record it if it is end; push a new
//     search node for every unsettled successor at cost+weight.
//  4. Extract: if end was never settled fail with ErrNoPath, otherwise follow
//     predecessor links back to start and reverse.
//
// Search nodes live in a per-query arena slice and refer to their predecessor
// by index, so all search state is released together when the query returns.
// Duplicate frontier entries for one node are expected ("lazy decrease-key");
// only the first pop, which is the cheapest, is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log E); at most one heap push per relaxed edge.
//   - Space: O(V + E) for the arena, frontier and settled-set.
//
// Options:
//
//   - WithFullDrain():          keep relaxing after end settles (same result, more work).
//   - WithMaxCost(c):           never settle nodes whose cost exceeds c.
//   - WithSettledCapacity(n):   initial bucket count of the settled-set.
//
// Ties between equal-cost frontier entries are broken by container/heap order
// and must not be relied upon; the cost is always minimal.
//
// Errors (sentinel):
//
//   - ErrNilGraph          New received a nil graph.
//   - ErrEndpointNotFound  start or end is not a node.
//   - ErrNoPath            both endpoints exist but end is unreachable.
//   - ErrNegativeWeight    a relaxed edge carried a negative weight.
//   - ErrBadMaxCost        WithMaxCost received a negative or NaN value (panics).
//
// Thread safety:
//
//   - An Engine never mutates its graph and keeps no per-query state, so
//     concurrent queries are safe while nobody mutates the graph.
package dijkstra
