// Package core provides Graph, the directed weighted node/edge store that the
// dijkstra engine queries.
//
// The Graph G = (V,E) is generic over the node identifier N and the edge weight W:
//
//   - N is any type with a hashmap.Hasher[N]; nodes live in a hashmap.Map
//     (N → node record), so membership checks are expected O(1).
//   - W is any integer or floating-point kind (Weight); algorithms convert it to
//     float64 when accumulating path cost.
//   - Every node owns its ordered outgoing edge list and an incoming edge list;
//     the latter makes cascading RemoveNode cost O(deg(v)) instead of O(V+E).
//
// Invariants:
//
//   - Node identifiers are unique: a second InsertNode(id) fails with ErrDuplicateNode.
//   - An edge is identified by the ordered pair (from, to). Both endpoints must
//     already be nodes. Re-inserting an existing pair fails with ErrDuplicateEdge;
//     SetEdgeWeight is the explicit overwrite.
//   - Removing a node removes every edge that references it, in both directions.
//   - Self-loops are permitted.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(id N) error                   // O(1) expected
//	RemoveNode(id N) error                   // O(deg(v)·d) where d is neighbor degree
//	ContainsNode(id N) bool                  // O(1) expected
//	AllNodes() []N                           // O(V), registry bucket order
//
//	// Edge lifecycle
//	InsertEdge(from, to N, w W) error        // O(out(from))
//	SetEdgeWeight(from, to N, w W) error     // O(out(from))
//	RemoveEdge(from, to N) error             // O(out(from) + in(to))
//	ContainsEdge(from, to N) bool            // O(out(from)) linear scan
//	GetEdge(from, to N) (W, error)           // O(out(from))
//
//	// Traversal & counts
//	RangeSuccessors(id N, fn) error          // O(out(id)), no allocation
//	Successors(id N) ([]Edge[N, W], error)   // O(out(id)) copy
//	Edges() []Edge[N, W]                     // O(V+E)
//	NodeCount() int, EdgeCount() int         // O(1)
//
// Errors:
//
//	ErrNilNode       – node id is nil (wraps hashmap.ErrNullKey)
//	ErrDuplicateNode – node already present (wraps hashmap.ErrDuplicateKey)
//	ErrDuplicateEdge – (from,to) edge already present (wraps hashmap.ErrDuplicateKey)
//	ErrNodeNotFound  – missing node (wraps hashmap.ErrKeyNotFound)
//	ErrEdgeNotFound  – missing edge (wraps hashmap.ErrKeyNotFound)
//
// Concurrency:
//
//	Graph carries no locks. Mutations must be serialized by the caller; any
//	number of goroutines may read (and run shortest-path queries) while no
//	goroutine mutates. The intended pattern is load once, query many.
package core
