package core

import (
	"fmt"

	"github.com/katalvlaran/lvroute/hashmap"
)

// Sentinel errors for core graph operations.
// Each wraps the matching hashmap sentinel so callers may test either level.
var (
	// ErrNilNode indicates a nil node identifier.
	ErrNilNode = fmt.Errorf("core: node id is nil: %w", hashmap.ErrNullKey)

	// ErrDuplicateNode indicates InsertNode on an identifier that already exists.
	ErrDuplicateNode = fmt.Errorf("core: node already exists: %w", hashmap.ErrDuplicateKey)

	// ErrDuplicateEdge indicates InsertEdge on an existing (from,to) pair.
	ErrDuplicateEdge = fmt.Errorf("core: edge already exists: %w", hashmap.ErrDuplicateKey)

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = fmt.Errorf("core: node not found: %w", hashmap.ErrKeyNotFound)

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = fmt.Errorf("core: edge not found: %w", hashmap.ErrKeyNotFound)
)

// Weight is the set of numeric kinds accepted as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge is a read-only snapshot of one directed edge.
type Edge[N any, W Weight] struct {
	// From is the predecessor node identifier.
	From N

	// To is the successor node identifier.
	To N

	// Weight is the cost of traversing the edge.
	Weight W
}

// node is the registry record for one identifier.
// out preserves insertion order; in is unordered.
type node[N any, W Weight] struct {
	id  N
	out []*edge[N, W]
	in  []*edge[N, W]
}

// edge links two node records.
type edge[N any, W Weight] struct {
	from   *node[N, W]
	to     *node[N, W]
	weight W
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithNodeCapacity sets the initial bucket count of the node registry.
// Panics with hashmap.ErrBadCapacity if n <= 0.
func WithNodeCapacity(n int) GraphOption {
	if n <= 0 {
		panic(hashmap.ErrBadCapacity.Error())
	}

	return func(c *graphConfig) { c.capacity = n }
}

// Graph is a directed weighted graph keyed by node identifiers of type N.
//
// nodes maps identifier → node record. edgeCount tracks the number of edges so
// EdgeCount is O(1).
type Graph[N any, W Weight] struct {
	hasher    hashmap.Hasher[N]
	nodes     *hashmap.Map[N, *node[N, W]]
	edgeCount int
}

// NewGraph creates an empty Graph whose node registry hashes identifiers with h.
// Complexity: O(capacity).
func NewGraph[N any, W Weight](h hashmap.Hasher[N], opts ...GraphOption) *Graph[N, W] {
	cfg := graphConfig{capacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, W]{
		hasher: h,
		nodes:  hashmap.New[N, *node[N, W]](h, hashmap.WithCapacity(cfg.capacity)),
	}
}

// NewStringGraph is shorthand for a Graph keyed by strings (xxHash).
func NewStringGraph[W Weight](opts ...GraphOption) *Graph[string, W] {
	return NewGraph[string, W](hashmap.StringHasher{}, opts...)
}

// Hasher returns the identifier hasher so algorithms can build their own
// hashmap.Map keyed by the same identifiers.
func (g *Graph[N, W]) Hasher() hashmap.Hasher[N] { return g.hasher }
