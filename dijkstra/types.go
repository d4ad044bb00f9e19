package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvroute/hashmap"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEndpointNotFound indicates that a query's start or end is not a node of the graph.
	ErrEndpointNotFound = errors.New("dijkstra: endpoint not found in graph")

	// ErrNoPath indicates that no directed path connects start to end.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrNegativeWeight indicates that a negative edge weight was met during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxCost indicates that WithMaxCost received a negative or NaN value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures the behavior of an Engine.
//
// FullDrain       – if true, keep relaxing after end is settled.
// MaxCost         – nodes whose cost exceeds MaxCost are never settled. Default +Inf.
// SettledCapacity – initial bucket count of the per-query settled-set.
type Options struct {
	FullDrain       bool
	MaxCost         float64
	SettledCapacity int
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithFullDrain makes single-pair queries exhaust the frontier instead of
// stopping once end is settled. Results are identical either way.
func WithFullDrain() Option {
	return func(o *Options) {
		o.FullDrain = true
	}
}

// WithMaxCost caps exploration: a node is settled only if its cost is ≤ max.
// Destinations beyond the cap report ErrNoPath.
// Panics with ErrBadMaxCost if max is negative or NaN.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithSettledCapacity sets the initial bucket count of the settled-set.
// Panics with hashmap.ErrBadCapacity if n <= 0.
func WithSettledCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(hashmap.ErrBadCapacity.Error())
		}
		o.SettledCapacity = n
	}
}

// DefaultOptions returns Options with no cost cap, early exit enabled,
// and a settled-set sized at hashmap.DefaultCapacity.
func DefaultOptions() Options {
	return Options{
		FullDrain:       false,
		MaxCost:         math.Inf(1),
		SettledCapacity: hashmap.DefaultCapacity,
	}
}

// Path is the result of a single-pair query.
type Path[N any] struct {
	// Nodes lists identifiers from start to end inclusive.
	Nodes []N

	// Cost is the sum of edge weights along Nodes.
	Cost float64
}
