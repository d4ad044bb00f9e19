// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry point and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Graph is the fixture type produced by the builders.
type Graph = core.Graph[string, float64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates a string-keyed graph with gopts, resolves the builder
// configuration from bopts, and applies every constructor in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewStringGraph[float64](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
