// Package lvroute is an in-memory campus route planner: a directed, weighted
// graph of named locations queried for shortest walking routes and for the
// furthest reachable destination.
//
// What is inside?
//
//	hashmap/      generic separate-chaining KeyedMap with pluggable hashers
//	core/         GraphStore: nodes and weighted directed edges on top of hashmap
//	dijkstra/     ShortestPathEngine: single-pair queries and single-source trees
//	bfs/          breadth-first search for fewest-stop routes
//	builder/      deterministic graph fixtures (path, cycle, star, grid, complete, random)
//	dotgraph/     DOT and YAML graph file loaders
//	routes/       query service with atomic graph swaps and fsnotify hot reload
//	web/          HTML fragments, JSON API and HTTP server (gorilla/mux)
//	config/       koanf configuration: defaults, TOML file, LVROUTE_ env, flags
//	logging/      slog setup, compact handler and request-id middleware
//	metrics/      Prometheus collectors for queries and reloads
//	cmd/lvroute/  the server binary
//
// Quick start:
//
//	go run ./cmd/lvroute --graph campus.dot --addr :8080
//	curl 'localhost:8080/api/path?start=Memorial+Union&end=Computer+Sciences'
//
// Graph model:
//
//   - Node identifiers are unique; inserting one twice is an error.
//   - At most one edge per ordered pair; weights must be non-negative.
//   - Self-loops are stored but never shorten a path.
package lvroute
