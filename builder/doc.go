// Package builder assembles deterministic directed, weighted graph fixtures
// for tests, benchmarks and demos of the shortest-path engine.
//
// The package offers the following key components:
//
//   - Orchestrator: BuildGraph(gopts, bopts, cons...) creates a
//     core.Graph[string, float64] and applies constructors in order.
//   - Topologies (Constructor factories): Path, Cycle, Star, Grid, Complete,
//     RandomSparse. All emit directed edges; Star and Grid emit both arcs of
//     every link.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...), SymbolIDFn
//     ("A".."Z") and ExcelColumnIDFn ("A","Z","AA",...).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Idempotent composition: constructors reuse existing vertices and skip
//     edges that already exist, so Path(5) followed by Cycle(5) yields a cycle.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the method name.
//   - Same options, seed and constructor order produce the same graph.
package builder
