// Package routes answers campus route questions over a loaded graph file.
//
// A Service owns one immutable graph at a time. Load and LoadReader build a
// fresh graph, and only on success swap it in together with a new
// dijkstra.Engine; queries running during a reload finish on the graph they
// started with. A Watcher reloads the Service when its source file changes.
//
// Queries:
//
//	Locations      all locations, sorted
//	PathLocations  stops on the shortest path
//	PathCost       total travel time of that path
//	PathTimes      per-segment travel times along that path
//	Route          stops, times and total in one run
//	FewestStops    route with the fewest segments, by breadth-first search
//	FurthestFrom   location with the largest shortest-path time
package routes
