// Package dotgraph fills a core.Graph[string, float64] from a graph file.
//
// Two formats are read:
//
//	DOT   digraph campus {
//	          "Union South" -> "Computer Sciences" [seconds=176.0];
//	      }
//
//	YAML  nodes: [Union South, Computer Sciences]
//	      edges:
//	        - {from: Union South, to: Computer Sciences, weight: 176}
//
// DOT is parsed with gonum's DOT grammar; every edge statement adds its
// endpoints (when new) and one directed edge per hop, weighted by the first
// attribute of the statement. Node statements add nodes. Graph, node and edge
// attribute statements are ignored.
//
// Loaders only insert; callers pass a fresh graph to replace a previous load.
package dotgraph
