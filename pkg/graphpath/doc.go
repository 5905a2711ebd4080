// Package graphpath provides a precise, general-purpose implementation of
// Dijkstra's shortest-path algorithm on weighted graphs with non-negative
// edge weights, keyed by arbitrary string vertex identifiers. It wraps
// github.com/katalvlaran/lvlath's core.Graph and dijkstra.Dijkstra rather
// than reimplementing adjacency storage and the heap-based search.
//
// Overview:
//
//   - Graph is a weighted, optionally-directed graph over string vertex
//     IDs, built incrementally with AddVertex/AddEdge, backed by a
//     lvlath core.Graph.
//   - ShortestPath computes the minimum-cost path from a single source
//     vertex to every vertex it can reach, using lvlath's dijkstra
//     package.
//   - This package is a standalone utility, independent of the grid/agent
//     value types used elsewhere in this module — it solves a different
//     problem (named-vertex weighted graphs) and is not part of the
//     space-time multi-agent search.
//
// When to use:
//
//   - Preprocessing or validating a grid's connectivity before handing it
//     to a planner (see cmd/mapfcbs's gen-instances command).
//   - Any general shortest-path query over a named-vertex weighted graph
//     unrelated to the timestep-indexed MAPF search.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource: Source vertex ID is empty.
//   - ErrNilGraph: a nil *Graph was passed to ShortestPath.
//   - ErrVertexNotFound: the source vertex does not exist.
//   - ErrNegativeWeight: an edge has a negative weight.
//   - ErrNoPath (from Result.Path): the destination was not reached
//     from the source, including a destination that is not in the graph.
package graphpath
