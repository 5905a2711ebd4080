package graphpath

import "errors"

// Sentinel errors returned by ShortestPath and, for ErrNoPath, by
// Result.Path.
var (
	ErrEmptySource    = errors.New("graphpath: source vertex ID is empty")
	ErrNilGraph       = errors.New("graphpath: graph is nil")
	ErrVertexNotFound = errors.New("graphpath: vertex not found in graph")
	ErrNegativeWeight = errors.New("graphpath: negative edge weight encountered")
	ErrNoPath         = errors.New("graphpath: destination is unreachable from source")
)
