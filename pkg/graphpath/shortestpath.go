package graphpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/dijkstra"
)

// Result is the outcome of one ShortestPath query: the cost to reach
// each vertex that was actually reached from the source, and the
// predecessor chain needed to reconstruct a path to it. Unreached
// vertices are absent from both maps.
type Result struct {
	Dist map[string]int64
	Prev map[string]string
}

// Path reconstructs the sequence of vertex ids from the query's source
// to dest by walking Prev backward. Returns ErrNoPath if dest was never
// reached.
func (r *Result) Path(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	var path []string
	for v := dest; v != ""; v = r.Prev[v] {
		path = append([]string{v}, path...)
	}
	return path, nil
}

// ShortestPath computes the minimum-cost path from g using opts
// (WithSource is required). The search itself is delegated to
// github.com/katalvlaran/lvlath/dijkstra.
func ShortestPath(g *Graph, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil || g.core == nil {
		return nil, ErrNilGraph
	}
	if !g.core.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	dist, prev, err := dijkstra.Dijkstra(g.core,
		dijkstra.Source(cfg.Source),
		dijkstra.WithReturnPath(),
		dijkstra.WithMaxDistance(cfg.MaxDistance),
	)
	if err != nil {
		switch {
		case errors.Is(err, dijkstra.ErrNegativeWeight):
			return nil, fmt.Errorf("%w", ErrNegativeWeight)
		case errors.Is(err, dijkstra.ErrVertexNotFound):
			return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
		case errors.Is(err, dijkstra.ErrEmptySource):
			return nil, ErrEmptySource
		case errors.Is(err, dijkstra.ErrNilGraph):
			return nil, ErrNilGraph
		default:
			return nil, err
		}
	}

	// lvlath's Dijkstra reports every vertex in the graph, with
	// math.MaxInt64 standing in for "unreached". This package's Result
	// only ever carried reached vertices, so strip the sentinel entries
	// rather than changing that contract for callers like gen-instances'
	// connectivity check (len(result.Dist) == number of reachable cells).
	result := &Result{Dist: make(map[string]int64), Prev: make(map[string]string)}
	for v, d := range dist {
		if d == math.MaxInt64 {
			continue
		}
		result.Dist[v] = d
		result.Prev[v] = prev[v]
	}
	return result, nil
}
