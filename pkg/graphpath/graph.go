package graphpath

import "github.com/katalvlaran/lvlath/core"

// Graph is a weighted graph over string vertex identifiers, built
// incrementally with AddVertex/AddEdge. It wraps a
// github.com/katalvlaran/lvlath/core.Graph configured for weighted,
// mixed-direction edges rather than reimplementing adjacency storage.
// The zero value is not usable; build one with NewGraph.
type Graph struct {
	core *core.Graph
}

// NewGraph returns an empty graph ready for AddVertex/AddEdge calls.
// The underlying core.Graph is constructed weighted (so ShortestPath
// can carry real edge costs) and with mixed edges (so individual edges
// can override the graph's default undirected-ness, matching this
// package's directed parameter on AddEdge).
func NewGraph() *Graph {
	return &Graph{core: core.NewGraph(core.WithWeighted(), core.WithMixedEdges())}
}

// AddVertex registers id with no outgoing edges if it is not already
// present. Calling AddEdge with an unknown vertex also registers it
// implicitly, so this is only needed to add isolated vertices.
func (g *Graph) AddVertex(id string) {
	_ = g.core.AddVertex(id)
}

// AddEdge adds a weighted edge from -> to. When directed is false the
// edge is also traversable to -> from. Weight must be non-negative;
// ShortestPath rejects negative weights at query time rather than here.
func (g *Graph) AddEdge(from, to string, weight int64, directed bool) {
	if directed {
		_, _ = g.core.AddEdge(from, to, weight, core.WithEdgeDirected(true))
		return
	}
	_, _ = g.core.AddEdge(from, to, weight)
}

// HasVertex reports whether id has been added to the graph.
func (g *Graph) HasVertex(id string) bool {
	return g.core != nil && g.core.HasVertex(id)
}
