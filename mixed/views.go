// File: views.go
// Role: Aggregated read views over the layers: adjacency, edge counts,
// flattening, copying.

package mixed

import (
	"github.com/katalvlaran/admg/core"
)

// Adjacency returns, for every registered edge type, the per-node
// neighbor mapping of that layer. The result is keyed by edge type and
// is NOT flattened: callers needing "any neighbor regardless of type"
// union across the per-type maps, or use Adjacencies.
func (g *Graph) Adjacency() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(g.edgeTypes))
	for _, name := range g.edgeTypes {
		out[name] = g.layers[name].AdjacencyMap()
	}

	return out
}

// Adjacencies returns the union of n's neighbors across every layer,
// sorted lexicographically ascending.
// Fails with ErrNoEdgeTypes or ErrNodeNotFound.
func (g *Graph) Adjacencies(n string) ([]string, error) {
	if len(g.edgeTypes) == 0 {
		return nil, ErrNoEdgeTypes
	}
	if !g.HasNode(n) {
		return nil, ErrNodeNotFound
	}

	union := make(map[string]struct{})
	for _, name := range g.edgeTypes {
		nbrs, err := g.layers[name].Neighbors(n)
		if err != nil {
			return nil, err
		}
		for _, nbr := range nbrs {
			union[nbr] = struct{}{}
		}
	}

	return sortedSet(union), nil
}

// EdgeCount returns the number of edges in the named layer, or the sum
// over all layers for EdgeTypeAll. Layers are counted independently: an
// edge present in two layers counts twice.
func (g *Graph) EdgeCount(edgeType string) (int, error) {
	if edgeType == EdgeTypeAll {
		total := 0
		for _, name := range g.edgeTypes {
			total += g.layers[name].EdgeCount()
		}

		return total, nil
	}

	layer, err := g.Layer(edgeType)
	if err != nil {
		return 0, err
	}

	return layer.EdgeCount(), nil
}

// EdgeCountBetween returns the number of edges between u and v in the
// named layer, or summed over all layers for EdgeTypeAll. On directed
// layers only the u→v direction is counted.
func (g *Graph) EdgeCountBetween(u, v, edgeType string) (int, error) {
	if edgeType == EdgeTypeAll {
		total := 0
		for _, name := range g.edgeTypes {
			total += g.layers[name].EdgeCountBetween(u, v)
		}

		return total, nil
	}

	layer, err := g.Layer(edgeType)
	if err != nil {
		return 0, err
	}

	return layer.EdgeCountBetween(u, v), nil
}

// Copy returns an independent mixed graph: each layer cloned per
// core.Clone policy (independent-shallow), name and metadata copied.
func (g *Graph) Copy() *Graph {
	out := NewGraph()
	for _, name := range g.edgeTypes {
		// AddEdgeType cannot fail here: names are unique and non-empty
		// by this graph's own invariant.
		_ = out.AddEdgeType(g.layers[name].Clone(), name)
	}
	out.name = g.name
	for k, v := range g.metadata {
		out.metadata[k] = v
	}

	return out
}

// ToUndirected flattens every layer into one undirected core.Graph:
// edge presence is merged (direction and edge-type identity dropped),
// node and edge metadata copied one level deep. When the same node pair
// is linked in several layers, their edge metadata maps are merged in
// registration order (later layers win on key conflicts).
func (g *Graph) ToUndirected() *core.Graph {
	flat := core.NewGraph()
	for _, n := range g.Nodes() {
		md := map[string]any(nil)
		if v, err := g.first().Vertex(n); err == nil {
			md = v.Metadata
		}
		_ = flat.AddVertexWithMetadata(n, md)
	}
	for _, name := range g.edgeTypes {
		for _, e := range g.layers[name].Edges() {
			_ = flat.AddEdge(e.From, e.To, core.WithEdgeMetadata(e.Metadata))
		}
	}

	return flat
}
