// File: convert.go
// Role: bidirected-edge → unobserved-confounder transformation.

package causal

import (
	"fmt"

	"github.com/katalvlaran/admg/mixed"
)

// ConfounderLabel marks synthetic nodes standing in for latent common
// causes.
const ConfounderLabel = "Unobserved Confounders"

// confounderPrefix prefixes the synthetic node names U0, U1, ...
const confounderPrefix = "U"

// BidirectedToUnobservedConfounder returns a copy of g in which every
// bidirected edge (a, b) is replaced by a fresh synthetic node carrying
// metadata {label: ConfounderLabel, observed: "no"}, two directed edges
// from that node to a and to b, and removal of the bidirected edge.
//
// Synthetic nodes are named U0, U1, ... over the bidirected edges in
// lexicographic endpoint-pair order; indexes that would collide with an
// existing node ID are skipped. The transformation is therefore
// deterministic for a given graph and never clashes with caller nodes.
//
// The input graph is never mutated. Both the directed and bidirected
// layers must be declared; a nil graph fails with ErrNilGraph.
func BidirectedToUnobservedConfounder(g *mixed.Graph, opts ...Option) (*mixed.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err = requireLayer(g, o.DirectedName); err != nil {
		return nil, err
	}
	if _, err = requireLayer(g, o.BidirectedName); err != nil {
		return nil, err
	}

	out := g.Copy()
	bidirLayer, err := out.Layer(o.BidirectedName)
	if err != nil {
		return nil, err
	}

	idx := 0
	// Edges() enumerates undirected edges in canonical sorted
	// endpoint-pair order, which pins the U<i> assignment.
	for _, e := range bidirLayer.Edges() {
		name := nextConfounderName(out, &idx)
		if err = out.AddNodeWithMetadata(name, map[string]any{
			"label":    ConfounderLabel,
			"observed": "no",
		}); err != nil {
			return nil, err
		}
		if err = out.AddEdge(name, e.From, o.DirectedName); err != nil {
			return nil, err
		}
		if err = out.AddEdge(name, e.To, o.DirectedName); err != nil {
			return nil, err
		}
		if err = out.RemoveEdge(e.From, e.To, o.BidirectedName); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// nextConfounderName returns the first U<idx> not already present in g,
// advancing *idx past the returned index.
func nextConfounderName(g *mixed.Graph, idx *int) string {
	for {
		name := fmt.Sprintf("%s%d", confounderPrefix, *idx)
		*idx++
		if !g.HasNode(name) {
			return name
		}
	}
}
