// File: v_structures.go
// Role: v-structure (unshielded collider) enumeration.

package causal

import (
	"sort"

	"github.com/katalvlaran/admg/mixed"
)

// VStructure is an unshielded collider: P1 and P2 both point into the
// collider C (as directed parents or bidirected spouses) while P1 and
// P2 are non-adjacent in every layer. P1 < P2 lexicographically.
type VStructure struct {
	P1       string
	Collider string
	P2       string
}

// VStructures enumerates every v-structure of g, sorted by
// (P1, Collider, P2). For each node the candidate pair pool is the
// union of its directed-layer parents and bidirected-layer spouses.
//
// The directed layer must be declared. A missing bidirected layer is
// tolerated: the spouse pool is simply empty, so the function also
// works on purely directed graphs wrapped as mixed graphs.
func VStructures(g *mixed.Graph, opts ...Option) ([]VStructure, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dirLayer, err := requireLayer(g, o.DirectedName)
	if err != nil {
		return nil, err
	}
	bidirLayer, _ := g.Layer(o.BidirectedName)

	seen := make(map[VStructure]struct{})
	for _, node := range g.Nodes() {
		pool := make(map[string]struct{})
		parents, _ := dirLayer.Predecessors(node)
		for _, p := range parents {
			pool[p] = struct{}{}
		}
		if bidirLayer != nil {
			spouses, _ := bidirLayer.Neighbors(node)
			for _, s := range spouses {
				pool[s] = struct{}{}
			}
		}
		delete(pool, node)

		cands := make([]string, 0, len(pool))
		for c := range pool {
			cands = append(cands, c)
		}
		sort.Strings(cands)

		for i := 0; i < len(cands); i++ {
			for j := i + 1; j < len(cands); j++ {
				p1, p2 := cands[i], cands[j]
				if adjacentInAnyLayer(g, p1, p2) {
					continue // shielded triple
				}
				seen[VStructure{P1: p1, Collider: node, P2: p2}] = struct{}{}
			}
		}
	}

	out := make([]VStructure, 0, len(seen))
	for vs := range seen {
		out = append(out, vs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].P1 != out[j].P1 {
			return out[i].P1 < out[j].P1
		}
		if out[i].Collider != out[j].Collider {
			return out[i].Collider < out[j].Collider
		}

		return out[i].P2 < out[j].P2
	})

	return out, nil
}

// adjacentInAnyLayer reports whether u and v are linked, in either
// direction, in at least one layer of g.
func adjacentInAnyLayer(g *mixed.Graph, u, v string) bool {
	for _, layer := range g.Layers() {
		if layer.HasEdge(u, v) || layer.HasEdge(v, u) {
			return true
		}
	}

	return false
}
