// File: clone.go
// Role: Cloning and clearing graph instances.
//
// Copy policy (independent-shallow): structural maps and metadata maps
// are freshly allocated on the clone; metadata *values* are shared with
// the original. Mutating the clone's topology or metadata keys never
// affects the original.

package core

// CloneEmpty returns a new Graph with the same directedness and the
// same vertex set (metadata copied one level deep), but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Metadata: copyMeta(v.Metadata)}
		clone.adjacency[id] = make(map[string]*Edge)
		if g.directed {
			clone.inbound[id] = make(map[string]*Edge)
		}
	}

	return clone
}

// Clone returns an independent copy of the Graph: vertices, edges, and
// adjacency, with metadata maps copied one level deep.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for key, e := range g.edges {
		ne := &Edge{From: e.From, To: e.To, Metadata: copyMeta(e.Metadata)}
		clone.edges[key] = ne
		clone.adjacency[e.From][e.To] = ne
		if g.directed {
			clone.inbound[e.To][e.From] = ne
		} else if e.From != e.To {
			clone.adjacency[e.To][e.From] = ne
		}
	}

	return clone
}

// Clear removes all vertices and edges; the directedness flag is kept.
// Complexity: O(1) (map reallocation).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]*Edge)
	g.inbound = make(map[string]map[string]*Edge)
}

// ClearEdges removes all edges while keeping the vertex set intact.
// Complexity: O(V).
func (g *Graph) ClearEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = make(map[string]*Edge)
	for id := range g.vertices {
		g.adjacency[id] = make(map[string]*Edge)
		if g.directed {
			g.inbound[id] = make(map[string]*Edge)
		}
	}
}
