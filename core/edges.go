// File: edges.go
// Role: Edge lifecycle, adjacency queries, degree.
//
// Determinism:
//   - Edges() is sorted by (From, To) ascending.
//   - Neighbors/Predecessors/Successors return IDs sorted lex ascending.

package core

import "sort"

// AddEdge inserts an edge between from and to, creating missing
// endpoints on the fly. Re-adding an existing edge is not an error:
// the edge is kept and any WithEdgeMetadata options are merged into it,
// so duplicate additions only update metadata.
// Returns ErrEmptyVertexID on empty endpoints.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	key := g.edgeKey(from, to)
	e, exists := g.edges[key]
	if !exists {
		cf, ct := from, to
		if !g.directed && ct < cf {
			cf, ct = ct, cf // canonical endpoint order for undirected edges
		}
		e = &Edge{From: cf, To: ct, Metadata: make(map[string]any)}
		g.edges[key] = e
		g.adjacency[from][to] = e
		if g.directed {
			g.inbound[to][from] = e
		} else if from != to {
			g.adjacency[to][from] = e
		}
	}
	for _, opt := range opts {
		opt(e)
	}

	return nil
}

// HasEdge reports whether an edge from→to exists. On undirected graphs
// the endpoint order is irrelevant. Empty endpoints ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[g.edgeKey(from, to)]

	return ok
}

// Edge returns the live edge record for the (from, to) pair.
// Returns ErrEmptyVertexID or ErrEdgeNotFound.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[g.edgeKey(from, to)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// RemoveEdge deletes the edge between from and to.
// Returns ErrEdgeNotFound if no such edge exists; this "fail on
// missing" policy is what every layer of a mixed graph shares.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.removeEdgeLocked(from, to) {
		return ErrEdgeNotFound
	}

	return nil
}

// removeEdgeLocked unlinks the edge from the catalog and all adjacency
// indexes, reporting whether it existed. Caller must hold the write lock.
func (g *Graph) removeEdgeLocked(from, to string) bool {
	key := g.edgeKey(from, to)
	if _, ok := g.edges[key]; !ok {
		return false
	}

	delete(g.edges, key)
	delete(g.adjacency[from], to)
	if g.directed {
		delete(g.inbound[to], from)
	} else if from != to {
		delete(g.adjacency[to], from)
	}

	return true
}

// Edges returns all edges sorted by (From, To). Undirected edges appear
// once, in canonical (smaller endpoint first) form.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeCountBetween returns the number of edges between from and to
// (0 or 1; the graph is not a multigraph). On directed graphs only the
// from→to direction is counted.
func (g *Graph) EdgeCountBetween(from, to string) int {
	if g.HasEdge(from, to) {
		return 1
	}

	return 0
}

// Neighbors returns the IDs adjacent to id, sorted lex ascending.
// On directed graphs this is the out-neighborhood (same contract as
// Successors); on undirected graphs it is the full neighborhood.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.adjacency[id]), nil
}

// Successors returns the out-neighbors of id on directed graphs; on
// undirected graphs it is identical to Neighbors.
func (g *Graph) Successors(id string) ([]string, error) {
	return g.Neighbors(id)
}

// Predecessors returns the in-neighbors of id on directed graphs; on
// undirected graphs it is identical to Neighbors.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	if !g.directed {
		return sortedKeys(g.adjacency[id]), nil
	}

	return sortedKeys(g.inbound[id]), nil
}

// OutDegree returns the number of outgoing edges of id (directed), or
// the number of distinct neighbors (undirected).
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// InDegree returns the number of incoming edges of id (directed), or
// the number of distinct neighbors (undirected).
func (g *Graph) InDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.adjacency[id]), nil
	}

	return len(g.inbound[id]), nil
}

// Degree returns the classic degree of id: in + out on directed graphs,
// incident edge count with self-loops counted twice on undirected ones.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	if g.directed {
		return len(g.adjacency[id]) + len(g.inbound[id]), nil
	}

	d := len(g.adjacency[id])
	if _, loop := g.adjacency[id][id]; loop {
		d++
	}

	return d, nil
}

// AdjacencyMap returns a snapshot mapping every vertex to its sorted
// neighbor list (out-neighbors on directed graphs). Isolated vertices
// map to an empty slice. The snapshot is freshly allocated and safe to
// retain.
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyMap() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedKeys(g.adjacency[id])
	}

	return out
}

// sortedKeys copies the keys of m into a sorted slice.
func sortedKeys(m map[string]*Edge) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
