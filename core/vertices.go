// File: vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// AddVertexWithMetadata inserts a vertex if missing and merges md into
// its metadata. Existing keys are overwritten; other keys are kept, so
// repeated calls accumulate metadata the way repeated node additions do.
// Complexity: O(len(md)) amortized.
func (g *Graph) AddVertexWithMetadata(id string, md map[string]any) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.addVertexLocked(id)
	for k, val := range md {
		v.Metadata[k] = val
	}

	return nil
}

// addVertexLocked registers id if absent and returns the live vertex.
// Caller must hold the write lock.
func (g *Graph) addVertexLocked(id string) *Vertex {
	if v, exists := g.vertices[id]; exists {
		return v
	}

	v := &Vertex{ID: id, Metadata: make(map[string]any)}
	g.vertices[id] = v
	g.adjacency[id] = make(map[string]*Edge)
	if g.directed {
		g.inbound[id] = make(map[string]*Edge)
	}

	return v
}

// HasVertex reports whether the vertex exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
// The returned pointer refers to graph-owned state; treat it as
// read-only except for metadata updates by a single writer.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes a vertex and all incident edges.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Unlink every incident edge via the adjacency indexes; the nested
	// maps make each removal O(1). For undirected graphs the mirrored
	// entries in adjacency[id] already cover incoming edges.
	for to := range g.adjacency[id] {
		g.removeEdgeLocked(id, to)
	}
	if g.directed {
		for from := range g.inbound[id] {
			g.removeEdgeLocked(from, id)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)
	delete(g.inbound, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID → *Vertex).
// Vertex pointers refer to live objects; treat them as read-only.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}
