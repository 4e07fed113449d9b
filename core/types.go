// Package core defines the single-edge-type Graph primitive used by the
// mixed-edge layers: vertices and edges with arbitrary metadata, one
// directedness per graph, deterministic enumeration surfaces, and the
// connectivity utilities (connected components, union-find) that the
// causal algorithms build on.
//
// All mutating and querying methods are guarded by a per-graph
// sync.RWMutex, so a single Graph can be shared across goroutines.
// Cross-graph atomicity (e.g. keeping several layers in lock-step) is
// the caller's responsibility.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNilGraph       - a nil *Graph was passed where a graph is required.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph indicates a nil graph pointer was passed.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data; Clone copies the map itself
// but shares the stored values (independent-shallow copy).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]any
}

// IsNil reports whether the receiver is nil; safe on typed-nil values
// stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a connection between two vertices.
//
// Whether the pair (From, To) is ordered is a property of the owning
// Graph, not of the edge: every edge of a directed graph is directed,
// every edge of an undirected graph is not. Undirected edges are stored
// with From <= To so that Edges() enumerates a stable canonical form.
type Edge struct {
	// From is the source vertex ID (the lexicographically smaller
	// endpoint on undirected graphs).
	From string

	// To is the destination vertex ID.
	To string

	// Metadata stores arbitrary user data attached to the edge.
	Metadata map[string]any
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are ordered pairs
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeMetadata merges the given key/value pairs into the edge's
// metadata. Re-adding an existing edge with this option updates its
// metadata in place, mirroring the merge semantics of vertex metadata.
func WithEdgeMetadata(md map[string]any) EdgeOption {
	return func(e *Edge) {
		for k, v := range md {
			e.Metadata[k] = v
		}
	}
}

// Graph is the single-edge-type in-memory graph.
//
// Storage:
//   - vertices:  vertex ID → *Vertex
//   - edges:     canonical pair key → *Edge (one entry per edge)
//   - adjacency: adjacency[from][to] → *Edge; mirrored both ways for
//     undirected graphs (self-loops appear once)
//   - inbound:   inbound[to][from] → *Edge; maintained for directed
//     graphs so Predecessors/InDegree are O(deg) instead of O(E)
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertices  map[string]*Vertex
	edges     map[string]*Edge
	adjacency map[string]map[string]*Edge
	inbound   map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// pass WithDirected(true) for ordered edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]*Edge),
		inbound:   make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDiGraph is shorthand for NewGraph(WithDirected(true)).
func NewDiGraph() *Graph { return NewGraph(WithDirected(true)) }

// Directed reports whether edges of this graph are ordered pairs.
func (g *Graph) Directed() bool { return g.directed }

// edgeKeySep never appears in user-supplied vertex IDs that also work
// as map keys elsewhere; NUL keeps the composite key unambiguous.
const edgeKeySep = "\x00"

// edgeKey returns the catalog key for the (from, to) pair, canonicalized
// to the sorted endpoint order on undirected graphs.
func (g *Graph) edgeKey(from, to string) string {
	if !g.directed && to < from {
		from, to = to, from
	}

	return from + edgeKeySep + to
}

// copyMeta returns a fresh map holding the same key/value pairs.
// Values are shared (independent-shallow copy).
func copyMeta(md map[string]any) map[string]any {
	out := make(map[string]any, len(md))
	for k, v := range md {
		out[k] = v
	}

	return out
}
