// File: graph.go
// Role: Graph type, construction, layer registry, node and edge
// operations. Aggregated read views live in views.go.

package mixed

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/admg/core"
)

// EdgeTypeAll selects every layer where an edge type is expected; see
// EdgeCount and EdgeCountBetween. Layer lookup of individual graphs
// uses Layers() instead.
const EdgeTypeAll = "all"

// Sentinel errors for mixed-edge graph operations.
var (
	// ErrLayerCountMismatch indicates len(graphs) != len(edgeTypes) at construction.
	ErrLayerCountMismatch = errors.New("mixed: number of graphs must match number of edge types")

	// ErrNilLayer indicates a nil *core.Graph supplied as a layer.
	ErrNilLayer = errors.New("mixed: layer graph must be non-nil")

	// ErrEmptyEdgeType indicates an empty string used as an edge type name.
	ErrEmptyEdgeType = errors.New("mixed: edge type name is empty")

	// ErrDuplicateEdgeType indicates an edge type name registered twice.
	ErrDuplicateEdgeType = errors.New("mixed: edge type already registered")

	// ErrUnknownEdgeType indicates an operation named an unregistered edge type.
	ErrUnknownEdgeType = errors.New("mixed: unknown edge type")

	// ErrNoEdgeTypes indicates a node or edge operation on a graph with no layers.
	ErrNoEdgeTypes = errors.New("mixed: no edge type is defined")

	// ErrNodeNotFound indicates a removal referenced a node that does not exist.
	ErrNodeNotFound = errors.New("mixed: node not found")
)

// Graph is a mixed-edge graph: an ordered collection of named
// single-edge-type layers over a shared node set, plus graph-level
// name and metadata.
type Graph struct {
	edgeTypes []string               // registration order
	layers    map[string]*core.Graph // edge type → layer

	name     string
	metadata map[string]any
}

// NewGraph creates an empty mixed graph with no layers. Layers are
// registered with AddEdgeType; node and edge operations fail with
// ErrNoEdgeTypes until at least one layer exists.
func NewGraph() *Graph {
	return &Graph{
		layers:   make(map[string]*core.Graph),
		metadata: make(map[string]any),
	}
}

// NewGraphFrom creates a mixed graph from the given layers and matching
// edge type names. The node sets of all layers are unified: any node
// present in one layer is added to every other, so the shared-node-set
// invariant holds from construction onward.
//
// Fails with ErrLayerCountMismatch, ErrNilLayer, ErrEmptyEdgeType or
// ErrDuplicateEdgeType; no partial graph is returned on failure.
func NewGraphFrom(graphs []*core.Graph, edgeTypes []string) (*Graph, error) {
	if len(graphs) != len(edgeTypes) {
		return nil, fmt.Errorf("%w: %d graphs, %d edge types",
			ErrLayerCountMismatch, len(graphs), len(edgeTypes))
	}

	g := NewGraph()
	for i, layer := range graphs {
		if err := g.AddEdgeType(layer, edgeTypes[i]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddEdgeType registers layer under the given edge type name. The new
// layer is synchronized with the current node set in both directions:
// its nodes are added to every existing layer and vice versa.
// Fails with ErrNilLayer, ErrEmptyEdgeType or ErrDuplicateEdgeType.
func (g *Graph) AddEdgeType(layer *core.Graph, edgeType string) error {
	if layer == nil {
		return ErrNilLayer
	}
	if edgeType == "" {
		return ErrEmptyEdgeType
	}
	if _, exists := g.layers[edgeType]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEdgeType, edgeType)
	}

	// Unify node sets before the layer becomes visible.
	for _, n := range g.Nodes() {
		_ = layer.AddVertex(n)
	}
	for _, n := range layer.Vertices() {
		for _, name := range g.edgeTypes {
			_ = g.layers[name].AddVertex(n)
		}
	}

	g.edgeTypes = append(g.edgeTypes, edgeType)
	g.layers[edgeType] = layer

	return nil
}

// EdgeTypes returns the registered edge type names in registration order.
func (g *Graph) EdgeTypes() []string {
	out := make([]string, len(g.edgeTypes))
	copy(out, g.edgeTypes)

	return out
}

// HasEdgeType reports whether the edge type name is registered.
func (g *Graph) HasEdgeType(edgeType string) bool {
	_, ok := g.layers[edgeType]

	return ok
}

// Layer returns the single-edge-type graph registered under edgeType.
// The error names both the offender and the registered types.
// Use Layers() for the "all" selector.
func (g *Graph) Layer(edgeType string) (*core.Graph, error) {
	layer, ok := g.layers[edgeType]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)",
			ErrUnknownEdgeType, edgeType, g.edgeTypes)
	}

	return layer, nil
}

// Layers returns every layer in registration order.
func (g *Graph) Layers() []*core.Graph {
	out := make([]*core.Graph, 0, len(g.edgeTypes))
	for _, name := range g.edgeTypes {
		out = append(out, g.layers[name])
	}

	return out
}

// first returns a representative layer; the shared-node-set invariant
// makes any one layer authoritative for node membership.
func (g *Graph) first() *core.Graph {
	if len(g.edgeTypes) == 0 {
		return nil
	}

	return g.layers[g.edgeTypes[0]]
}

// AddNode adds the node to every layer (idempotent).
// Fails with ErrNoEdgeTypes on a layer-less graph, or
// core.ErrEmptyVertexID for an empty ID; validation happens before any
// layer is touched.
func (g *Graph) AddNode(id string) error {
	return g.AddNodeWithMetadata(id, nil)
}

// AddNodeWithMetadata adds the node to every layer and merges md into
// its metadata on each layer.
func (g *Graph) AddNodeWithMetadata(id string, md map[string]any) error {
	if len(g.edgeTypes) == 0 {
		return ErrNoEdgeTypes
	}
	if id == "" {
		return core.ErrEmptyVertexID
	}

	for _, name := range g.edgeTypes {
		if err := g.layers[name].AddVertexWithMetadata(id, md); err != nil {
			return err
		}
	}

	return nil
}

// AddNodesFrom adds every given node to every layer.
func (g *Graph) AddNodesFrom(ids []string) error {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			return err
		}
	}

	return nil
}

// RemoveNode removes the node (and its incident edges) from every
// layer. The membership check runs before any layer is mutated, so a
// failed removal leaves the graph untouched.
// Fails with ErrNodeNotFound (wrapping the offending ID) or ErrNoEdgeTypes.
func (g *Graph) RemoveNode(id string) error {
	if len(g.edgeTypes) == 0 {
		return ErrNoEdgeTypes
	}
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	for _, name := range g.edgeTypes {
		if err := g.layers[name].RemoveVertex(id); err != nil {
			return err
		}
	}

	return nil
}

// RemoveNodesFrom removes all given nodes. Every node is validated
// before the first removal (all-or-nothing across the batch).
func (g *Graph) RemoveNodesFrom(ids []string) error {
	if len(g.edgeTypes) == 0 {
		return ErrNoEdgeTypes
	}
	for _, id := range ids {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	for _, id := range ids {
		if err := g.RemoveNode(id); err != nil {
			return err
		}
	}

	return nil
}

// HasNode reports whether the node exists (in every layer, by the
// shared-node-set invariant).
func (g *Graph) HasNode(id string) bool {
	first := g.first()
	if first == nil {
		return false
	}

	return first.HasVertex(id)
}

// Nodes returns all node IDs sorted lexicographically ascending.
func (g *Graph) Nodes() []string {
	first := g.first()
	if first == nil {
		return nil
	}

	return first.Vertices()
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	first := g.first()
	if first == nil {
		return 0
	}

	return first.VertexCount()
}

// Order returns the number of nodes; identical to NodeCount.
func (g *Graph) Order() int { return g.NodeCount() }

// HasEdge reports whether the edge (u, v) exists in the named layer.
// Fails with ErrUnknownEdgeType for an unregistered name.
func (g *Graph) HasEdge(u, v, edgeType string) (bool, error) {
	layer, err := g.Layer(edgeType)
	if err != nil {
		return false, err
	}

	return layer.HasEdge(u, v), nil
}

// AddEdge adds the edge (u, v) to the named layer. Missing endpoints
// are bootstrapped in every layer first, preserving the shared-node-set
// invariant. Edge metadata options apply to the target layer's edge.
func (g *Graph) AddEdge(u, v, edgeType string, opts ...core.EdgeOption) error {
	layer, err := g.Layer(edgeType)
	if err != nil {
		return err
	}
	if err = g.AddNode(u); err != nil {
		return err
	}
	if err = g.AddNode(v); err != nil {
		return err
	}

	return layer.AddEdge(u, v, opts...)
}

// AddEdgesFrom adds every (u, v) pair to the named layer; options apply
// to each added edge.
func (g *Graph) AddEdgesFrom(edges [][2]string, edgeType string, opts ...core.EdgeOption) error {
	if _, err := g.Layer(edgeType); err != nil {
		return err
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], edgeType, opts...); err != nil {
			return err
		}
	}

	return nil
}

// RemoveEdge removes the edge (u, v) from the named layer.
// A missing edge fails with core.ErrEdgeNotFound, the deletion policy
// every layer shares.
func (g *Graph) RemoveEdge(u, v, edgeType string) error {
	layer, err := g.Layer(edgeType)
	if err != nil {
		return err
	}

	return layer.RemoveEdge(u, v)
}

// RemoveEdgesFrom removes every (u, v) pair from the named layer.
// Unlike RemoveEdge, pairs that do not exist are skipped silently.
func (g *Graph) RemoveEdgesFrom(edges [][2]string, edgeType string) error {
	layer, err := g.Layer(edgeType)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if err = layer.RemoveEdge(e[0], e[1]); err != nil && !errors.Is(err, core.ErrEdgeNotFound) {
			return err
		}
	}

	return nil
}

// Clear removes all nodes and edges from every layer; the layer
// registry, name and metadata are kept.
func (g *Graph) Clear() {
	for _, name := range g.edgeTypes {
		g.layers[name].Clear()
	}
}

// ClearEdges removes all edges from every layer; nodes are kept.
func (g *Graph) ClearEdges() {
	for _, name := range g.edgeTypes {
		g.layers[name].ClearEdges()
	}
}

// IsDirected reports whether at least one layer has ordered edges.
func (g *Graph) IsDirected() bool {
	for _, name := range g.edgeTypes {
		if g.layers[name].Directed() {
			return true
		}
	}

	return false
}

// IsMultigraph reports whether parallel edges are supported within a
// layer; always false for this design.
func (g *Graph) IsMultigraph() bool { return false }

// Name returns the graph's name attribute ("" if unset).
func (g *Graph) Name() string { return g.name }

// SetName sets the graph's name attribute.
func (g *Graph) SetName(name string) { g.name = name }

// SetMetadata stores a graph-level attribute.
func (g *Graph) SetMetadata(key string, value any) { g.metadata[key] = value }

// MetadataValue returns a graph-level attribute and whether it is set.
func (g *Graph) MetadataValue(key string) (any, bool) {
	v, ok := g.metadata[key]

	return v, ok
}

// Metadata returns a snapshot copy of the graph-level attributes.
func (g *Graph) Metadata() map[string]any {
	out := make(map[string]any, len(g.metadata))
	for k, v := range g.metadata {
		out[k] = v
	}

	return out
}

// sortedSet converts a string set into a sorted slice.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
