// File: m_separation.go
// Role: m-separation over mixed-edge graphs via ancestral-subgraph
// reduction and a union-find connectivity check.
//
// The algorithm adapts the linear-time d-separation procedure of
// Darwiche (2009, "Modeling and Reasoning with Bayesian Networks") to
// graphs that carry bidirected edges alongside directed ones.

package causal

import (
	"fmt"

	"github.com/katalvlaran/admg/core"
	"github.com/katalvlaran/admg/mixed"
)

// MSeparated reports whether x is m-separated from y given the
// conditioning set z in the mixed-edge causal graph g.
//
// Procedure:
//  1. Materialize the directed layer as D and the bidirected layer as B,
//     both over the full node set with copied node metadata.
//  2. Reduce to the ancestral subgraph of x ∪ y ∪ z: repeatedly remove
//     sink nodes (out-degree zero in D) outside x ∪ y ∪ z, FIFO order,
//     re-enqueueing in-neighbors whose out-degree drops to zero.
//  3. Delete every directed edge whose source is in z (conditioning
//     blocks forward propagation).
//  4. Form the moral-equivalent undirected graph F from the remaining
//     directed edges (direction dropped) plus all bidirected edges.
//  5. x and y are m-separated iff no node of x shares a connected
//     component of F with any node of y.
//
// An empty x or y is trivially separated: the result is true. An empty
// z is accepted and simply blocks nothing.
//
// The graph must declare both a directed and a bidirected layer under
// the (default or overridden) edge type names; otherwise the call fails
// with ErrMissingEdgeType naming the missing layer. A nil graph fails
// with ErrNilGraph. The input graph is never mutated.
//
// Complexity: O(V + E) time, O(V + E) space.
func MSeparated(g *mixed.Graph, x, y, z NodeSet, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	dirLayer, err := requireLayer(g, o.DirectedName)
	if err != nil {
		return false, err
	}
	bidirLayer, err := requireLayer(g, o.BidirectedName)
	if err != nil {
		return false, err
	}

	union := x.Union(y, z)

	// Stage 1: working copies D (directed) and B (bidirected) over the
	// full node set.
	d := core.NewDiGraph()
	b := core.NewGraph()
	for _, n := range g.Nodes() {
		var md map[string]any
		if v, verr := dirLayer.Vertex(n); verr == nil {
			md = v.Metadata
		}
		_ = d.AddVertexWithMetadata(n, md)
		_ = b.AddVertexWithMetadata(n, md)
	}
	for _, e := range dirLayer.Edges() {
		_ = d.AddEdge(e.From, e.To)
	}
	for _, e := range bidirLayer.Edges() {
		_ = b.AddEdge(e.From, e.To)
	}

	// Stage 2: ancestral reduction. Seed the FIFO queue with all sinks;
	// sorted seeding keeps intermediate states reproducible, though the
	// fixed point itself is order-independent.
	var queue []string
	for _, n := range d.Vertices() {
		if od, _ := d.OutDegree(n); od == 0 {
			queue = append(queue, n)
		}
	}
	for len(queue) > 0 {
		leaf := queue[0]
		queue = queue[1:]
		if union.Contains(leaf) {
			continue
		}
		preds, _ := d.Predecessors(leaf)
		for _, p := range preds {
			// p's only remaining out-edge points at the leaf about to
			// go away, so p becomes a sink next.
			if od, _ := d.OutDegree(p); od == 1 {
				queue = append(queue, p)
			}
		}
		_ = d.RemoveVertex(leaf)
		_ = b.RemoveVertex(leaf)
	}

	// Stage 3: drop outgoing directed edges of conditioned nodes.
	for _, zn := range z.Sorted() {
		if !d.HasVertex(zn) {
			continue
		}
		succs, _ := d.Successors(zn)
		for _, s := range succs {
			_ = d.RemoveEdge(zn, s)
		}
	}

	// Stage 4: moral-equivalent undirected graph.
	f := core.NewGraph()
	for _, n := range d.Vertices() {
		_ = f.AddVertex(n)
	}
	for _, e := range d.Edges() {
		_ = f.AddEdge(e.From, e.To)
	}
	for _, e := range b.Edges() {
		_ = f.AddEdge(e.From, e.To)
	}

	// Stage 5: connectivity. Merge each component, then x internally
	// and y internally; separation = distinct representatives.
	dsu := core.NewUnionFind(f.Vertices()...)
	for _, comp := range f.ConnectedComponents() {
		dsu.Union(comp...)
	}
	xs, ys := x.Sorted(), y.Sorted()
	dsu.Union(xs...)
	dsu.Union(ys...)

	if len(xs) == 0 || len(ys) == 0 {
		return true, nil
	}

	return !dsu.Connected(xs[0], ys[0]), nil
}

// requireLayer resolves the named layer, translating the registry miss
// into the algorithm-level precondition error.
func requireLayer(g *mixed.Graph, edgeType string) (*core.Graph, error) {
	layer, err := g.Layer(edgeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (graph declares %v)",
			ErrMissingEdgeType, edgeType, g.EdgeTypes())
	}

	return layer, nil
}
