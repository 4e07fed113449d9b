// Package mixed provides Graph, a mixed-edge graph whose edge set is
// partitioned into named edge types ("layers"), each backed by its own
// single-edge-type core.Graph, while all layers share one node set.
//
// What
//
//   - Construct from a list of core graphs plus matching type names, or
//     grow dynamically with AddEdgeType.
//   - Node operations (AddNode, RemoveNode, ...) apply to every layer,
//     keeping the shared-node-set invariant.
//   - Edge operations are mandatorily typed: every call names exactly
//     one registered edge type and is dispatched to that layer.
//   - Aggregated views: Adjacency (per-type neighbor maps),
//     Adjacencies (flattened union), EdgeCount over one layer or all,
//     ToUndirected (single flattened undirected graph).
//
// Why
//
//	Causal graphs mix directed edges (causal arrows) with bidirected
//	edges (latent common causes). Keeping each kind in its own layer
//	preserves per-kind semantics while the node space stays unified,
//	which is exactly what the separation algorithms in package causal
//	need.
//
// Invariants
//
//   - Every layer holds the same node set at all times. Construction
//     and AddEdgeType unify node sets; AddEdge bootstraps missing
//     endpoints in every layer; node removal is validated before any
//     layer is touched, so failures leave no layer mutated.
//   - Edge type names are unique, non-empty identifiers of layers.
//
// Errors
//
//   - ErrLayerCountMismatch  graphs/edge-type name counts differ.
//   - ErrNilLayer            a nil *core.Graph was supplied as a layer.
//   - ErrEmptyEdgeType       the empty string as an edge type name.
//   - ErrDuplicateEdgeType   a name registered twice.
//   - ErrUnknownEdgeType     an operation named an unregistered type.
//   - ErrNoEdgeTypes         a node/edge operation on a layer-less graph.
//   - ErrNodeNotFound        a removal referenced a missing node.
//
// Concurrency: a mixed Graph assumes a single writer; the underlying
// core graphs are individually lock-guarded, but cross-layer atomicity
// requires external coordination (spec'd single-writer usage).
package mixed
