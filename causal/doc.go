// Package causal implements causal-inference algorithms over mixed-edge
// graphs: m-separation, conversion of bidirected edges to explicit
// unobserved-confounder structure, and v-structure (collider)
// enumeration.
//
// What
//
//   - MSeparated(g, x, y, z): decides whether node set x is m-separated
//     from y given conditioning set z, under the mixed-edge semantics
//     (directed edges = causal arrows, bidirected edges = latent
//     common-cause arcs). Ancestral-subgraph reduction followed by a
//     connectivity check — O(V + E).
//   - BidirectedToUnobservedConfounder(g): returns a copy of g where
//     every bidirected edge (a, b) is replaced by a fresh synthetic node
//     U<i> with directed edges U<i>→a and U<i>→b; the input graph is
//     never mutated.
//   - VStructures(g): enumerates unshielded colliders (p1, c, p2) where
//     both p1 and p2 point into c (directed parent or bidirected
//     spouse) and p1, p2 are non-adjacent in every layer.
//
// Edge type names default to "directed" and "bidirected"; override with
// WithDirectedEdgeType / WithBidirectedEdgeType.
//
// Determinism
//
//	All algorithms enumerate nodes and edges through the sorted surfaces
//	of core.Graph, so results (including synthetic confounder names and
//	v-structure order) are reproducible for a given graph.
//
// Errors
//
//   - ErrNilGraph         a nil *mixed.Graph was passed.
//   - ErrMissingEdgeType  the graph does not declare a required layer;
//     the error names the missing type and the declared ones.
//   - ErrOptionViolation  an invalid Option (e.g. empty edge type name).
package causal
