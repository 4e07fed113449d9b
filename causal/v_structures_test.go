package causal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admg/causal"
	"github.com/katalvlaran/admg/core"
	"github.com/katalvlaran/admg/mixed"
)

// TestVStructures_UnshieldedCollider finds the single X → C ← Y triple.
func TestVStructures_UnshieldedCollider(t *testing.T) {
	g := newCausalGraph(t)
	require.NoError(t, g.AddEdge("X", "C", causal.DirectedEdgeType))
	require.NoError(t, g.AddEdge("Y", "C", causal.DirectedEdgeType))

	vs, err := causal.VStructures(g)
	require.NoError(t, err)
	assert.Equal(t, []causal.VStructure{{P1: "X", Collider: "C", P2: "Y"}}, vs)
}

// TestVStructures_ShieldedTriple: any edge between the parents, in any
// layer and either direction, disqualifies the triple.
func TestVStructures_ShieldedTriple(t *testing.T) {
	for _, shield := range []struct {
		name     string
		from, to string
		edgeType string
	}{
		{"directed X→Y", "X", "Y", causal.DirectedEdgeType},
		{"directed Y→X", "Y", "X", causal.DirectedEdgeType},
		{"bidirected X↔Y", "X", "Y", causal.BidirectedEdgeType},
	} {
		t.Run(shield.name, func(t *testing.T) {
			g := newCausalGraph(t)
			require.NoError(t, g.AddEdge("X", "C", causal.DirectedEdgeType))
			require.NoError(t, g.AddEdge("Y", "C", causal.DirectedEdgeType))
			require.NoError(t, g.AddEdge(shield.from, shield.to, shield.edgeType))

			vs, err := causal.VStructures(g)
			require.NoError(t, err)
			assert.Empty(t, vs)
		})
	}
}

// TestVStructures_BidirectedSpouse: a bidirected arc into the collider
// contributes to the pair pool alongside directed parents.
func TestVStructures_BidirectedSpouse(t *testing.T) {
	g := newCausalGraph(t)
	require.NoError(t, g.AddEdge("P", "C", causal.DirectedEdgeType))
	require.NoError(t, g.AddEdge("S", "C", causal.BidirectedEdgeType))

	vs, err := causal.VStructures(g)
	require.NoError(t, err)
	assert.Equal(t, []causal.VStructure{{P1: "P", Collider: "C", P2: "S"}}, vs)
}

// TestVStructures_SortedEnumeration: many colliders come back ordered
// by (P1, Collider, P2).
func TestVStructures_SortedEnumeration(t *testing.T) {
	g := newCausalGraph(t)
	// three parents into one collider, pairwise non-adjacent
	for _, p := range []string{"A", "B", "D"} {
		require.NoError(t, g.AddEdge(p, "C", causal.DirectedEdgeType))
	}

	vs, err := causal.VStructures(g)
	require.NoError(t, err)
	assert.Equal(t, []causal.VStructure{
		{P1: "A", Collider: "C", P2: "B"},
		{P1: "A", Collider: "C", P2: "D"},
		{P1: "B", Collider: "C", P2: "D"},
	}, vs)
}

// TestVStructures_DirectedOnlyGraph tolerates a missing bidirected
// layer.
func TestVStructures_DirectedOnlyGraph(t *testing.T) {
	g, err := mixed.NewGraphFrom(
		[]*core.Graph{core.NewDiGraph()}, []string{causal.DirectedEdgeType})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("X", "C", causal.DirectedEdgeType))
	require.NoError(t, g.AddEdge("Y", "C", causal.DirectedEdgeType))

	vs, err := causal.VStructures(g)
	require.NoError(t, err)
	assert.Len(t, vs, 1)
}

// TestVStructures_NoCollidersOnChain: a plain chain has none.
func TestVStructures_NoCollidersOnChain(t *testing.T) {
	g := newCausalGraph(t)
	require.NoError(t, g.AddEdge("A", "B", causal.DirectedEdgeType))
	require.NoError(t, g.AddEdge("B", "C", causal.DirectedEdgeType))

	vs, err := causal.VStructures(g)
	require.NoError(t, err)
	assert.Empty(t, vs)
}

// TestVStructures_Errors covers the precondition failures.
func TestVStructures_Errors(t *testing.T) {
	_, err := causal.VStructures(nil)
	assert.ErrorIs(t, err, causal.ErrNilGraph)

	bidirOnly, err := mixed.NewGraphFrom(
		[]*core.Graph{core.NewGraph()}, []string{causal.BidirectedEdgeType})
	require.NoError(t, err)
	_, err = causal.VStructures(bidirOnly)
	assert.ErrorIs(t, err, causal.ErrMissingEdgeType)

	full := newCausalGraph(t)
	_, err = causal.VStructures(full, causal.WithDirectedEdgeType(""))
	assert.ErrorIs(t, err, causal.ErrOptionViolation)
}
