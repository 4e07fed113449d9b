package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/admg/core"
)

// TestConnectedComponents_Undirected covers two islands plus an isolate.
func TestConnectedComponents_Undirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddVertex("Q"))

	comps := g.ConnectedComponents()
	// deterministic: sorted members, ordered by smallest member
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"Q"}, {"X", "Y"}}, comps)
}

// TestConnectedComponents_DirectedWeak verifies weak connectivity:
// direction is ignored when grouping.
func TestConnectedComponents_DirectedWeak(t *testing.T) {
	g := core.NewDiGraph()
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddEdge("C", "A"))

	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []string{"A", "B", "C"}, comps[0])
}

// TestConnectedComponents_Empty returns no components.
func TestConnectedComponents_Empty(t *testing.T) {
	assert.Empty(t, core.NewGraph().ConnectedComponents())
}
