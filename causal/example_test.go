package causal_test

import (
	"fmt"

	"github.com/katalvlaran/admg/causal"
	"github.com/katalvlaran/admg/core"
	"github.com/katalvlaran/admg/mixed"
)

// ExampleMSeparated queries the confounded chain Z → X → Y, X ↔ Y.
func ExampleMSeparated() {
	g, _ := mixed.NewGraphFrom(
		[]*core.Graph{core.NewDiGraph(), core.NewGraph()},
		[]string{causal.DirectedEdgeType, causal.BidirectedEdgeType},
	)
	_ = g.AddEdge("Z", "X", causal.DirectedEdgeType)
	_ = g.AddEdge("X", "Y", causal.DirectedEdgeType)
	_ = g.AddEdge("X", "Y", causal.BidirectedEdgeType)

	marginal, _ := causal.MSeparated(g,
		causal.NewNodeSet("Z"), causal.NewNodeSet("Y"), nil)
	conditioned, _ := causal.MSeparated(g,
		causal.NewNodeSet("Z"), causal.NewNodeSet("Y"), causal.NewNodeSet("X"))

	fmt.Println("Z ⊥ Y:", marginal)
	fmt.Println("Z ⊥ Y | X:", conditioned)
	// Output:
	// Z ⊥ Y: false
	// Z ⊥ Y | X: false
}

// ExampleBidirectedToUnobservedConfounder rewrites a bidirected arc as
// an explicit latent parent.
func ExampleBidirectedToUnobservedConfounder() {
	g, _ := mixed.NewGraphFrom(
		[]*core.Graph{core.NewDiGraph(), core.NewGraph()},
		[]string{causal.DirectedEdgeType, causal.BidirectedEdgeType},
	)
	_ = g.AddEdge("A", "B", causal.BidirectedEdgeType)

	out, _ := causal.BidirectedToUnobservedConfounder(g)
	fmt.Println(out.Nodes())

	dir, _ := out.Layer(causal.DirectedEdgeType)
	for _, e := range dir.Edges() {
		fmt.Println(e.From, "->", e.To)
	}
	// Output:
	// [A B U0]
	// U0 -> A
	// U0 -> B
}
