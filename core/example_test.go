package core_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/core"
)

// ExampleGraph builds a small weighted triangle and inspects it.
//
//	    1
//	   / \
//	  2───3
func ExampleGraph() {
	g := core.New[int]()
	_ = g.AddWeightedEdge(1, 2, 2)
	_ = g.AddWeightedEdge(1, 3, 1)
	_ = g.AddWeightedEdge(2, 3, 1)

	total, _ := g.TotalWeight()
	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("total weight:", total)
	fmt.Println("has 3–2:", g.HasEdge(3, 2))
	// Output:
	// nodes: 3
	// edges: 3
	// total weight: 4
	// has 3–2: true
}
