package distance_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/builder"
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/distance"
)

// ExampleGraphDistance compares two snapshots sharing half their edges.
//
//	t0:  a─b─c─d        t1:  b─c─d─e
func ExampleGraphDistance() {
	g0 := core.New[string]()
	g0.AddEdge("a", "b")
	g0.AddEdge("b", "c")
	g0.AddEdge("c", "d")

	g1 := core.New[string]()
	g1.AddEdge("b", "c")
	g1.AddEdge("c", "d")
	g1.AddEdge("d", "e")

	d, err := distance.GraphDistance(g0, g1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.2f\n", d)
	// Output:
	// distance=0.50
}

// ExampleGraphDistance_weighted computes the Tanimoto distance between a
// weighted triangle and a single shared weighted edge.
func ExampleGraphDistance_weighted() {
	g0 := core.New[int]()
	_ = g0.AddWeightedEdge(1, 2, 2)
	_ = g0.AddWeightedEdge(1, 3, 1)
	_ = g0.AddWeightedEdge(2, 3, 1)

	g1 := core.New[int]()
	_ = g1.AddWeightedEdge(1, 2, 2)

	d, err := distance.GraphDistance(g0, g1, distance.WithWeighted())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.4f\n", d)
	// Output:
	// distance=0.3333
}

// ExampleNodeDistance measures node turnover between a 2-path and a 4-path.
func ExampleNodeDistance() {
	g0, _ := builder.Path(2)
	g1, _ := builder.Path(4)

	d, err := distance.NodeDistance(g0, g1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.2f\n", d)
	// Output:
	// distance=0.50
}
