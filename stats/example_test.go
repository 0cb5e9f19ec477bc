package stats_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/stats"
)

// ExampleConfidenceInterval summarizes estrangement values collected from
// four detection runs.
func ExampleConfidenceInterval() {
	samples := []float64{0.20, 0.20, 0.40, 0.40}

	half, _ := stats.ConfidenceInterval(samples)
	fmt.Printf("±%.3f\n", half)
	// Output:
	// ±0.098
}
