package stats_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/tempograph/stats"
)

func TestConfidenceIntervalProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	genSample := gen.SliceOf(gen.Float64Range(-100, 100)).SuchThat(func(xs []float64) bool {
		return len(xs) > 0
	})

	properties.Property("interval is non-negative and finite", prop.ForAll(
		func(xs []float64) bool {
			half, err := stats.ConfidenceInterval(xs)
			if err != nil {
				return false
			}

			return half >= 0 && !math.IsInf(half, 0) && !math.IsNaN(half)
		},
		genSample,
	))

	properties.Property("interval is invariant under reversal", prop.ForAll(
		func(xs []float64) bool {
			forward, err := stats.ConfidenceInterval(xs)
			if err != nil {
				return false
			}
			reversed := make([]float64, len(xs))
			for i, x := range xs {
				reversed[len(xs)-1-i] = x
			}
			backward, err := stats.ConfidenceInterval(reversed)
			if err != nil {
				return false
			}

			return math.Abs(forward-backward) <= 1e-9
		},
		genSample,
	))

	properties.Property("shifting the sample leaves the interval unchanged", prop.ForAll(
		func(xs []float64) bool {
			base, err := stats.ConfidenceInterval(xs)
			if err != nil {
				return false
			}
			shifted := make([]float64, len(xs))
			for i, x := range xs {
				shifted[i] = x + 10
			}
			moved, err := stats.ConfidenceInterval(shifted)
			if err != nil {
				return false
			}

			return math.Abs(base-moved) <= 1e-9
		},
		genSample,
	))

	properties.TestingRun(t)
}
