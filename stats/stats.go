// SPDX-License-Identifier: MIT
// Package: tempograph/stats
//
// stats.go — confidence interval over a metric sample.
//
// Contract:
//   - Deterministic, pure, no allocation beyond gonum internals.
//   - A single-observation sample yields 0 (σ of one value is 0).
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// zScore95 is the two-sided standard normal quantile for 95% coverage.
const zScore95 = 1.96

// ConfidenceInterval returns the half-width of the 95% confidence
// interval around the mean of nums, using the population standard
// deviation under the normal approximation.
//
// Returns ErrEmptySample when nums has no elements.
//
// Complexity: O(n) time, O(1) extra space.
func ConfidenceInterval(nums []float64) (float64, error) {
	if len(nums) == 0 {
		return 0, ErrEmptySample
	}

	sigma := stat.PopStdDev(nums, nil)

	return zScore95 * sigma / math.Sqrt(float64(len(nums))), nil
}
