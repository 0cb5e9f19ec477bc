// SPDX-License-Identifier: MIT
// Package stats provides the small statistical helpers used when
// aggregating per-snapshot metric samples, most notably the half-width
// of the 95% confidence interval around a sample mean.
//
// The interval follows the normal approximation with the population
// standard deviation, matching how repeated-run metric samples are
// conventionally summarized: half = 1.96 · σ / √n.
//
// Errors (sentinel):
//   - ErrEmptySample — the sample contains no observations.
package stats
