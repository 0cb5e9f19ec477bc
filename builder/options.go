// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// options.go — functional options shared by all constructors.
package builder

// unitWeight is the weight assigned to every edge under WithUnitWeights.
const unitWeight = 1.0

// Options configures graph construction.
//
// UnitWeights – when true, every emitted edge carries weight 1; when false
// (default), edges carry no weight attribute at all.
type Options struct {
	UnitWeights bool
}

// Option is a functional option for graph constructors.
type Option func(*Options)

// WithUnitWeights makes every emitted edge carry weight 1, so the built
// graph satisfies the weighted-metric preconditions.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// DefaultOptions returns the default construction options: unweighted edges.
func DefaultOptions() Options {
	return Options{UnitWeights: false}
}
