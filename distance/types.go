// Package distance defines configuration options and sentinel errors for
// the snapshot distance metrics.
//
// Two metrics are provided:
//
//	– GraphDistance: dissimilarity of two snapshots' edge structure.
//	  Unweighted mode is the Jaccard distance of the edge sets,
//	  (|union| − |intersection|) / |union|; weighted mode is the Tanimoto
//	  distance 1 − dot/(norm0 + norm1 − dot) over the two edge-weight
//	  vectors, indexed by order-independent edge identity with 0 where an
//	  edge is absent.
//	– NodeDistance: Jaccard distance of the two node sets.
//
// Both metrics are symmetric in their arguments and fall in [0,1].
//
// Errors (sentinel):
//
//	– ErrNilGraph            if either graph is nil.
//	– ErrEmptyUnion          if the metric's denominator would be zero
//	                         (no edges/nodes anywhere, or all-zero weights).
//	– core.ErrMissingWeight  if weighted mode meets an edge without a
//	                         weight attribute (wrapped with edge context).
package distance

import "errors"

// Sentinel errors returned by the distance metrics.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrEmptyUnion indicates the metric is undefined because its
	// denominator is zero: both edge sets empty (GraphDistance), both node
	// sets empty (NodeDistance), or every weight zero (weighted mode).
	ErrEmptyUnion = errors.New("distance: undefined for empty union")
)

// Options configures GraphDistance.
//
// Weighted – if true, compute the Tanimoto distance over edge weights;
// every edge of both graphs must then carry a weight attribute.
// Default is false (Jaccard distance of the edge sets).
type Options struct {
	Weighted bool
}

// Option is a functional option for GraphDistance.
type Option func(*Options)

// WithWeighted switches GraphDistance to the weighted Tanimoto metric.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// DefaultOptions returns the default configuration: unweighted Jaccard.
func DefaultOptions() Options {
	return Options{Weighted: false}
}
