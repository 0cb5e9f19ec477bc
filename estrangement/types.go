// Package estrangement measures how much a snapshot's partition disagrees
// with the co-community history accumulated in a consort graph.
//
// The consort graph (built and owned by the caller) contains exactly the
// node pairs that have shared a community in at least one prior snapshot,
// each carrying a weight. An edge of the consort graph is estranged when
// its endpoints now sit in different communities. Estrangement is the
// estranged weight divided by the current snapshot's total edge weight.
//
// The numerator deliberately ranges over ALL consort edges, while the
// non-empty intersection of consort and snapshot edges only gates whether
// the sum is attempted at all; an empty intersection yields 0, not an
// error. Estranged pairs that have left the snapshot entirely still count.
//
// Errors (sentinel):
//
//	– ErrNilGraph           if the snapshot or consort graph is nil.
//	– ErrMissingLabel       if a consort edge endpoint has no label entry.
//	– ErrZeroTotalWeight    if the snapshot's total edge weight is zero
//	                        while the consort intersection is non-empty.
//	– core.ErrMissingWeight if any consort or snapshot edge lacks a weight.
package estrangement

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by Estrangement.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("estrangement: graph is nil")

	// ErrMissingLabel indicates that a consort edge endpoint is absent from
	// the label mapping. Labels are never defaulted.
	ErrMissingLabel = errors.New("estrangement: node has no label entry")

	// ErrZeroTotalWeight indicates the snapshot's total edge weight (the
	// metric's denominator) is zero while the consort intersection is
	// non-empty, so the fraction is undefined.
	ErrZeroTotalWeight = errors.New("estrangement: snapshot total edge weight is zero")
)

// Options configures diagnostics emission for Estrangement.
//
// Logger – receives debug-level records of the consort edges, snapshot
// edges and their intersection. Observability only: it never affects the
// returned value. Default is a no-op logger.
type Options struct {
	Logger zerolog.Logger
}

// Option is a functional option for Estrangement.
type Option func(*Options)

// WithLogger injects a zerolog logger for diagnostic records.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// DefaultOptions returns the default configuration: discard diagnostics.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
