// SPDX-License-Identifier: MIT
// Package: tempograph/matching
//
// types.go — sentinel errors and functional options for MatchLabels.
package matching

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrNilLabeling indicates that the current-snapshot labeling is nil.
// An empty (or nil) previous labeling is not an error; it marks the first
// snapshot, for which MatchLabels returns a copy of its input.
var ErrNilLabeling = errors.New("matching: current labeling is nil")

// Options configures diagnostics emission for MatchLabels.
//
// Logger – receives debug-level records of confirmed reciprocal matches.
// Observability only: it never affects the returned mapping. Default is a
// no-op logger.
type Options struct {
	Logger zerolog.Logger
}

// Option is a functional option for MatchLabels.
type Option func(*Options)

// WithLogger injects a zerolog logger for match tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// DefaultOptions returns the default configuration: discard diagnostics.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
