// SPDX-License-Identifier: MIT
// Package: tempograph/stats
//
// types.go — sentinel errors for the statistical helpers.
package stats

import "errors"

// ErrEmptySample indicates that a sample with zero observations was
// passed where at least one is required.
var ErrEmptySample = errors.New("stats: empty sample")
