// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// errors.go — sentinel errors shared by all constructors.
package builder

import "errors"

// ErrTooFewNodes indicates that n is below the minimum for the requested
// graph family (K_n needs n ≥ 1, P_n needs n ≥ 2, C_n needs n ≥ 3).
var ErrTooFewNodes = errors.New("builder: too few nodes for requested graph")
