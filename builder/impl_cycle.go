// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Nodes 0..n-1 inserted in ascending order.
//   - Emits the path edges of P_n plus the closing edge (n-1, 0).
//
// Complexity:
//   - Time: O(n).
//   - Space: O(n).
package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the simple cycle graph C_n over nodes 0..n-1.
func Cycle(n int, opts ...Option) (*core.Graph[int], error) {
	// Validate parameter domain early.
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.New[int]()

	for i := 0; i < n; i++ {
		g.AddNode(i)
	}

	// Path edges plus the closing edge back to node 0.
	for i := 1; i < n; i++ {
		if err := addEdge(g, i-1, i, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
	}
	if err := addEdge(g, n-1, 0, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}

	return g, nil
}
