// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_path.go — implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes 0..n-1 inserted in ascending order.
//   - Emits edges (i-1, i) for i = 1..n-1 in stable increasing order.
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
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the simple path graph P_n over nodes 0..n-1.
func Path(n int, opts ...Option) (*core.Graph[int], error) {
	// Validate parameter domain early.
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.New[int]()

	// Insert vertices in deterministic ascending order.
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}

	// Emit path edges 0–1–2–…–(n-1) in stable order.
	for i := 1; i < n; i++ {
		if err := addEdge(g, i-1, i, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
	}

	return g, nil
}
