// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Nodes 0..n-1 inserted in ascending order.
//   - Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges emission.
//   - Space: O(n²) in the resulting graph.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n over nodes 0..n-1.
func Complete(n int, opts ...Option) (*core.Graph[int], error) {
	// Early parameter validation: K_n is defined for n≥1.
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	// Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.New[int]()

	// Insert vertices in deterministic ascending order.
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}

	// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addEdge(g, i, j, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return g, nil
}

// addEdge inserts one edge honoring the weight policy of cfg.
func addEdge(g *core.Graph[int], u, v int, cfg Options) error {
	if cfg.UnitWeights {
		return g.AddWeightedEdge(u, v, unitWeight)
	}
	g.AddEdge(u, v)

	return nil
}
