// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for the standard
// test-bench graphs used throughout tempograph's tests and examples:
// complete graphs K_n, path graphs P_n, and cycle graphs C_n.
//
// Contract:
//   - Nodes are the integers 0..n-1, inserted in ascending order.
//   - Each unordered pair is emitted exactly once, in lexicographic order
//     by (i,j) with i<j.
//   - Graphs are unweighted by default; WithUnitWeights() assigns weight 1
//     to every edge so the weighted metrics can consume them.
//   - Only sentinel errors are returned; constructors never panic.
//
// Determinism:
//   - Same n and options → byte-identical node and edge sets.
package builder
