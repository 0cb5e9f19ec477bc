// SPDX-License-Identifier: MIT
// Package matching reconciles community labels across two successive
// snapshots, so that a community at time t inherits the name of its
// closest ancestor at time t−1 when the two are substantially the same
// set of nodes.
//
// Algorithm Outline:
//  1. Group the nodes of each labeling by label, yielding the t-side and
//     (t−1)-side community node sets.
//  2. Build a dense overlap structure: one undirected weighted edge per
//     ((t−1)-label, t-label) pair, weighted by the Jaccard similarity of
//     the two node sets. A label value that exists on both sides is a
//     single vertex; its self-overlap edge participates like any other.
//     Two label values that each exist on both sides yield their shared
//     edge in both orientations; the larger of the two Jaccard weights is
//     kept, so the edge weight is independent of construction order.
//  3. For every vertex, select the neighbor with maximum overlap weight
//     and record a directed edge toward it. Neighbors are scanned in
//     ascending label order and replaced only on strictly greater weight,
//     so the smallest label wins ties — the output is deterministic.
//  4. A t-label l is renamed to its selected neighbor m only when the
//     selection is reciprocal (m's selected neighbor is l); otherwise l
//     keeps its name. A t-label with no selected neighbor keeps its name.
//  5. Emit the full node→label map with the renaming applied per group.
//
// Invariants:
//   - The output covers exactly the node set of the t labeling.
//   - Pure renaming: groups are never merged or split.
//   - Every output label comes from the t or the t−1 label set.
//
// Complexity:
//   - Time:  O(n + Lt·Lp·s) where n = |nodes|, Lt/Lp = community counts
//     and s = average community size probed during Jaccard computation.
//   - Space: O(n + Lt·Lp) for the groups and the dense overlap structure.
//
// Errors (sentinel):
//   - ErrNilLabeling — the t labeling is nil (a nil t−1 labeling is the
//     legitimate first-snapshot case and returns a copy of the input).
package matching
