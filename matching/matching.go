// SPDX-License-Identifier: MIT
// Package: tempograph/matching
//
// matching.go — the bipartite maximum-overlap matching engine.
//
// Contract:
//   - Output node set == input node set of the t labeling, always.
//   - Pure renaming: a group is relabeled wholesale or not at all.
//   - Deterministic: ties in overlap weight resolve to the smallest label.
package matching

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/tempograph/core"
)

// MatchLabels returns a new node→label mapping over exactly the node set
// of labels, in which each time-t community is renamed to its time-(t−1)
// counterpart when — and only when — the two are each other's
// maximum-overlap partner.
//
// The first snapshot has no history: an empty (or nil) prev returns a
// fresh copy of labels unchanged.
//
// See the package documentation for the algorithm outline, invariants and
// the deterministic tie-break rule.
func MatchLabels[N comparable, L cmp.Ordered](labels, prev core.Labeling[N, L], opts ...Option) (core.Labeling[N, L], error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if labels == nil {
		return nil, ErrNilLabeling
	}

	out := make(core.Labeling[N, L], len(labels))

	// 2) First snapshot: nothing to reconcile, hand back a copy.
	if len(prev) == 0 {
		for n, l := range labels {
			out[n] = l
		}

		return out, nil
	}

	// 3) Group node sets per label on both sides.
	groupsT := groupByLabel(labels)
	groupsPrev := groupByLabel(prev)

	// 4) Dense overlap structure: every ((t−1)-label, t-label) pair gets an
	//    undirected edge weighted by Jaccard similarity, zero-overlap pairs
	//    included. Equal label values on the two sides share one vertex, so
	//    a self-overlap edge is legal and counted below. Two labels that
	//    each exist on both sides produce their shared edge in both
	//    orientations; setOverlap keeps the larger weight, so the stored
	//    edge never depends on map iteration order.
	overlap := make(map[L]map[L]float64, len(groupsT)+len(groupsPrev))
	for lt, setT := range groupsT {
		for lp, setP := range groupsPrev {
			setOverlap(overlap, lp, lt, jaccard(setP, setT))
		}
	}

	// 5) Directed max-overlap selection with deterministic tie-break.
	succ := maxOverlapSuccessors(overlap)

	// 6) Reciprocity test per t-label, then emit the renamed mapping.
	//    Sorted iteration keeps the debug trace stable across runs.
	for _, lt := range sortedKeys(groupsT) {
		target := lt
		if m, ok := succ[lt]; ok {
			if back, ok2 := succ[m]; ok2 && back == lt {
				target = m
			}
		}
		if target != lt {
			cfg.Logger.Debug().
				Interface("from", lt).
				Interface("to", target).
				Int("size", len(groupsT[lt])).
				Msg("confirmed reciprocal match")
		}
		for n := range groupsT[lt] {
			out[n] = target
		}
	}

	return out, nil
}

// groupByLabel inverts a labeling into per-label node sets.
// Every group is non-empty by construction.
func groupByLabel[N comparable, L cmp.Ordered](labels core.Labeling[N, L]) map[L]map[N]struct{} {
	groups := make(map[L]map[N]struct{})
	for n, l := range labels {
		set, ok := groups[l]
		if !ok {
			set = make(map[N]struct{})
			groups[l] = set
		}
		set[n] = struct{}{}
	}

	return groups
}

// jaccard returns |a∩b| / |a∪b| for two non-empty node sets, so the
// denominator is always positive.
func jaccard[N comparable](a, b map[N]struct{}) float64 {
	// Probe with the smaller set.
	small, big := a, b
	if len(small) > len(big) {
		small, big = big, small
	}

	intersection := 0
	for n := range small {
		if _, ok := big[n]; ok {
			intersection++
		}
	}

	return float64(intersection) / float64(len(a)+len(b)-intersection)
}

// setOverlap records the undirected weighted edge (u,v) in both adjacency
// directions; u == v stores a single self-overlap entry. An edge written
// in both orientations (labels u and v each live on both sides) keeps the
// larger of the two weights, independent of write order.
func setOverlap[L cmp.Ordered](overlap map[L]map[L]float64, u, v L, w float64) {
	if have, ok := overlap[u][v]; ok && have >= w {
		return
	}
	if overlap[u] == nil {
		overlap[u] = make(map[L]float64)
	}
	overlap[u][v] = w
	if u == v {
		return
	}
	if overlap[v] == nil {
		overlap[v] = make(map[L]float64)
	}
	overlap[v][u] = w
}

// maxOverlapSuccessors picks, for every overlap vertex, the neighbor with
// maximum edge weight. Neighbors are scanned in ascending label order and
// an incumbent is replaced only on strictly greater weight, so equal-weight
// ties always resolve to the smallest label. Vertices without neighbors
// (impossible under dense construction, but tolerated) get no successor.
func maxOverlapSuccessors[L cmp.Ordered](overlap map[L]map[L]float64) map[L]L {
	succ := make(map[L]L, len(overlap))
	for _, v := range sortedKeys(overlap) {
		nbrs := sortedKeys(overlap[v])
		if len(nbrs) == 0 {
			continue
		}

		best := nbrs[0]
		bestWeight := overlap[v][best]
		for _, nbr := range nbrs[1:] {
			if w := overlap[v][nbr]; w > bestWeight {
				best, bestWeight = nbr, w
			}
		}
		succ[v] = best
	}

	return succ
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[L cmp.Ordered, V any](m map[L]V) []L {
	keys := make([]L, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
