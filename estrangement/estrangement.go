package estrangement

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/tempograph/core"
)

// Estrangement returns the weighted fraction of estranged mass in snapshot
// g, a value ≥ 0.
//
// The computation proceeds in three steps:
//
//  1. Gate: intersect the consort graph's edges with g's edges by
//     order-independent node-pair identity (weights ignored). An empty
//     intersection means no accumulated co-community history overlaps the
//     current snapshot; the result is then 0 by definition.
//  2. Numerator: sum the weights of ALL consort edges whose endpoints map
//     to different labels — not just those in the intersection.
//  3. Denominator: g's total edge weight.
//
// Preconditions (fail fast, never defaulted):
//
//   - every consort edge endpoint has an entry in labels (ErrMissingLabel);
//   - every consort and snapshot edge carries a weight (core.ErrMissingWeight);
//   - g's total weight is non-zero once the gate passes (ErrZeroTotalWeight).
//
// Complexity: O(Ez + Eg) time, O(Ez) extra space for the consort edge
// list; an enabled debug logger additionally materializes the snapshot
// edge list.
func Estrangement[N comparable, L cmp.Ordered](g *core.Graph[N], labels core.Labeling[N, L], consort *core.Graph[N], opts ...Option) (float64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graphs.
	if g == nil || consort == nil {
		return 0, ErrNilGraph
	}

	// 3) Gate: count consort edges still present in the snapshot.
	consortEdges := consort.Edges()
	intersection := 0
	for _, e := range consortEdges {
		if g.HasEdge(e.U, e.V) {
			intersection++
		}
	}

	// Diagnostics only; the returned value never depends on the logger.
	// The Enabled guard keeps the snapshot edge list from being
	// materialized when debug logging is off.
	if evt := cfg.Logger.Debug(); evt.Enabled() {
		evt.Interface("consort_edges", consortEdges).
			Interface("snapshot_edges", g.Edges()).
			Int("consort_intersection", intersection).
			Msg("estrangement diagnostics")
	}

	if intersection == 0 {
		return 0, nil
	}

	// 4) Numerator: estranged weight over ALL consort edges.
	var estranged float64
	for _, e := range consortEdges {
		if !e.Weighted {
			return 0, fmt.Errorf("estrangement: consort edge %v–%v: %w", e.U, e.V, core.ErrMissingWeight)
		}
		lu, ok := labels[e.U]
		if !ok {
			return 0, fmt.Errorf("estrangement: node %v: %w", e.U, ErrMissingLabel)
		}
		lv, ok := labels[e.V]
		if !ok {
			return 0, fmt.Errorf("estrangement: node %v: %w", e.V, ErrMissingLabel)
		}
		if lu != lv {
			estranged += e.Weight
		}
	}

	// 5) Denominator: the snapshot's total edge weight.
	total, err := g.TotalWeight()
	if err != nil {
		return 0, fmt.Errorf("estrangement: %w", err)
	}
	if total == 0 {
		return 0, ErrZeroTotalWeight
	}

	return estranged / total, nil
}
