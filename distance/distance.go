package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tempograph/core"
)

// GraphDistance returns the edge-set dissimilarity of two snapshots,
// a value in [0,1].
//
// Unweighted (default): Jaccard distance of the two edge sets,
// (|union| − |intersection|) / |union|, with edge identity taken
// order-independently ((u,v) ≡ (v,u)).
//
// Weighted (WithWeighted): Tanimoto distance over the edge-weight vectors,
// 1 − dot/(norm0 + norm1 − dot), where dot sums w0·w1 over edges present in
// both graphs and each norm sums w² over one graph's edges. Every edge of
// both graphs must carry a weight attribute; the first edge without one
// aborts with core.ErrMissingWeight.
//
// The metric is undefined when the denominator would be zero — both edge
// sets empty, or (weighted) all weights zero — and returns ErrEmptyUnion
// rather than NaN.
//
// Complexity: O(E0 + E1) time, O(E0 + E1) space in weighted mode.
func GraphDistance[N comparable](g0, g1 *core.Graph[N], opts ...Option) (float64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graphs.
	if g0 == nil || g1 == nil {
		return 0, ErrNilGraph
	}

	// 3) Dispatch on mode.
	if cfg.Weighted {
		return tanimotoDistance(g0, g1)
	}

	return jaccardEdgeDistance(g0, g1)
}

// jaccardEdgeDistance computes the unweighted edge-set Jaccard distance.
func jaccardEdgeDistance[N comparable](g0, g1 *core.Graph[N]) (float64, error) {
	// Count the intersection by probing g1 with each g0 edge; HasEdge is
	// order-independent, so (u,v) matches (v,u).
	intersection := 0
	for _, e := range g0.Edges() {
		if g1.HasEdge(e.U, e.V) {
			intersection++
		}
	}

	union := g0.EdgeCount() + g1.EdgeCount() - intersection
	if union == 0 {
		return 0, fmt.Errorf("both edge sets are empty: %w", ErrEmptyUnion)
	}

	return float64(union-intersection) / float64(union), nil
}

// tanimotoDistance computes the weighted Tanimoto distance over the two
// edge-weight vectors.
func tanimotoDistance[N comparable](g0, g1 *core.Graph[N]) (float64, error) {
	// 1) Collect each graph's weight vector; fails on any unweighted edge.
	e0 := g0.Edges()
	w0, err := weightVector(e0)
	if err != nil {
		return 0, err
	}
	w1, err := weightVector(g1.Edges())
	if err != nil {
		return 0, err
	}

	// 2) Norms are the self-dot-products of the weight vectors.
	norm0 := floats.Dot(w0, w0)
	norm1 := floats.Dot(w1, w1)

	// 3) The dot product ranges over the edge intersection only; edges
	//    absent from one graph contribute an implicit zero coordinate.
	var a, b []float64
	for i, e := range e0 {
		if !g1.HasEdge(e.U, e.V) {
			continue
		}
		other, _, err := g1.Weight(e.U, e.V)
		if err != nil {
			return 0, fmt.Errorf("distance: %w", err)
		}
		a = append(a, w0[i])
		b = append(b, other)
	}
	dot := floats.Dot(a, b)

	// 4) Guard the denominator: zero means there is no weight mass anywhere.
	denom := norm0 + norm1 - dot
	if denom == 0 {
		return 0, fmt.Errorf("no edge-weight mass in either graph: %w", ErrEmptyUnion)
	}

	return 1 - dot/denom, nil
}

// weightVector extracts the weight of every edge, aborting with
// core.ErrMissingWeight context on the first unweighted edge.
func weightVector[N comparable](edges []core.Edge[N]) ([]float64, error) {
	w := make([]float64, len(edges))
	for i, e := range edges {
		if !e.Weighted {
			return nil, fmt.Errorf("distance: edge %v–%v: %w", e.U, e.V, core.ErrMissingWeight)
		}
		w[i] = e.Weight
	}

	return w, nil
}

// NodeDistance returns the Jaccard distance of the two snapshots' node
// sets: 1 − |intersection|/|union|, a value in [0,1].
//
// Undefined (ErrEmptyUnion) when both node sets are empty.
//
// Complexity: O(V0 + V1)
func NodeDistance[N comparable](g0, g1 *core.Graph[N]) (float64, error) {
	if g0 == nil || g1 == nil {
		return 0, ErrNilGraph
	}

	// Probe with the smaller node set for efficiency; the metric itself is
	// symmetric either way.
	small, big := g0, g1
	if small.NodeCount() > big.NodeCount() {
		small, big = big, small
	}

	intersection := 0
	for _, n := range small.Nodes() {
		if big.HasNode(n) {
			intersection++
		}
	}

	union := g0.NodeCount() + g1.NodeCount() - intersection
	if union == 0 {
		return 0, fmt.Errorf("both node sets are empty: %w", ErrEmptyUnion)
	}

	return 1 - float64(intersection)/float64(union), nil
}
