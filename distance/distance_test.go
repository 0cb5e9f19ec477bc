package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempograph/builder"
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/distance"
)

// TestGraphDistance_IdenticalComplete verifies d(K5,K5) == 0.
func TestGraphDistance_IdenticalComplete(t *testing.T) {
	g0, err := builder.Complete(5)
	require.NoError(t, err)
	g1, err := builder.Complete(5)
	require.NoError(t, err)

	d, err := distance.GraphDistance(g0, g1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "identical graphs must be at distance 0")
}

// TestGraphDistance_DisjointComplete verifies two K5s with no shared edge
// are at distance exactly 1.
func TestGraphDistance_DisjointComplete(t *testing.T) {
	g0, err := builder.Complete(5)
	require.NoError(t, err)

	// Second K5 over nodes 5..9, edge-disjoint from the first.
	g1 := core.New[int]()
	for i := 5; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			g1.AddEdge(i, j)
		}
	}

	d, err := distance.GraphDistance(g0, g1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d, "disjoint non-empty edge sets must be at distance 1")
}

// TestGraphDistance_PartialOverlap checks the Jaccard arithmetic on a
// hand-computed pair: edges {ab,bc,cd} vs {bc,cd,de} → 1 - 2/4.
func TestGraphDistance_PartialOverlap(t *testing.T) {
	g0 := core.New[string]()
	g0.AddEdge("a", "b")
	g0.AddEdge("b", "c")
	g0.AddEdge("c", "d")

	g1 := core.New[string]()
	g1.AddEdge("c", "b") // reversed on purpose; identity is order-independent
	g1.AddEdge("c", "d")
	g1.AddEdge("d", "e")

	d, err := distance.GraphDistance(g0, g1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)
}

// TestGraphDistance_EmptyUnion errors when both graphs have no edges.
func TestGraphDistance_EmptyUnion(t *testing.T) {
	g0 := core.New[int]()
	g0.AddNode(1)
	g1 := core.New[int]()

	_, err := distance.GraphDistance(g0, g1)
	assert.ErrorIs(t, err, distance.ErrEmptyUnion)

	_, err = distance.GraphDistance(g0, g1, distance.WithWeighted())
	assert.ErrorIs(t, err, distance.ErrEmptyUnion, "weighted mode has the same degenerate case")
}

// TestGraphDistance_NilGraph errors on nil inputs.
func TestGraphDistance_NilGraph(t *testing.T) {
	g := core.New[int]()
	g.AddEdge(1, 2)

	_, err := distance.GraphDistance(nil, g)
	assert.ErrorIs(t, err, distance.ErrNilGraph)
	_, err = distance.GraphDistance(g, nil)
	assert.ErrorIs(t, err, distance.ErrNilGraph)
}

// TestGraphDistance_Tanimoto checks the weighted metric on a hand-computed
// triangle: weights {2,1,1} vs the single shared edge of weight 2 →
// 1 − 4/(6+4−4) = 1/3.
func TestGraphDistance_Tanimoto(t *testing.T) {
	g0 := core.New[int]()
	require.NoError(t, g0.AddWeightedEdge(1, 2, 2))
	require.NoError(t, g0.AddWeightedEdge(1, 3, 1))
	require.NoError(t, g0.AddWeightedEdge(2, 3, 1))

	g1 := core.New[int]()
	require.NoError(t, g1.AddWeightedEdge(1, 2, 2))

	d, err := distance.GraphDistance(g0, g1, distance.WithWeighted())
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, d, 1e-12)

	// Reversed argument order must agree.
	rev, err := distance.GraphDistance(g1, g0, distance.WithWeighted())
	require.NoError(t, err)
	assert.InDelta(t, d, rev, 1e-12, "Tanimoto distance must be symmetric")
}

// TestGraphDistance_TanimotoIdentical verifies identical weighted graphs
// are at distance 0.
func TestGraphDistance_TanimotoIdentical(t *testing.T) {
	g0, err := builder.Complete(4, builder.WithUnitWeights())
	require.NoError(t, err)
	g1, err := builder.Complete(4, builder.WithUnitWeights())
	require.NoError(t, err)

	d, err := distance.GraphDistance(g0, g1, distance.WithWeighted())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, 1e-12)
}

// TestGraphDistance_TanimotoMissingWeight fails fast when any edge of
// either graph lacks a weight attribute.
func TestGraphDistance_TanimotoMissingWeight(t *testing.T) {
	g0 := core.New[int]()
	require.NoError(t, g0.AddWeightedEdge(1, 2, 2))
	g1 := core.New[int]()
	g1.AddEdge(1, 2) // no weight

	_, err := distance.GraphDistance(g0, g1, distance.WithWeighted())
	assert.ErrorIs(t, err, core.ErrMissingWeight)

	_, err = distance.GraphDistance(g1, g0, distance.WithWeighted())
	assert.ErrorIs(t, err, core.ErrMissingWeight)
}

// TestNodeDistance_PathGraphs checks a hand-computed case:
// nodes {0,1} vs {0,1,2,3} → 1 − 2/4 = 0.5.
func TestNodeDistance_PathGraphs(t *testing.T) {
	g0, err := builder.Path(2)
	require.NoError(t, err)
	g1, err := builder.Path(4)
	require.NoError(t, err)

	d, err := distance.NodeDistance(g0, g1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)

	rev, err := distance.NodeDistance(g1, g0)
	require.NoError(t, err)
	assert.Equal(t, d, rev, "NodeDistance must be symmetric")
}

// TestNodeDistance_Self is 0 for any non-empty graph.
func TestNodeDistance_Self(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)

	d, err := distance.NodeDistance(g, g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestNodeDistance_EmptyUnion errors when both node sets are empty.
func TestNodeDistance_EmptyUnion(t *testing.T) {
	_, err := distance.NodeDistance(core.New[int](), core.New[int]())
	assert.ErrorIs(t, err, distance.ErrEmptyUnion)
}

// TestNodeDistance_NilGraph errors on nil inputs.
func TestNodeDistance_NilGraph(t *testing.T) {
	_, err := distance.NodeDistance[int](nil, nil)
	assert.ErrorIs(t, err, distance.ErrNilGraph)
}
