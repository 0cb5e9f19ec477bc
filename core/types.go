package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadWeight indicates a negative or NaN edge weight was supplied.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMissingWeight indicates a weighted operation met an edge that
	// carries no weight attribute. Weights are never defaulted.
	ErrMissingWeight = errors.New("core: edge has no weight attribute")
)

// Labeling assigns every node of a snapshot to a community label.
//
// Node IDs only need to be comparable; labels must additionally be ordered
// so that label-matching tie-breaks are deterministic.
type Labeling[N comparable, L cmp.Ordered] map[N]L

// Edge is one undirected edge as reported by Graph.Edges.
//
// U and V are the endpoints (U == V for a self-loop). Weighted reports
// whether the edge carries a weight; Weight is meaningful only when
// Weighted is true.
type Edge[N comparable] struct {
	// U is one endpoint of the edge.
	U N

	// V is the other endpoint (equal to U for self-loops).
	V N

	// Weight is the edge weight, valid only when Weighted is true.
	Weight float64

	// Weighted reports whether a weight attribute is present.
	Weighted bool
}

// edgeAttr is the per-edge attribute record stored in the adjacency map.
type edgeAttr struct {
	weight   float64 // weight value, meaningful only when weighted
	weighted bool    // whether a weight attribute is present
}

// Graph is an undirected in-memory snapshot graph over node type N.
//
// Nodes are opaque comparable identifiers. Each undirected edge is stored
// in both adjacency directions (once for a self-loop) and counted once.
type Graph[N comparable] struct {
	nodes     map[N]struct{}     // node set
	adj       map[N]map[N]edgeAttr // adjacency, both directions per edge
	edgeCount int                // number of undirected edges
}

// New creates an empty snapshot graph.
// Complexity: O(1)
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		nodes: make(map[N]struct{}),
		adj:   make(map[N]map[N]edgeAttr),
	}
}
