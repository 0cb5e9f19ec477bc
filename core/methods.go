package core

import (
	"fmt"
	"math"
)

// AddNode inserts node n into the graph. Adding an existing node is a no-op.
// Complexity: O(1)
func (g *Graph[N]) AddNode(n N) {
	g.nodes[n] = struct{}{}
}

// AddEdge inserts the undirected, unweighted edge (u,v), creating both
// endpoints as needed. If the edge already exists its attributes are left
// untouched, so re-adding a weighted edge does not strip its weight.
// Complexity: O(1)
func (g *Graph[N]) AddEdge(u, v N) {
	if g.hasEdge(u, v) {
		return
	}
	g.setEdge(u, v, edgeAttr{})
}

// AddWeightedEdge inserts the undirected edge (u,v) carrying weight w,
// creating both endpoints as needed. Re-adding an existing edge overwrites
// its weight. Negative or NaN weights are rejected with ErrBadWeight.
// Complexity: O(1)
func (g *Graph[N]) AddWeightedEdge(u, v N, w float64) error {
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("core: weight %v for edge %v–%v: %w", w, u, v, ErrBadWeight)
	}
	g.setEdge(u, v, edgeAttr{weight: w, weighted: true})

	return nil
}

// setEdge stores attr for the edge (u,v) in both adjacency directions
// (once for a self-loop) and bumps the edge count for new edges.
func (g *Graph[N]) setEdge(u, v N, attr edgeAttr) {
	g.nodes[u] = struct{}{}
	g.nodes[v] = struct{}{}

	if !g.hasEdge(u, v) {
		g.edgeCount++
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[N]edgeAttr)
	}
	g.adj[u][v] = attr
	if u != v {
		if g.adj[v] == nil {
			g.adj[v] = make(map[N]edgeAttr)
		}
		g.adj[v][u] = attr
	}
}

// hasEdge reports edge existence without the exported nil-safety contract.
func (g *Graph[N]) hasEdge(u, v N) bool {
	_, ok := g.adj[u][v]

	return ok
}

// HasNode reports whether node n is present in the graph.
// Complexity: O(1)
func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.nodes[n]

	return ok
}

// HasEdge reports whether the undirected edge (u,v) is present.
// Order-independent: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1)
func (g *Graph[N]) HasEdge(u, v N) bool {
	return g.hasEdge(u, v)
}

// Weight returns the weight attribute of edge (u,v).
// The boolean reports whether the edge carries a weight; it is false for an
// unweighted edge. A missing edge yields ErrEdgeNotFound.
// Complexity: O(1)
func (g *Graph[N]) Weight(u, v N) (float64, bool, error) {
	attr, ok := g.adj[u][v]
	if !ok {
		return 0, false, fmt.Errorf("core: edge %v–%v: %w", u, v, ErrEdgeNotFound)
	}

	return attr.weight, attr.weighted, nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph[N]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges (a self-loop counts once).
// Complexity: O(1)
func (g *Graph[N]) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns all nodes in unspecified order.
// Complexity: O(V)
func (g *Graph[N]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// Edges returns every undirected edge exactly once, in unspecified order.
// Each Edge reports its endpoints and, when present, its weight.
// Complexity: O(V + E)
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.edgeCount)
	// done marks nodes whose incident edges were all emitted; skipping them
	// on later adjacency rows emits each undirected edge exactly once.
	done := make(map[N]struct{}, len(g.adj))
	for u, row := range g.adj {
		for v, attr := range row {
			if _, seen := done[v]; seen {
				continue
			}
			out = append(out, Edge[N]{U: u, V: v, Weight: attr.weight, Weighted: attr.weighted})
		}
		done[u] = struct{}{}
	}

	return out
}

// TotalWeight returns the sum of all edge weights. Every edge must carry a
// weight; the first unweighted edge aborts with ErrMissingWeight.
// Complexity: O(V + E)
func (g *Graph[N]) TotalWeight() (float64, error) {
	var total float64
	for _, e := range g.Edges() {
		if !e.Weighted {
			return 0, fmt.Errorf("core: edge %v–%v: %w", e.U, e.V, ErrMissingWeight)
		}
		total += e.Weight
	}

	return total, nil
}
