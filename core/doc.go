// Package core defines the snapshot data model shared by every metric in
// tempograph: a generic undirected Graph with optional per-edge weights,
// and the Labeling map that assigns each node to a community.
//
// A Graph holds a set of nodes (any comparable type) and a set of
// undirected edges. Edge identity is order-independent: (u,v) and (v,u)
// name the same edge. Self-loops are ordinary edges. Each edge may carry a
// non-negative float64 weight; an edge without a weight is distinct from an
// edge with weight zero, mirroring the optional-attribute model of the
// snapshot sources this library consumes.
//
// Concurrency:
//
//	Graphs have no internal locking. All metric computations in this
//	module treat their inputs as read-only, so a Graph is safe to share
//	across concurrent metric calls as long as no goroutine mutates it
//	at the same time.
//
// Errors (sentinel):
//
//	– ErrBadWeight      if a negative or NaN weight is supplied.
//	– ErrEdgeNotFound   if a weight lookup names a missing edge.
//	– ErrMissingWeight  if a weight-summing operation meets an unweighted edge.
package core
