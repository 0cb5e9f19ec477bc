// Package tempograph is an in-memory toolkit for analyzing how communities
// in an evolving graph change between successive snapshots.
//
// 🚀 What is tempograph?
//
//	A small, focused library that brings together:
//		• Core primitives: a generic undirected snapshot graph with optional edge weights
//		• Distance metrics: Jaccard edge/node distance, weighted Tanimoto distance
//		• Estrangement: the weighted fraction of previously-co-community edges
//		  whose endpoints are no longer co-community
//		• Label matching: bipartite maximum-overlap matching with reciprocity,
//		  so stable communities keep a consistent identity over time
//		• Statistics: confidence-interval half-widths for repeated measurements
//
// ✨ Why choose tempograph?
//
//   - Deterministic – every tie-break is explicit; same inputs, same outputs
//   - Pure functions – no shared state, safe to run snapshot pairs in parallel
//   - Observable – injectable zerolog diagnostics that never affect results
//
// Everything is organized under six subpackages:
//
//	core/         — the Graph and Labeling types shared by all metrics
//	builder/      — deterministic Complete/Path/Cycle graph constructors
//	distance/     — edge-set, edge-weight and node-set snapshot distances
//	estrangement/ — the estrangement metric over a consort graph
//	matching/     — cross-snapshot community label reconciliation
//	stats/        — confidence intervals for metric samples
//
// A typical pipeline loads two snapshots and two partitions per time step,
// logs the distance and estrangement metrics, then feeds MatchLabels'
// output into the next iteration:
//
//	d, _ := distance.GraphDistance(g0, g1)
//	e, _ := estrangement.Estrangement(g1, labels, consort)
//	labels, _ = matching.MatchLabels(labels, prevLabels)
//
// Community detection itself, snapshot loading and consort-graph
// accumulation are the caller's job; tempograph only measures and renames.
//
//	go get github.com/katalvlaran/tempograph
package tempograph
