// Package bench measures order maintenance under randomized insertion.
//
// # Overview
//
// A run inserts a fixed number of random edges between a fixed number of
// nodes and times the whole sequence. Endpoints are drawn uniformly; weights
// are drawn uniformly from (0, 1), redrawing values at or below
// [MinWeight]. Random graphs of this kind are dense with cycles, so a run
// exercises cycle collapse far more than reordering.
//
//	res, err := bench.Run(ctx, bench.Config{Nodes: 50, Edges: 2000, Store: digraph.KindThreshold, Floor: 10}, nil)
//
// [Grid] sweeps node and edge counts and averages repeated runs per cell,
// the shape used to plot insertion time against graph size.
//
// # Reproducibility
//
// A non-zero Seed makes a run repeatable: the same seed, sizes and store
// produce the same insertion sequence. Seed zero draws a fresh seed, which
// is reported in the [Result].
//
// # Cancellation
//
// Runs check their context between insertions. A single insertion always
// runs to completion.
package bench
