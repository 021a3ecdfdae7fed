// Package digraph provides weighted directed graph stores that tolerate
// cycles.
//
// # Overview
//
// The stores keep a forward map (node -> successor -> weight) and a mirrored
// backward map (node -> predecessor -> weight). An edge lives in the forward
// map iff its mirror lives in the backward map with the same weight.
// Inserting the same (from, to) pair twice sums the weights instead of
// overwriting them.
//
// Two variants implement [Graph]:
//
//   - [Exact]: an edge whose weight is within [DefaultEpsilon] of zero is
//     deleted from both maps. Every stored edge is visible.
//   - [Threshold]: an edge is visible only while its weight is strictly
//     greater than a configured floor. Edges that decay to or below the
//     floor stay stored but are skipped by every query.
//
// The threshold store bounds the work spent on edges that keep cancelling
// each other under randomized insertion, at the price of forgetting a
// controlled amount of weight.
//
// # Cycle Collapse
//
// [Graph.RemoveCycle] takes an ordered node list whose closing edge runs from
// the last node back to the first. It subtracts the smallest weight on the
// cycle from every edge of the cycle, so at least one edge drops to exactly
// zero and the cycle is broken.
//
// # Validation
//
// Negative weights are rejected with [errors.ErrCodeNegativeWeight]; NaN and
// infinite weights with [errors.ErrCodeInvalidWeight]. Self-loops are ignored
// without error.
//
// # Concurrency
//
// Stores are not safe for concurrent use. Callers serialize all mutations
// and read only between completed calls.
//
// [errors.ErrCodeNegativeWeight]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/errors#ErrCodeNegativeWeight
// [errors.ErrCodeInvalidWeight]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/errors#ErrCodeInvalidWeight
package digraph
