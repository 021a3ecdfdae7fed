// Package order incrementally maintains a topological numbering of a
// weighted directed graph while edges are inserted one at a time.
//
// # Overview
//
// A [Maintainer] owns a map from node to integer index. After every
// insertion that was not cancelled by a cycle collapse, every visible edge
// (u, v) of the underlying [digraph.Graph] satisfies index(u) < index(v).
// Indices are not contiguous: brand-new nodes are placed above the current
// maximum or below the current minimum without touching anybody else.
//
//	g := digraph.NewExact[string]()
//	m := order.New[string](g, nil)
//	_ = m.AddEdge("app", "lib", 1)
//	_ = m.AddEdge("lib", "core", 1)
//	m.Before("app", "core") // true
//
// # Reordering
//
// An edge (from, to) with index(from) >= index(to) triggers a bidirectional
// search. A forward frontier grows from to along successors whose index is
// below index(from); a backward frontier grows from from along predecessors
// whose index is above index(to). Forward frontiers pop the lowest index
// first and backward frontiers the highest, so the search covers the
// affected region between the two endpoints and nothing else.
//
// When the search finishes, the nodes reached backward are moved into the
// lowest index slots the reached nodes occupied and the nodes reached
// forward into the highest, each group keeping its relative order. No other
// index changes.
//
// # Cycles
//
// When the two frontiers meet, the inserted edge closes a cycle. The cycle
// is handed to [digraph.Graph.RemoveCycle], which subtracts the smallest
// weight on it from every cycle edge, and the search restarts. The loop ends
// once a search completes without meeting itself or once the inserted edge
// is no longer visible. Each collapse drives at least one edge to zero, so
// the loop terminates.
//
// An edge that closes several cycles at once has them collapsed in the order
// the search happens to find them, which depends on map iteration order. The
// surviving graph may differ between runs; the order invariant does not.
//
// # Checking
//
// [CheckAll] verifies the order invariant over every visible edge in both
// directions. It is meant for tests and for the CLI's --check flag, not for
// the insertion path.
//
// # Concurrency
//
// A Maintainer is not safe for concurrent use. AddEdge mutates the index map
// and the graph in several steps and intermediate states violate the
// invariant. Callers serialize all AddEdge calls and read only between them.
package order
