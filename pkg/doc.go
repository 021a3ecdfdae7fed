// Package pkg provides the core libraries for toporder.
//
// # Overview
//
// toporder keeps the nodes of a weighted directed graph in topological order
// while edges are inserted one at a time. When an insertion closes a cycle,
// the cycle is collapsed by subtracting its lightest weight from every edge
// on it, which removes at least one edge. The pkg directory is organized
// into these areas:
//
//  1. [digraph] - Weighted edge stores (exact and threshold visibility)
//  2. [order] - Incremental order maintenance and the invariant checker
//  3. [io] - Edge list import (JSON, YAML, TOML) and order export
//  4. [render/nodelink] - Graphviz diagrams of a maintained order
//  5. [bench] - Randomized insertion runs and parameter grids
//  6. [metrics], [observability] - Prometheus metrics fed by insertion hooks
//
// # Architecture
//
// The typical data flow through toporder:
//
//	Edge list (file or generator)
//	         ↓
//	    [io] or [bench] (edges with weights)
//	         ↓
//	    [order] Maintainer.AddEdge ──→ [digraph] store
//	         ↓
//	    order / JSON / DOT / SVG
//
// # Quick Start
//
//	g := digraph.NewExact[string]()
//	m := order.New[string](g, nil)
//
//	m.AddEdge("A", "B", 1)
//	m.AddEdge("C", "D", 1)
//	m.AddEdge("D", "A", 1) // reorders C and D below A
//
//	fmt.Println(m.Order()) // [C D A B]
//
// Cycles are collapsed rather than rejected:
//
//	m.AddEdge("B", "C", 0.5) // closes C -> D -> A -> B -> C
//	err := order.CheckAll(m) // nil: the order holds for every visible edge
//
// # Concurrency
//
// Stores and maintainers are not safe for concurrent use. Hook registration
// in [observability] is.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/order/...              # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [digraph]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/digraph
// [order]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/order
// [io]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/render/nodelink
// [bench]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/bench
// [metrics]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/metrics
// [observability]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/observability
package pkg
