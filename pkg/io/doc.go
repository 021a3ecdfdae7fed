// Package io reads edge lists and writes maintained orders.
//
// # Overview
//
// An edge list is an ordered sequence of weighted edges. Replaying it into an
// [order.Maintainer] reproduces the insertion sequence exactly, so the file
// order matters: the same edges in another order may collapse different
// cycles.
//
// # Edge List Formats
//
// The format is chosen by file extension. JSON (.json):
//
//	{
//	  "edges": [
//	    {"from": "A", "to": "B", "weight": 0.2},
//	    {"from": "B", "to": "C"}
//	  ]
//	}
//
// YAML (.yaml, .yml):
//
//	edges:
//	  - {from: A, to: B, weight: 0.2}
//	  - {from: B, to: C}
//
// TOML (.toml):
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 0.2
//
// # Edge Fields
//
// Required:
//   - from: source node name
//   - to: target node name
//
// Optional:
//   - weight: non-negative edge weight (defaults to [DefaultWeight])
//
// Records are validated before any edge reaches a store. Weight checks are
// left to the store so that negative weights surface as
// errors.ErrCodeNegativeWeight.
//
// # Import
//
// Use [ImportEdges] to read an edge list from a file path, or [ReadEdges] to
// read from any io.Reader. [Apply] replays edges into a maintainer.
//
//	edges, err := io.ImportEdges("graph.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := order.New(digraph.NewExact[string](), nil)
//	if err := io.Apply(m, edges, false); err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportOrderJSON] to write the current order to a file, or
// [WriteOrderJSON] to write to any io.Writer. The document lists every
// indexed node with its index and every visible edge with its weight. Its
// "edges" array uses the edge list schema, so an exported order can be
// re-imported with [ReadEdges].
//
// [order.Maintainer]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/order#Maintainer
package io
