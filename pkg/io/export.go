package io

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/order"
)

type orderDocument struct {
	Nodes []nodeIndex  `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

type nodeIndex struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// WriteOrderJSON encodes the maintainer's order as JSON and writes it to w.
// Nodes are listed by ascending index; edges by the index of their source,
// then of their target.
func WriteOrderJSON(m *order.Maintainer[string], w io.Writer) error {
	nodes := m.Order()
	out := orderDocument{
		Nodes: make([]nodeIndex, len(nodes)),
		Edges: []edgeRecord{},
	}
	for i, n := range nodes {
		idx, _ := m.Index(n)
		out.Nodes[i] = nodeIndex{ID: n, Index: idx}
	}

	edges := digraph.Edges(m.Graph())
	slices.SortFunc(edges, func(a, b digraph.Edge[string]) int {
		ia, _ := m.Index(a.From)
		ib, _ := m.Index(b.From)
		if c := cmp.Compare(ia, ib); c != 0 {
			return c
		}
		ia, _ = m.Index(a.To)
		ib, _ = m.Index(b.To)
		return cmp.Compare(ia, ib)
	})
	for _, e := range edges {
		w := e.Weight
		out.Edges = append(out.Edges, edgeRecord{From: e.From, To: e.To, Weight: &w})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportOrderJSON writes the maintainer's order to a JSON file at path.
// This is a convenience wrapper around [WriteOrderJSON] for file-based output.
func ExportOrderJSON(m *order.Maintainer[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteOrderJSON(m, f)
}
