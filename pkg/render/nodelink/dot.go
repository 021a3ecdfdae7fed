package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/order"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds each node's current index to its label.
	// When false, only the node name is shown.
	Detailed bool
	// Weights labels every edge with its weight.
	Weights bool
}

// ToDOT converts the maintained graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Nodes are emitted in index order and laid out left to right, so a valid
// order draws every edge pointing rightwards. Isolated nodes are kept: a node
// whose edges were all cancelled still holds an index.
func ToDOT[N comparable](m *order.Maintainer[N], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range m.Order() {
		id := fmt.Sprint(n)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmtLabel(m, n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range sortedEdges(m) {
		attrs := ""
		if opts.Weights {
			attrs = fmt.Sprintf(" [label=%q]", strconv.FormatFloat(e.Weight, 'g', 4, 64))
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", fmt.Sprint(e.From), fmt.Sprint(e.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel[N comparable](m *order.Maintainer[N], n N, detailed bool) string {
	if !detailed {
		return fmt.Sprint(n)
	}
	idx, _ := m.Index(n)
	return fmt.Sprintf("%v\n#%d", n, idx)
}

func sortedEdges[N comparable](m *order.Maintainer[N]) []digraph.Edge[N] {
	edges := digraph.Edges(m.Graph())
	slices.SortFunc(edges, func(a, b digraph.Edge[N]) int {
		ia, _ := m.Index(a.From)
		ib, _ := m.Index(b.From)
		if c := cmp.Compare(ia, ib); c != 0 {
			return c
		}
		ia, _ = m.Index(a.To)
		ib, _ = m.Index(b.To)
		return cmp.Compare(ia, ib)
	})
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's <svg> tag with one whose viewBox
// starts at the origin, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
