// Package nodelink renders a maintained order as a node-link diagram.
//
// # Overview
//
// This package produces directed graph drawings using Graphviz, where nodes
// appear as boxes connected by arrows. Nodes are laid out left to right in
// index order, so a consistent order draws every edge pointing right.
//
// # Usage
//
// Convert a maintainer to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the current index
//   - Weights: edges are labelled with their weight
//
// Hidden edges of a threshold store are never drawn.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering; no Graphviz installation is required.
package nodelink
