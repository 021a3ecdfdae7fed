// Package render groups the visual outputs of toporder.
//
// The [nodelink] subpackage renders a maintained order as a Graphviz
// diagram laid out left to right by index, so that every visible edge
// points rightwards while the order holds.
//
//	dot := nodelink.ToDOT(m, nodelink.Options{Weights: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/toporder/pkg/render/nodelink
package render
