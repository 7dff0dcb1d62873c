// Package render draws the link graph of a network with Graphviz.
//
// [ToDOT] produces an undirected DOT graph with one node per station and
// one edge per link. [RenderSVG] lays it out with the embedded Graphviz
// engine (goccy/go-graphviz), so no external binaries are needed.
//
//	dot := render.ToDOT(n, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(ctx, dot)
package render
