// Package render draws dataset graphs as node-link diagrams.
//
// [ToDOT] emits Graphviz DOT text: a digraph with "->" edges for directed
// graphs, a graph with "--" edges otherwise. Nodes appear in node order and
// are labeled with their ID; [Options.Detailed] appends every node
// attribute, sorted by key.
//
// [RenderSVG] lays out DOT text with the embedded Graphviz engine
// (go-graphviz, no system install needed) and returns SVG bytes:
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// Layout cost grows quickly with graph size, so rendering is meant for
// inspecting small datasets rather than full crawls.
package render
