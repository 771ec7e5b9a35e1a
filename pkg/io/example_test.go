package io_test

import (
	"os"

	"github.com/matzehuels/graphprep/pkg/graph"
	gio "github.com/matzehuels/graphprep/pkg/io"
)

func ExampleWriteEdgeList() {
	g := graph.New()
	for _, id := range []string{"0", "1", "2"} {
		_ = g.AddNode(graph.Node{ID: id})
	}
	_ = g.AddEdge(graph.Edge{From: "0", To: "1"})
	_ = g.AddEdge(graph.Edge{From: "1", To: "2"})

	_ = gio.WriteEdgeList(g, os.Stdout)
	// Output:
	// 0 1
	// 1 2
}

func ExampleWriteAdjList() {
	g := graph.New()
	for _, id := range []string{"0", "1", "2"} {
		_ = g.AddNode(graph.Node{ID: id})
	}
	_ = g.AddEdge(graph.Edge{From: "0", To: "1"})
	_ = g.AddEdge(graph.Edge{From: "0", To: "2"})

	_ = gio.WriteAdjList(g, os.Stdout, gio.AdjListOptions{NoHeader: true})
	// Output:
	// 0 1 2
	// 1
	// 2
}
