package graph_test

import (
	"fmt"

	"github.com/matzehuels/graphprep/pkg/graph"
)

func ExampleGraph() {
	g := graph.New(graph.Directed())
	_ = g.AddNode(graph.Node{ID: "blog-a", Attrs: graph.Attrs{"value": int64(0)}})
	_ = g.AddNode(graph.Node{ID: "blog-b", Attrs: graph.Attrs{"value": int64(1)}})
	_ = g.AddEdge(graph.Edge{From: "blog-a", To: "blog-b"})

	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Successors of blog-a:", g.Neighbors("blog-a"))
	// Output:
	// Nodes: [blog-a blog-b]
	// Edges: 1
	// Successors of blog-a: [blog-b]
}
