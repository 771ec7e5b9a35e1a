// Package graph provides the in-memory graph model shared by every format
// reader and writer in graphprep.
//
// # Overview
//
// A [Graph] is an attributed, ordered graph. It can be directed or
// undirected, and simple or a multigraph. Readers (GML, edge list,
// adjacency list, node-link JSON) build a Graph; converters and writers
// consume it without mutating it.
//
// # Ordering
//
// Node insertion order is the canonical order. It determines:
//
//   - the row/column order of the sparse adjacency matrix
//   - the order of the label list extracted from node attributes
//   - the order in which writers emit nodes
//
// # Attributes
//
// Nodes, edges, and the graph carry an [Attrs] map. GML values are stored
// with their parsed type (int64, float64, string, or nested lists):
//
//	g := graph.New(graph.Directed())
//	_ = g.AddNode(graph.Node{ID: "a", Attrs: graph.Attrs{"value": int64(1)}})
//	_ = g.AddNode(graph.Node{ID: "b"})
//	_ = g.AddEdge(graph.Edge{From: "a", To: "b"})
//
// # Concurrency
//
// Graph is not safe for concurrent modification. Concurrent reads of a
// fully built Graph are safe.
package graph
