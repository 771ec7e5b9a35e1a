package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/graphprep/pkg/graph"
)

type jsonGraph struct {
	Directed   bool        `json:"directed"`
	Multigraph bool        `json:"multigraph"`
	Graph      graph.Attrs `json:"graph,omitempty"`
	Nodes      []jsonNode  `json:"nodes"`
	Edges      []jsonEdge  `json:"edges"`
}

type jsonNode struct {
	ID    string      `json:"id"`
	Attrs graph.Attrs `json:"attrs,omitempty"`
}

type jsonEdge struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Attrs graph.Attrs `json:"attrs,omitempty"`
}

// WriteJSON encodes g as node-link JSON and writes it to w.
// Nodes and edges keep their graph order.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := jsonGraph{
		Directed:   g.IsDirected(),
		Multigraph: g.IsMultigraph(),
		Nodes:      make([]jsonNode, 0, g.NodeCount()),
		Edges:      make([]jsonEdge, 0, g.EdgeCount()),
	}
	if len(g.Attrs()) > 0 {
		out.Graph = g.Attrs()
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, jsonNode{ID: n.ID, Attrs: n.Attrs})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, jsonEdge{From: e.From, To: e.To, Attrs: e.Attrs})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes node-link JSON from r.
//
// Integral JSON numbers in attributes decode as int64, other numbers as
// float64, so a "value" attribute survives a GML -> JSON -> GML trip with
// its integer type.
//
// ReadJSON returns an error if the JSON is malformed, a node ID repeats, or
// an edge references an unknown node. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var data jsonGraph
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var opts []graph.Option
	if data.Directed {
		opts = append(opts, graph.Directed())
	}
	if data.Multigraph {
		opts = append(opts, graph.Multigraph())
	}
	g := graph.New(opts...)
	for k, v := range data.Graph {
		g.Attrs()[k] = normalize(v)
	}

	for _, n := range data.Nodes {
		if err := g.AddNode(graph.Node{ID: n.ID, Attrs: normalizeAttrs(n.Attrs)}); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(graph.Edge{From: e.From, To: e.To, Attrs: normalizeAttrs(e.Attrs)}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

func normalizeAttrs(a graph.Attrs) graph.Attrs {
	if a == nil {
		return nil
	}
	out := make(graph.Attrs, len(a))
	for k, v := range a {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		return normalizeAttrs(graph.Attrs(x))
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalize(item)
		}
		return out
	}
	return v
}
