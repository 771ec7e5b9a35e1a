package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/graphprep/pkg/graph"
)

// ReadOptions selects the kind of graph built by the plain-text readers,
// which carry no directedness information of their own.
type ReadOptions struct {
	Directed   bool
	Multigraph bool
	// Comments starts a comment that runs to the end of the line.
	// Empty means "#".
	Comments string
}

func (o ReadOptions) comments() string {
	if o.Comments == "" {
		return "#"
	}
	return o.Comments
}

func (o ReadOptions) newGraph() *graph.Graph {
	var opts []graph.Option
	if o.Directed {
		opts = append(opts, graph.Directed())
	}
	if o.Multigraph {
		opts = append(opts, graph.Multigraph())
	}
	return graph.New(opts...)
}

// WriteEdgeList writes one "u v" line per edge, topology only.
//
// Edges are emitted in adjacency order: for each node in node order, its
// neighbors in insertion order. Undirected edges appear once, from the
// endpoint that comes first in node order. Parallel edges repeat.
func WriteEdgeList(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range adjacencyEdges(g) {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e[0], e[1]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadEdgeList parses whitespace-delimited "u v" lines. Columns after the
// second are ignored, as is everything after the comment marker. Nodes are
// added in order of first appearance. Repeated edges are dropped unless
// the graph is a multigraph.
func ReadEdgeList(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
	g := opts.newGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		tok := fields(sc.Text(), opts.comments())
		if len(tok) == 0 {
			continue
		}
		if len(tok) < 2 {
			return nil, fmt.Errorf("line %d: edge needs two nodes, got %q", lineNo, sc.Text())
		}
		if err := link(g, tok[0], tok[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return g, nil
}

// adjacencyEdges lists edges the way adjacency-based writers see them.
func adjacencyEdges(g *graph.Graph) [][2]string {
	var out [][2]string
	seen := make(map[string]bool, g.NodeCount())
	for _, u := range g.NodeIDs() {
		for _, v := range g.Neighbors(u) {
			if !g.IsDirected() && seen[v] {
				continue
			}
			out = append(out, [2]string{u, v})
		}
		seen[u] = true
	}
	return out
}

func fields(line, comments string) []string {
	if i := strings.Index(line, comments); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// link adds both endpoints if needed and the edge between them.
func link(g *graph.Graph, u, v string) error {
	for _, id := range []string{u, v} {
		if _, ok := g.Node(id); !ok {
			if err := g.AddNode(graph.Node{ID: id}); err != nil {
				return err
			}
		}
	}
	if g.HasEdge(u, v) && !g.IsMultigraph() {
		return nil
	}
	return g.AddEdge(graph.Edge{From: u, To: v})
}
