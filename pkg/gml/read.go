package gml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphprep/pkg/graph"
)

var (
	// ErrNoGraph is returned when the input has no top-level graph list,
	// or more than one.
	ErrNoGraph = errors.New("input must contain exactly one graph [...] list")

	// ErrMissingNodeID is returned for a node list without an id.
	ErrMissingNodeID = errors.New("node has no id")

	// ErrMissingLabel is returned when a node lacks the attribute chosen as
	// its identifier.
	ErrMissingLabel = errors.New("node has no label attribute")

	// ErrMissingEndpoint is returned for an edge without source or target.
	ErrMissingEndpoint = errors.New("edge has no source or target")

	// ErrUnknownEndpoint is returned when an edge references an id that no
	// node declared.
	ErrUnknownEndpoint = errors.New("edge references unknown node id")
)

// LabelID selects the numeric GML id as the node identifier.
const LabelID = "id"

// Options configures how GML lists become graph nodes.
type Options struct {
	// Label is the node attribute used as the node identifier. Empty means
	// "label". Use LabelID to keep the numeric ids. The chosen attribute is
	// removed from the node's attributes.
	Label string
}

func (o Options) label() string {
	if o.Label == "" {
		return "label"
	}
	return o.Label
}

// ReadFile reads a GML file at path.
func ReadFile(path string, opts Options) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses GML from r and builds a graph.
//
// The "directed" and "multigraph" keys select the graph kind. Every other
// graph-level key becomes a graph attribute. Node and edge lists keep all
// keys except the structural ones (id and the label key for nodes, source
// and target for edges, plus key for multigraph edges). Repeated keys
// collect into a []any, nested lists become graph.Attrs.
//
// Simple graphs reject repeated edges with graph.ErrDuplicateEdge; declare
// "multigraph 1" to keep them.
func Read(r io.Reader, opts Options) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	top, err := Parse(string(data))
	if err != nil {
		return nil, err
	}

	graphs := top.All("graph")
	if len(graphs) != 1 {
		return nil, ErrNoGraph
	}
	body, ok := graphs[0].(List)
	if !ok {
		return nil, ErrNoGraph
	}
	return build(body, opts)
}

func build(body List, opts Options) (*graph.Graph, error) {
	var gopts []graph.Option
	if flag(body, "directed") {
		gopts = append(gopts, graph.Directed())
	}
	multigraph := flag(body, "multigraph")
	if multigraph {
		gopts = append(gopts, graph.Multigraph())
	}
	g := graph.New(gopts...)

	ids := make(map[string]string) // GML id -> node identifier
	label := opts.label()

	for i, p := range body {
		switch p.Key {
		case "directed", "multigraph":
			continue
		case "node":
			nl, ok := p.Value.(List)
			if !ok {
				return nil, fmt.Errorf("node #%d: expected list: %w", i, ErrSyntax)
			}
			if err := addNode(g, nl, label, ids); err != nil {
				return nil, err
			}
		case "edge":
		default:
			g.Attrs()[p.Key] = mergeValue(g.Attrs()[p.Key], convert(p.Value))
		}
	}

	edgeNo := 0
	for _, p := range body {
		if p.Key != "edge" {
			continue
		}
		el, ok := p.Value.(List)
		if !ok {
			return nil, fmt.Errorf("edge #%d: expected list: %w", edgeNo, ErrSyntax)
		}
		if err := addEdge(g, el, ids, multigraph, edgeNo); err != nil {
			return nil, err
		}
		edgeNo++
	}
	return g, nil
}

func addNode(g *graph.Graph, nl List, label string, ids map[string]string) error {
	rawID, ok := nl.Get("id")
	if !ok {
		return ErrMissingNodeID
	}
	gmlID := fmt.Sprint(rawID)
	if _, dup := ids[gmlID]; dup {
		return fmt.Errorf("node id %s: %w", gmlID, graph.ErrDuplicateNodeID)
	}

	nodeID := gmlID
	if label != LabelID {
		v, ok := nl.Get(label)
		if !ok {
			return fmt.Errorf("node id %s: %w (%q)", gmlID, ErrMissingLabel, label)
		}
		nodeID = fmt.Sprint(v)
	}

	attrs := graph.Attrs{}
	for _, p := range nl {
		if p.Key == "id" || p.Key == label {
			continue
		}
		attrs[p.Key] = mergeValue(attrs[p.Key], convert(p.Value))
	}
	if err := g.AddNode(graph.Node{ID: nodeID, Attrs: attrs}); err != nil {
		return fmt.Errorf("node %q: %w", nodeID, err)
	}
	ids[gmlID] = nodeID
	return nil
}

func addEdge(g *graph.Graph, el List, ids map[string]string, multigraph bool, n int) error {
	src, okS := el.Get("source")
	dst, okT := el.Get("target")
	if !okS || !okT {
		return fmt.Errorf("edge #%d: %w", n, ErrMissingEndpoint)
	}
	from, ok := ids[fmt.Sprint(src)]
	if !ok {
		return fmt.Errorf("edge #%d: source %v: %w", n, src, ErrUnknownEndpoint)
	}
	to, ok := ids[fmt.Sprint(dst)]
	if !ok {
		return fmt.Errorf("edge #%d: target %v: %w", n, dst, ErrUnknownEndpoint)
	}

	attrs := graph.Attrs{}
	for _, p := range el {
		switch {
		case p.Key == "source" || p.Key == "target":
			continue
		case p.Key == "key" && multigraph:
			continue
		}
		attrs[p.Key] = mergeValue(attrs[p.Key], convert(p.Value))
	}
	if err := g.AddEdge(graph.Edge{From: from, To: to, Attrs: attrs}); err != nil {
		return fmt.Errorf("edge #%d (%s -> %s): %w", n, from, to, err)
	}
	return nil
}

// flag reports whether key holds the integer 1.
func flag(l List, key string) bool {
	v, ok := l.Get(key)
	if !ok {
		return false
	}
	i, ok := v.(int64)
	return ok && i == 1
}

// convert turns nested lists into attribute maps.
func convert(v any) any {
	l, ok := v.(List)
	if !ok {
		return v
	}
	m := graph.Attrs{}
	for _, p := range l {
		m[p.Key] = mergeValue(m[p.Key], convert(p.Value))
	}
	return m
}

// mergeValue appends v to a repeated key, promoting the first value to a
// slice on the first repeat.
func mergeValue(existing, v any) any {
	switch e := existing.(type) {
	case nil:
		return v
	case []any:
		return append(e, v)
	default:
		return []any{e, v}
	}
}
