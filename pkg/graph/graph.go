package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the graph is not a
	// multigraph and the edge already exists. For undirected graphs u-v and
	// v-u are the same edge.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Attrs stores arbitrary key-value pairs attached to nodes, edges, or the
// graph itself. Values are whatever the source format produced: int64,
// float64, string, or nested []any / Attrs for structured GML values.
type Attrs map[string]any

// Node is a vertex with a unique string ID and its attributes.
type Node struct {
	ID    string
	Attrs Attrs // never nil after AddNode
}

// Edge connects two nodes. For undirected graphs the orientation is the one
// the edge was added with.
type Edge struct {
	From  string
	To    string
	Attrs Attrs // never nil after AddEdge
}

// Graph is an attributed graph that remembers insertion order.
//
// Node order is significant: it defines matrix row order, label order, and
// the order writers emit nodes in. Edge order is the order edges were added.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	directed   bool
	multigraph bool

	order []string
	nodes map[string]*Node
	edges []Edge
	adj   map[string][]string // nodeID -> neighbor IDs (successors if directed)
	pred  map[string][]string // nodeID -> predecessor IDs (directed only)
	seen  map[[2]string]int   // edge key -> multiplicity
	attrs Attrs
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// Directed makes edges ordered pairs.
func Directed() Option { return func(g *Graph) { g.directed = true } }

// Multigraph allows parallel edges between the same pair of nodes.
func Multigraph() Option { return func(g *Graph) { g.multigraph = true } }

// New creates an empty undirected simple graph, adjusted by opts.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]string),
		pred:  make(map[string][]string),
		seen:  make(map[[2]string]int),
		attrs: Attrs{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsDirected reports whether edges are ordered pairs.
func (g *Graph) IsDirected() bool { return g.directed }

// IsMultigraph reports whether parallel edges are allowed.
func (g *Graph) IsMultigraph() bool { return g.multigraph }

// Attrs returns the graph-level attribute map. It is never nil.
func (g *Graph) Attrs() Attrs { return g.attrs }

// Name returns the graph-level "name" attribute as a string, or "".
func (g *Graph) Name() string {
	if s, ok := g.attrs["name"].(string); ok {
		return s
	}
	return ""
}

// AddNode appends a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge appends an edge between two existing nodes.
//
// Simple graphs reject an edge that already exists with ErrDuplicateEdge;
// multigraphs keep every parallel edge.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	key := g.edgeKey(e.From, e.To)
	if g.seen[key] > 0 && !g.multigraph {
		return ErrDuplicateEdge
	}
	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	g.seen[key]++
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], e.To)
	if g.directed {
		g.pred[e.To] = append(g.pred[e.To], e.From)
	} else if e.From != e.To {
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}
	return nil
}

func (g *Graph) edgeKey(u, v string) [2]string {
	if !g.directed && v < u {
		u, v = v, u
	}
	return [2]string{u, v}
}

// HasEdge reports whether at least one edge u->v exists (u-v if undirected).
func (g *Graph) HasEdge(u, v string) bool { return g.seen[g.edgeKey(u, v)] > 0 }

// Multiplicity returns how many parallel edges connect u and v.
func (g *Graph) Multiplicity(u, v string) int { return g.seen[g.edgeKey(u, v)] }

// Nodes returns all nodes in insertion order. The pointers refer to the
// graph's own nodes.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeIDs returns node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges, counting parallel edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the IDs adjacent to id: successors for directed graphs,
// all incident nodes for undirected graphs. Parallel edges repeat the
// neighbor. The order is edge insertion order. Treat the slice as read-only.
func (g *Graph) Neighbors(id string) []string { return g.adj[id] }

// Predecessors returns the IDs with an edge into id. Undirected graphs
// return the same as Neighbors.
func (g *Graph) Predecessors(id string) []string {
	if !g.directed {
		return g.adj[id]
	}
	return g.pred[id]
}

// Degree returns the number of neighbor entries of id (out-degree if
// directed). A self-loop in an undirected graph counts once.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// NodeAttr collects the attribute key for every node that has it, in node
// order. Nodes without the attribute are skipped.
func (g *Graph) NodeAttr(key string) (ids []string, values []any) {
	for _, id := range g.order {
		if v, ok := g.nodes[id].Attrs[key]; ok {
			ids = append(ids, id)
			values = append(values, v)
		}
	}
	return ids, values
}

// AttrKeys returns the sorted union of node attribute keys.
func (g *Graph) AttrKeys() []string {
	keys := map[string]struct{}{}
	for _, n := range g.nodes {
		for k := range n.Attrs {
			keys[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(keys))
}

// Index returns a map from node ID to its position in node order.
func (g *Graph) Index() map[string]int {
	idx := make(map[string]int, len(g.order))
	for i, id := range g.order {
		idx[id] = i
	}
	return idx
}
