package sparse

import (
	"errors"
	"fmt"

	"github.com/matzehuels/graphprep/pkg/graph"
)

// ErrWeight is returned when an edge weight attribute is not numeric.
var ErrWeight = errors.New("sparse: edge weight is not numeric")

// AdjacencyOptions configures [FromGraph].
type AdjacencyOptions struct {
	// WeightKey names the edge attribute holding the entry value. Empty
	// means every edge contributes 1. Edges without the attribute also
	// contribute 1.
	WeightKey string
}

// FromGraph builds the N×N adjacency matrix of g with rows and columns in
// node order.
//
// Parallel edges are summed. Undirected edges are mirrored, except
// self-loops, which are stored once on the diagonal.
func FromGraph(g *graph.Graph, opts AdjacencyOptions) (*CSR, error) {
	n := g.NodeCount()
	idx := g.Index()
	b := NewBuilder(n, n)

	for _, e := range g.Edges() {
		w, err := edgeWeight(e, opts.WeightKey)
		if err != nil {
			return nil, err
		}
		u, v := idx[e.From], idx[e.To]
		if err := b.Add(u, v, w); err != nil {
			return nil, err
		}
		if !g.IsDirected() && u != v {
			if err := b.Add(v, u, w); err != nil {
				return nil, err
			}
		}
	}
	return b.Build(), nil
}

func edgeWeight(e graph.Edge, key string) (float64, error) {
	if key == "" {
		return 1, nil
	}
	raw, ok := e.Attrs[key]
	if !ok {
		return 1, nil
	}
	switch w := raw.(type) {
	case int64:
		return float64(w), nil
	case int:
		return float64(w), nil
	case float64:
		return w, nil
	}
	return 0, fmt.Errorf("edge %s -> %s: %s=%v: %w", e.From, e.To, key, raw, ErrWeight)
}
