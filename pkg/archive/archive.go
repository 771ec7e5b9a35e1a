package archive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/graph"
	"github.com/matzehuels/graphprep/pkg/sparse"
)

// Field names stored in an archive.
const (
	FieldAdjData     = "adj_data"
	FieldAdjIndices  = "adj_indices"
	FieldAdjIndptr   = "adj_indptr"
	FieldAdjShape    = "adj_shape"
	FieldAttrData    = "attr_data"
	FieldAttrIndices = "attr_indices"
	FieldAttrIndptr  = "attr_indptr"
	FieldAttrShape   = "attr_shape"
	FieldLabels      = "labels"
)

// DefaultValueKey is the node attribute holding labels.
const DefaultValueKey = "value"

// AttrMode selects how the attribute matrix is built.
type AttrMode string

const (
	AttrPlaceholder AttrMode = "placeholder"
	AttrValues      AttrMode = "values"
)

// ParseAttrMode validates an attribute mode name. Empty means
// [AttrPlaceholder].
func ParseAttrMode(s string) (AttrMode, error) {
	switch m := AttrMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return AttrPlaceholder, nil
	case AttrPlaceholder, AttrValues:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown attribute mode %q (want placeholder or values)", s)
}

// Options configures [FromGraph].
type Options struct {
	AttrMode AttrMode
	// ValueKey is the node attribute read for labels. Empty means "value".
	ValueKey string
	// WeightKey names the edge attribute used as the adjacency entry.
	// Empty means every edge counts 1.
	WeightKey string
}

func (o Options) valueKey() string {
	if o.ValueKey == "" {
		return DefaultValueKey
	}
	return o.ValueKey
}

// Archive is the in-memory form of a sparse archive.
type Archive struct {
	Adj    *sparse.CSR
	Attr   *sparse.CSR
	Labels []int64
}

// FromGraph builds the archive of g: its adjacency matrix, the integer
// value of every node that carries one, and the attribute matrix chosen by
// opts.AttrMode.
func FromGraph(g *graph.Graph, opts Options) (*Archive, error) {
	adj, err := sparse.FromGraph(g, sparse.AdjacencyOptions{WeightKey: opts.WeightKey})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "build adjacency matrix")
	}

	key := opts.valueKey()
	ids, raw := g.NodeAttr(key)
	labels := make([]int64, len(raw))
	for i, v := range raw {
		n, err := CoerceInt(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidAttribute, err, "node %s: %s", ids[i], key)
		}
		labels[i] = n
	}

	a := &Archive{Adj: adj, Labels: labels}
	switch opts.AttrMode {
	case AttrPlaceholder, "":
		a.Attr = placeholder()
	case AttrValues:
		a.Attr = valueColumn(g, ids, labels)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown attribute mode %q", opts.AttrMode)
	}
	return a, nil
}

// placeholder is the CSR form of [[0, 1]].
func placeholder() *sparse.CSR {
	m, _ := sparse.FromDense([][]float64{{0, 1}})
	return m
}

func valueColumn(g *graph.Graph, ids []string, labels []int64) *sparse.CSR {
	idx := g.Index()
	b := sparse.NewBuilder(g.NodeCount(), 1)
	for i, id := range ids {
		if labels[i] != 0 {
			_ = b.Add(idx[id], 0, float64(labels[i]))
		}
	}
	return b.Build()
}

// CoerceInt converts an attribute value to int64. Integers pass through,
// floats are truncated toward zero and strings are parsed after trimming
// surrounding space.
func CoerceInt(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x >= math.MaxInt64 || x < math.MinInt64 {
			return 0, fmt.Errorf("cannot convert %v to integer", x)
		}
		return int64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", x)
		}
		return n, nil
	}
	return 0, fmt.Errorf("cannot convert %T to integer", v)
}

// Fields returns the stored arrays by field name.
func (a *Archive) Fields() map[string]any {
	return map[string]any{
		FieldAdjData:     a.Adj.Data,
		FieldAdjIndices:  a.Adj.Indices,
		FieldAdjIndptr:   a.Adj.Indptr,
		FieldAdjShape:    a.Adj.Shape[:],
		FieldAttrData:    a.Attr.Data,
		FieldAttrIndices: a.Attr.Indices,
		FieldAttrIndptr:  a.Attr.Indptr,
		FieldAttrShape:   a.Attr.Shape[:],
		FieldLabels:      a.Labels,
	}
}

// fieldOrder is the order arrays are stored in.
var fieldOrder = []string{
	FieldAdjData, FieldAdjIndices, FieldAdjIndptr, FieldAdjShape,
	FieldAttrData, FieldAttrIndices, FieldAttrIndptr, FieldAttrShape,
	FieldLabels,
}
