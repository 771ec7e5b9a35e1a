package gml

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/graphprep/pkg/graph"
)

// WriteFile writes g to a GML file at path.
func WriteFile(g *graph.Graph, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(g, f)
}

// Write encodes g as GML. Nodes get sequential ids in node order and keep
// their identifier as "label". Attribute keys are written in sorted order
// so output is deterministic. The result can be read back with [Read] using
// the default options.
func Write(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	ew.line(0, "graph [")
	if g.IsDirected() {
		ew.line(1, "directed 1")
	}
	if g.IsMultigraph() {
		ew.line(1, "multigraph 1")
	}
	writeAttrs(ew, 1, g.Attrs())

	idx := g.Index()
	for i, n := range g.Nodes() {
		ew.line(1, "node [")
		ew.line(2, "id "+strconv.Itoa(i))
		ew.line(2, "label "+quote(n.ID))
		writeAttrs(ew, 2, without(n.Attrs, "id", "label"))
		ew.line(1, "]")
	}
	for _, e := range g.Edges() {
		ew.line(1, "edge [")
		ew.line(2, "source "+strconv.Itoa(idx[e.From]))
		ew.line(2, "target "+strconv.Itoa(idx[e.To]))
		writeAttrs(ew, 2, without(e.Attrs, "source", "target"))
		ew.line(1, "]")
	}
	ew.line(0, "]")

	if ew.err != nil {
		return fmt.Errorf("write: %w", ew.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func without(a graph.Attrs, keys ...string) graph.Attrs {
	out := maps.Clone(a)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func writeAttrs(ew *errWriter, depth int, attrs graph.Attrs) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		writeValue(ew, depth, k, attrs[k])
	}
}

func writeValue(ew *errWriter, depth int, key string, v any) {
	switch x := v.(type) {
	case []any:
		for _, item := range x {
			writeValue(ew, depth, key, item)
		}
	case graph.Attrs:
		ew.line(depth, key+" [")
		writeAttrs(ew, depth+1, x)
		ew.line(depth, "]")
	case map[string]any:
		writeValue(ew, depth, key, graph.Attrs(x))
	default:
		ew.line(depth, key+" "+scalar(v))
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case float64:
		return formatReal(x)
	case float32:
		return formatReal(float64(x))
	case bool:
		if x {
			return "1"
		}
		return "0"
	case string:
		return quote(x)
	default:
		return quote(fmt.Sprint(v))
	}
}

func formatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var escaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")

func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// errWriter remembers the first write error so the encoder body stays flat.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) line(depth int, s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.w.WriteString(strings.Repeat("  ", depth) + s + "\n")
}
