package gml

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/graphprep/pkg/graph"
)

const blogs = `
# two blogs and a link
graph [
  directed 1
  name "blogs"
  node [
    id 10
    label "a.blogspot.com"
    value 0
    source "Blogarama"
  ]
  node [
    id 11
    label "b.blogspot.com"
    value 1
  ]
  edge [
    source 10
    target 11
  ]
]
`

func TestRead(t *testing.T) {
	g, err := Read(strings.NewReader(blogs), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !g.IsDirected() {
		t.Error("graph should be directed")
	}
	if g.IsMultigraph() {
		t.Error("graph should not be a multigraph")
	}
	if got := g.NodeIDs(); !slices.Equal(got, []string{"a.blogspot.com", "b.blogspot.com"}) {
		t.Errorf("NodeIDs() = %v", got)
	}
	if g.Name() != "blogs" {
		t.Errorf("Name() = %q", g.Name())
	}

	n, _ := g.Node("a.blogspot.com")
	if n.Attrs["value"] != int64(0) {
		t.Errorf("value = %#v, want int64(0)", n.Attrs["value"])
	}
	if n.Attrs["source"] != "Blogarama" {
		t.Errorf("source = %#v", n.Attrs["source"])
	}
	if _, ok := n.Attrs["label"]; ok {
		t.Error("label should be consumed as the node identifier")
	}
	if _, ok := n.Attrs["id"]; ok {
		t.Error("id should not be kept as an attribute")
	}
	if !g.HasEdge("a.blogspot.com", "b.blogspot.com") {
		t.Error("missing edge a -> b")
	}
}

func TestReadLabelID(t *testing.T) {
	g, err := Read(strings.NewReader(blogs), Options{Label: LabelID})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := g.NodeIDs(); !slices.Equal(got, []string{"10", "11"}) {
		t.Errorf("NodeIDs() = %v", got)
	}
	n, _ := g.Node("10")
	if n.Attrs["label"] != "a.blogspot.com" {
		t.Errorf("label attr = %#v", n.Attrs["label"])
	}
}

func TestReadValues(t *testing.T) {
	src := `graph [
  node [ id 0 label "x" r 1.5 e 2E3 inf -INF nan NAN s "a &amp; b" pos [ x 1 y 2 ] tag 1 tag 2 ]
]`
	g, err := Read(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	n, _ := g.Node("x")

	if n.Attrs["r"] != 1.5 {
		t.Errorf("r = %#v", n.Attrs["r"])
	}
	if n.Attrs["e"] != 2000.0 {
		t.Errorf("e = %#v", n.Attrs["e"])
	}
	if f, ok := n.Attrs["inf"].(float64); !ok || !math.IsInf(f, -1) {
		t.Errorf("inf = %#v", n.Attrs["inf"])
	}
	if f, ok := n.Attrs["nan"].(float64); !ok || !math.IsNaN(f) {
		t.Errorf("nan = %#v", n.Attrs["nan"])
	}
	if n.Attrs["s"] != "a & b" {
		t.Errorf("s = %#v", n.Attrs["s"])
	}
	pos, ok := n.Attrs["pos"].(graph.Attrs)
	if !ok || pos["x"] != int64(1) || pos["y"] != int64(2) {
		t.Errorf("pos = %#v", n.Attrs["pos"])
	}
	tags, ok := n.Attrs["tag"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("tag = %#v", n.Attrs["tag"])
	}
}

func TestReadMultigraph(t *testing.T) {
	src := `graph [ multigraph 1
  node [ id 0 label "a" ] node [ id 1 label "b" ]
  edge [ source 0 target 1 ] edge [ source 0 target 1 key 1 ]
]`
	g, err := Read(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
	for _, e := range g.Edges() {
		if _, ok := e.Attrs["key"]; ok {
			t.Error("multigraph edge key should not be an attribute")
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"NoGraph", `node [ id 0 ]`, ErrNoGraph},
		{"TwoGraphs", `graph [ ] graph [ ]`, ErrNoGraph},
		{"Unclosed", `graph [ node [ id 0 label "a" ]`, ErrSyntax},
		{"StrayClose", `graph [ ] ]`, ErrSyntax},
		{"UnterminatedString", `graph [ name "abc ]`, ErrSyntax},
		{"BadChar", `graph [ name @ ]`, ErrSyntax},
		{"MissingValue", `graph [ name ]`, ErrSyntax},
		{"MissingID", `graph [ node [ label "a" ] ]`, ErrMissingNodeID},
		{"MissingLabel", `graph [ node [ id 0 ] ]`, ErrMissingLabel},
		{"DuplicateLabel", `graph [ node [ id 0 label "a" ] node [ id 1 label "a" ] ]`, graph.ErrDuplicateNodeID},
		{"DuplicateID", `graph [ node [ id 0 label "a" ] node [ id 0 label "b" ] ]`, graph.ErrDuplicateNodeID},
		{"MissingEndpoint", `graph [ node [ id 0 label "a" ] edge [ source 0 ] ]`, ErrMissingEndpoint},
		{"UnknownEndpoint", `graph [ node [ id 0 label "a" ] edge [ source 0 target 9 ] ]`, ErrUnknownEndpoint},
		{"DuplicateEdge", `graph [ node [ id 0 label "a" ] node [ id 1 label "b" ]
			edge [ source 0 target 1 ] edge [ source 1 target 0 ] ]`, graph.ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src), Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("Read error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	g, err := Read(strings.NewReader(blogs), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	back, err := Read(&buf, Options{})
	if err != nil {
		t.Fatalf("re-Read: %v\n%s", err, buf.String())
	}
	if !slices.Equal(back.NodeIDs(), g.NodeIDs()) {
		t.Errorf("NodeIDs = %v, want %v", back.NodeIDs(), g.NodeIDs())
	}
	if back.EdgeCount() != g.EdgeCount() || !back.IsDirected() {
		t.Errorf("edges = %d directed = %v", back.EdgeCount(), back.IsDirected())
	}
	n, _ := back.Node("b.blogspot.com")
	if n.Attrs["value"] != int64(1) {
		t.Errorf("value = %#v", n.Attrs["value"])
	}
}

func TestWriteFormat(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: `say "hi"`, Attrs: graph.Attrs{"w": 2.0}})

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "graph [\n  node [\n    id 0\n    label \"say &quot;hi&quot;\"\n    w 2.0\n  ]\n]\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}
