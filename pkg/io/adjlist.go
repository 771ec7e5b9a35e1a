package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/graphprep/pkg/graph"
)

// AdjListOptions configures [WriteAdjList].
type AdjListOptions struct {
	// NoHeader omits the three comment lines.
	NoHeader bool
	// Command is echoed in the first header line. Nil means os.Args.
	Command []string
	// Now is the timestamp in the second header line. Zero means time.Now.
	Now time.Time
}

// WriteAdjList writes g as an adjacency list: one line per node, the node
// followed by its neighbors, separated by spaces.
//
// The header is three comment lines: the command line, the UTC time, and
// the graph name. For undirected graphs an edge is listed only on the line
// of the endpoint that comes first in node order. Nodes without listed
// neighbors still get a line of their own. Parallel edges repeat the
// neighbor.
func WriteAdjList(g *graph.Graph, w io.Writer, opts AdjListOptions) error {
	bw := bufio.NewWriter(w)
	if !opts.NoHeader {
		cmd := opts.Command
		if cmd == nil {
			cmd = os.Args
		}
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		fmt.Fprintf(bw, "#%s\n", strings.Join(cmd, " "))
		fmt.Fprintf(bw, "# GMT %s\n", now.UTC().Format(time.ANSIC))
		fmt.Fprintf(bw, "# %s\n", g.Name())
	}

	seen := make(map[string]bool, g.NodeCount())
	for _, u := range g.NodeIDs() {
		line := []string{u}
		for _, v := range g.Neighbors(u) {
			if !g.IsDirected() && seen[v] {
				continue
			}
			line = append(line, v)
		}
		if !g.IsDirected() {
			seen[u] = true
		}
		if _, err := bw.WriteString(strings.Join(line, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadAdjList parses the format written by [WriteAdjList]. Comment lines and
// trailing comments are skipped. The first token of a line is the source
// node, the rest are its neighbors.
func ReadAdjList(r io.Reader, opts ReadOptions) (*graph.Graph, error) {
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
		u := tok[0]
		if _, ok := g.Node(u); !ok {
			if err := g.AddNode(graph.Node{ID: u}); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
		for _, v := range tok[1:] {
			if err := link(g, u, v); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return g, nil
}
