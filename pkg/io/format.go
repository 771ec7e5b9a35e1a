package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/fsutil"
	"github.com/matzehuels/graphprep/pkg/gml"
	"github.com/matzehuels/graphprep/pkg/graph"
)

// Format names a graph file format.
type Format string

// Supported graph formats.
const (
	FormatGML      Format = "gml"
	FormatJSON     Format = "json"
	FormatAdjList  Format = "adjlist"
	FormatEdgeList Format = "edgelist"
)

// Formats lists every format accepted by [ParseFormat].
var Formats = []Format{FormatGML, FormatJSON, FormatAdjList, FormatEdgeList}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", s)
}

// DetectFormat picks a format from the file extension: .gml, .json,
// .adjlist, and .edgelist/.edges/.txt.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gml":
		return FormatGML, nil
	case ".json":
		return FormatJSON, nil
	case ".adjlist", ".adj":
		return FormatAdjList, nil
	case ".edgelist", ".edges", ".txt":
		return FormatEdgeList, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect graph format of %s", path)
}

// LoadOptions configures [Load].
type LoadOptions struct {
	// Format overrides extension-based detection.
	Format Format
	// GML configures the GML reader.
	GML gml.Options
	// Text configures the edge-list and adjacency-list readers.
	Text ReadOptions
}

// Load reads a graph file. A missing file is reported as ErrCodeFileNotFound.
func Load(path string, opts LoadOptions) (*graph.Graph, error) {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", path)
	}
	defer f.Close()

	var g *graph.Graph
	switch format {
	case FormatGML:
		g, err = gml.Read(f, opts.GML)
	case FormatJSON:
		g, err = ReadJSON(f)
	case FormatAdjList:
		g, err = ReadAdjList(f, opts.Text)
	case FormatEdgeList:
		g, err = ReadEdgeList(f, opts.Text)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s as %s", path, format)
	}
	return g, nil
}

// Encode writes g to w in the given format.
func Encode(g *graph.Graph, w io.Writer, format Format) error {
	switch format {
	case FormatGML:
		return gml.Write(g, w)
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatAdjList:
		return WriteAdjList(g, w, AdjListOptions{})
	case FormatEdgeList:
		return WriteEdgeList(g, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", format)
}

// Save writes g to path in the given format, creating the parent directory.
func Save(logger *log.Logger, g *graph.Graph, path string, format Format) error {
	return fsutil.WriteFile(logger, path, func(w io.Writer) error {
		return Encode(g, w, format)
	})
}

// SaveAdjList writes g as an adjacency list to dir/filename, creating dir
// first. It returns the written path.
func SaveAdjList(logger *log.Logger, g *graph.Graph, dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	if err := Save(logger, g, path, FormatAdjList); err != nil {
		return "", fmt.Errorf("save adjacency list: %w", err)
	}
	return path, nil
}
