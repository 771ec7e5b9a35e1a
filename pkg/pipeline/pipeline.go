// Package pipeline runs batch job files: GML to archive conversion,
// MAGFit input preparation, format export and feature conversion.
//
// # Usage
//
//	jobs, err := config.LoadJobs("jobs.toml")
//	if err != nil {
//	    return err
//	}
//	runner, err := pipeline.NewRunner(logger, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	report, err := runner.Run(ctx, jobs)
//
// Jobs run in a fixed order: every convert job, then magfit, export and
// features jobs, each group in file order. The first failing job stops the
// run; the report still lists the steps completed before it.
//
// Input graphs are loaded once per path and kept in an LRU cache, so a job
// file that converts, prepares and exports the same dataset parses it once.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/fsutil"
	"github.com/matzehuels/graphprep/pkg/graph"
	gio "github.com/matzehuels/graphprep/pkg/io"
	"github.com/matzehuels/graphprep/pkg/render"
)

// DefaultCacheSize is the number of parsed graphs kept in memory.
const DefaultCacheSize = 64

// Export formats beyond the graph file formats of package io.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ExportFormats lists every format accepted by [Export].
var ExportFormats = []string{
	string(gio.FormatAdjList),
	string(gio.FormatEdgeList),
	string(gio.FormatJSON),
	string(gio.FormatGML),
	FormatDOT,
	FormatSVG,
}

// ValidateExportFormat checks format against [ExportFormats].
func ValidateExportFormat(format string) error {
	for _, f := range ExportFormats {
		if format == f {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid export format %q (want one of %v)", format, ExportFormats)
}

// Export writes g to path in format. dot and svg render a node-link
// diagram; the other formats go through package io.
func Export(ctx context.Context, logger *log.Logger, g *graph.Graph, format, path string) error {
	if err := ValidateExportFormat(format); err != nil {
		return err
	}
	switch format {
	case FormatDOT:
		dot := render.ToDOT(g, render.Options{})
		return fsutil.WriteFile(logger, path, func(w io.Writer) error {
			_, err := io.WriteString(w, dot)
			return err
		})
	case FormatSVG:
		svg, err := render.RenderSVG(ctx, render.ToDOT(g, render.Options{}))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render %s", path)
		}
		return fsutil.WriteFile(logger, path, func(w io.Writer) error {
			_, err := w.Write(svg)
			return err
		})
	}
	return gio.Save(logger, g, path, gio.Format(format))
}

// Options configures a [Runner].
type Options struct {
	// BasePath is used by magfit jobs when the job file sets none.
	BasePath string
	// AttrMode is used by convert jobs when neither the job nor the job
	// file sets one.
	AttrMode string
	// CacheSize bounds the graph cache. Zero means DefaultCacheSize.
	CacheSize int
}

// Step records one completed job.
type Step struct {
	Kind     string
	Index    int
	Input    string
	Outputs  []string
	Duration time.Duration
}

func (s Step) String() string {
	return fmt.Sprintf("%s #%d", s.Kind, s.Index+1)
}

// Report summarizes a run.
type Report struct {
	RunID     string
	Steps     []Step
	CacheHits int
	Duration  time.Duration
}

// Outputs returns every written path in step order.
func (r *Report) Outputs() []string {
	var out []string
	for _, s := range r.Steps {
		out = append(out, s.Outputs...)
	}
	return out
}
