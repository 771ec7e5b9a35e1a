package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/graphprep/pkg/archive"
	"github.com/matzehuels/graphprep/pkg/config"
	"github.com/matzehuels/graphprep/pkg/graph"
	gio "github.com/matzehuels/graphprep/pkg/io"
	"github.com/matzehuels/graphprep/pkg/magfit"
	"github.com/matzehuels/graphprep/pkg/observability"
)

// Runner executes job files. It is meant for one goroutine at a time.
type Runner struct {
	Logger *log.Logger
	opts   Options
	graphs *lru.Cache[string, *graph.Graph]
	hits   int
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger, opts Options) (*Runner, error) {
	if logger == nil {
		logger = log.Default()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.BasePath == "" {
		opts.BasePath = config.DefaultBasePath
	}
	cache, err := lru.New[string, *graph.Graph](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("graph cache: %w", err)
	}
	return &Runner{Logger: logger, opts: opts, graphs: cache}, nil
}

// Run executes jobs and returns a report of the completed steps. On error
// the report covers the steps that finished before the failure.
func (r *Runner) Run(ctx context.Context, jobs *config.Jobs) (report *Report, err error) {
	start := time.Now()
	report = &Report{RunID: uuid.NewString()}
	r.hits = 0
	hooks := observability.Jobs()
	hooks.OnRunStart(ctx, report.RunID, jobs.Len())
	defer func() {
		report.CacheHits = r.hits
		report.Duration = time.Since(start)
		hooks.OnRunComplete(ctx, report.RunID, len(report.Steps), report.Duration, err)
	}()

	if err := jobs.Validate(); err != nil {
		return report, err
	}
	base := firstNonEmpty(jobs.BasePath, r.opts.BasePath)
	r.Logger.Info("starting run", "run", report.RunID, "jobs", jobs.Len())

	step := func(kind string, i int, input string, fn func() ([]string, error)) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		hooks.OnJobStart(ctx, kind, input)
		t := time.Now()
		outputs, err := fn()
		hooks.OnJobComplete(ctx, kind, input, len(outputs), time.Since(t), err)
		if err != nil {
			return fmt.Errorf("%s #%d (%s): %w", kind, i+1, input, err)
		}
		s := Step{Kind: kind, Index: i, Input: input, Outputs: outputs, Duration: time.Since(t)}
		report.Steps = append(report.Steps, s)
		r.Logger.Info("finished "+s.String(), "outputs", len(outputs), "duration", s.Duration)
		return nil
	}

	for i, job := range jobs.Convert {
		err := step("convert", i, job.Input, func() ([]string, error) {
			return r.convert(ctx, job, firstNonEmpty(job.AttrMode, jobs.AttrMode, r.opts.AttrMode))
		})
		if err != nil {
			return report, err
		}
	}
	for i, job := range jobs.MAGFit {
		err := step("magfit", i, job.Input, func() ([]string, error) {
			return r.magfit(ctx, job, base)
		})
		if err != nil {
			return report, err
		}
	}
	for i, job := range jobs.Export {
		err := step("export", i, job.Input, func() ([]string, error) {
			return r.export(ctx, job)
		})
		if err != nil {
			return report, err
		}
	}
	for i, job := range jobs.Features {
		err := step("features", i, job.Input, func() ([]string, error) {
			if _, err := magfit.ExportFeatures(r.Logger, job.Input, job.Output); err != nil {
				return nil, err
			}
			return []string{job.Output}, nil
		})
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// Load returns the graph at path, parsing it on first use.
func (r *Runner) Load(ctx context.Context, path string) (*graph.Graph, error) {
	key := filepath.Clean(path)
	if g, ok := r.graphs.Get(key); ok {
		r.hits++
		observability.Cache().OnCacheHit(ctx, key)
		r.Logger.Debug("graph cache hit", "path", key)
		return g, nil
	}
	observability.Cache().OnCacheMiss(ctx, key)
	g, err := gio.Load(path, gio.LoadOptions{})
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded graph", "path", key, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	r.graphs.Add(key, g)
	return g, nil
}

func (r *Runner) convert(ctx context.Context, job config.ConvertJob, mode string) ([]string, error) {
	attrMode, err := archive.ParseAttrMode(mode)
	if err != nil {
		return nil, err
	}
	g, err := r.Load(ctx, job.Input)
	if err != nil {
		return nil, err
	}
	a, err := archive.FromGraph(g, archive.Options{
		AttrMode:  attrMode,
		ValueKey:  job.ValueKey,
		WeightKey: job.WeightKey,
	})
	if err != nil {
		return nil, err
	}
	path, err := a.Save(r.Logger, job.Output)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (r *Runner) magfit(ctx context.Context, job config.MAGFitJob, base string) ([]string, error) {
	g, err := r.Load(ctx, job.Input)
	if err != nil {
		return nil, err
	}
	in, err := magfit.PrepareInput(r.Logger, base, job.Dataset, g, job.Attributes)
	if err != nil {
		return nil, err
	}
	return []string{in.Config, in.Graph}, nil
}

func (r *Runner) export(ctx context.Context, job config.ExportJob) ([]string, error) {
	if err := ValidateExportFormat(job.Format); err != nil {
		return nil, err
	}
	g, err := r.Load(ctx, job.Input)
	if err != nil {
		return nil, err
	}
	if err := Export(ctx, r.Logger, g, job.Format, job.Output); err != nil {
		return nil, err
	}
	return []string{job.Output}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
