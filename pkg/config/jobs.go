package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphprep/pkg/errors"
)

// Jobs is a batch job file.
//
//	base_path = "data/"
//	attr_mode = "placeholder"
//
//	[[convert]]
//	input  = "raw/polblogs.gml"
//	output = "data/polblogs/polblogs"
//
//	[[magfit]]
//	dataset    = "polblogs"
//	input      = "raw/polblogs.gml"
//	attributes = 1
//
//	[[export]]
//	input  = "raw/polblogs.gml"
//	format = "adjlist"
//	output = "data/polblogs/polblogs.adjlist"
//
//	[[features]]
//	input  = "data/polblogs/polblogs.txt"
//	output = "data/polblogs/features.csv"
type Jobs struct {
	BasePath string        `toml:"base_path"`
	AttrMode string        `toml:"attr_mode"`
	Convert  []ConvertJob  `toml:"convert"`
	MAGFit   []MAGFitJob   `toml:"magfit"`
	Export   []ExportJob   `toml:"export"`
	Features []FeaturesJob `toml:"features"`
}

// ConvertJob turns a GML graph into a sparse archive.
type ConvertJob struct {
	Input     string `toml:"input"`
	Output    string `toml:"output"`
	AttrMode  string `toml:"attr_mode"`
	ValueKey  string `toml:"value_key"`
	WeightKey string `toml:"weight_key"`
}

// MAGFitJob writes the MAGFit input layout for a dataset.
type MAGFitJob struct {
	Dataset    string `toml:"dataset"`
	Input      string `toml:"input"`
	Attributes int    `toml:"attributes"`
}

// ExportJob rewrites a graph in another format.
type ExportJob struct {
	Input  string `toml:"input"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// FeaturesJob converts MAGFit result rows into a CSV feature file.
type FeaturesJob struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
}

// Len returns the total number of jobs.
func (j *Jobs) Len() int {
	return len(j.Convert) + len(j.MAGFit) + len(j.Export) + len(j.Features)
}

// LoadJobs reads and validates a job file.
func LoadJobs(path string) (*Jobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "job file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "read %s", path)
	}
	return ParseJobs(data)
}

// ParseJobs decodes and validates job file contents.
func ParseJobs(data []byte) (*Jobs, error) {
	var jobs Jobs
	md, err := toml.Decode(string(data), &jobs)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse job file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown key %s in job file", undecoded[0])
	}
	if err := jobs.Validate(); err != nil {
		return nil, err
	}
	return &jobs, nil
}

// Validate checks that every job names its inputs and outputs.
func (j *Jobs) Validate() error {
	for i, c := range j.Convert {
		if c.Input == "" || c.Output == "" {
			return invalid("convert", i, "input and output are required")
		}
	}
	for i, m := range j.MAGFit {
		if m.Input == "" {
			return invalid("magfit", i, "input is required")
		}
		if err := errors.ValidateDatasetName(m.Dataset); err != nil {
			return fmt.Errorf("magfit #%d: %w", i+1, err)
		}
	}
	for i, e := range j.Export {
		if e.Input == "" || e.Output == "" || e.Format == "" {
			return invalid("export", i, "input, format and output are required")
		}
	}
	for i, f := range j.Features {
		if f.Input == "" || f.Output == "" {
			return invalid("features", i, "input and output are required")
		}
	}
	return nil
}

func invalid(kind string, i int, msg string) error {
	return errors.New(errors.ErrCodeInvalidInput, "%s #%d: %s", kind, i+1, msg)
}
