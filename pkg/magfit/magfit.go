// Package magfit lays out input files for the MAGFit attribute-graph
// fitting tool and locates its result files.
//
// Every dataset lives in its own directory under a base path:
//
//	<base>/<dataset>/inti.config    initial parameters, one line per attribute
//	<base>/<dataset>/graph.txt      edge list, topology only
//	<base>/<dataset>/<dataset>.txt  fitted result written by MAGFit
package magfit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/features"
	"github.com/matzehuels/graphprep/pkg/fsutil"
	"github.com/matzehuels/graphprep/pkg/graph"
	gio "github.com/matzehuels/graphprep/pkg/io"
)

const (
	// ConfigFile holds the initial attribute parameters. The name is the
	// one MAGFit expects.
	ConfigFile = "inti.config"
	// GraphFile holds the edge list.
	GraphFile = "graph.txt"
	// ConfigLine initializes one attribute: mu, then the 2×2 affinity
	// matrix in row-major order.
	ConfigLine = "0.4 & 0.8 0.4;0.4 0.2"
)

// Input lists the files written by [PrepareInput].
type Input struct {
	Dir    string
	Config string
	Graph  string
}

// DatasetDir returns <base>/<dataset>.
func DatasetDir(base, dataset string) string {
	return filepath.Join(base, dataset)
}

// PrepareInput writes the MAGFit input for g under <base>/<dataset>/:
// a config file with one [ConfigLine] per attribute and the graph's edge
// list. attributes <= 0 leaves the config file empty.
func PrepareInput(logger *log.Logger, base, dataset string, g *graph.Graph, attributes int) (*Input, error) {
	if err := errors.ValidateDatasetName(dataset); err != nil {
		return nil, err
	}
	dir := DatasetDir(base, dataset)
	if err := fsutil.EnsureDir(logger, dir); err != nil {
		return nil, err
	}
	in := &Input{
		Dir:    dir,
		Config: filepath.Join(dir, ConfigFile),
		Graph:  filepath.Join(dir, GraphFile),
	}

	err := fsutil.WriteFile(logger, in.Config, func(w io.Writer) error {
		return WriteConfig(w, attributes)
	})
	if err != nil {
		return nil, err
	}
	err = fsutil.WriteFile(logger, in.Graph, func(w io.Writer) error {
		return gio.WriteEdgeList(g, w)
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

// WriteConfig writes n copies of [ConfigLine].
func WriteConfig(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(ConfigLine+"\n", n))
	return err
}

// ResultFile returns <base>/<dataset>/<dataset>.txt without touching the
// filesystem.
func ResultFile(base, dataset string) string {
	return filepath.Join(DatasetDir(base, dataset), dataset+".txt")
}

// EnsureResultFile returns the same path as [ResultFile] after creating
// its directory. The file itself is left for MAGFit to write.
func EnsureResultFile(logger *log.Logger, base, dataset string) (string, error) {
	if err := errors.ValidateDatasetName(dataset); err != nil {
		return "", err
	}
	if err := fsutil.EnsureDir(logger, DatasetDir(base, dataset)); err != nil {
		return "", err
	}
	return ResultFile(base, dataset), nil
}

// ExportFeatures converts a MAGFit result file into comma-separated
// feature rows at dst.
func ExportFeatures(logger *log.Logger, src, dst string) (int, error) {
	f, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "result file %s", src)
		}
		return 0, errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", src)
	}
	defer f.Close()

	rows, err := features.ReadTokenRows(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", src, err)
	}
	if err := features.SaveTokens(logger, dst, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
