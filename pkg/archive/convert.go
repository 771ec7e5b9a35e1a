package archive

import (
	"github.com/charmbracelet/log"

	gio "github.com/matzehuels/graphprep/pkg/io"
)

// ConvertGML reads the GML graph at src and saves its archive to dst
// (".npz" appended when missing). It returns the written path.
func ConvertGML(logger *log.Logger, src, dst string, opts Options) (string, error) {
	if logger == nil {
		logger = log.Default()
	}
	g, err := gio.Load(src, gio.LoadOptions{Format: gio.FormatGML})
	if err != nil {
		return "", err
	}
	a, err := FromGraph(g, opts)
	if err != nil {
		return "", err
	}
	path, err := a.Save(logger, dst)
	if err != nil {
		return "", err
	}
	logger.Debug("wrote archive", "path", path, "nodes", g.NodeCount(), "nnz", a.Adj.NNZ(), "labels", len(a.Labels))
	return path, nil
}
