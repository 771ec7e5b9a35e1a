package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/archive"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	attrMode  string // attribute matrix: placeholder or values
	valueKey  string // node attribute holding labels
	weightKey string // edge attribute used as adjacency weight
}

// convertCommand creates the convert command: GML graph to .npz archive.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{
		attrMode: c.Config.AttrMode,
		valueKey: archive.DefaultValueKey,
	}

	cmd := &cobra.Command{
		Use:   "convert <graph.gml> <output>",
		Short: "Convert a GML graph into a sparse .npz archive",
		Long: `Convert a GML graph into a sparse .npz archive holding the adjacency
matrix, an attribute matrix and the integer "value" of every node.

".npz" is appended to the output path when missing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := archive.ParseAttrMode(opts.attrMode)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			path, err := archive.ConvertGML(logger, args[0], args[1], archive.Options{
				AttrMode:  mode,
				ValueKey:  opts.valueKey,
				WeightKey: opts.weightKey,
			})
			if err != nil {
				return err
			}
			prog.done("converted", "src", args[0], "dst", path)

			a, err := archive.Open(path)
			if err != nil {
				return err
			}
			printSuccess("Wrote archive")
			printFile(path)
			printStats(
				fmt.Sprintf("%d nodes", a.Adj.Rows()),
				fmt.Sprintf("%d nonzeros", a.Adj.NNZ()),
				fmt.Sprintf("%d labels", len(a.Labels)),
				"attributes: "+string(mode),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.attrMode, "attr-mode", opts.attrMode, "attribute matrix: placeholder (default), values")
	cmd.Flags().StringVar(&opts.valueKey, "value-key", opts.valueKey, "node attribute holding integer labels")
	cmd.Flags().StringVar(&opts.weightKey, "weight-key", "", "edge attribute used as adjacency weight (default unweighted)")

	return cmd
}
