package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/graphprep/pkg/io"
	"github.com/matzehuels/graphprep/pkg/magfit"
)

// magfitCommand groups the MAGFit helpers.
func (c *CLI) magfitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "magfit",
		Short: "Prepare MAGFit input and handle its results",
	}
	cmd.AddCommand(c.magfitPrepareCommand())
	cmd.AddCommand(c.magfitResultCommand())
	cmd.AddCommand(c.magfitFeaturesCommand())
	return cmd
}

func (c *CLI) magfitPrepareCommand() *cobra.Command {
	var (
		base       = c.Config.BasePath
		attributes int
	)

	cmd := &cobra.Command{
		Use:   "prepare <dataset> <graph>",
		Short: "Write inti.config and graph.txt for a dataset",
		Long: `Write the MAGFit input files for a dataset under <base>/<dataset>/:

  inti.config  one initial parameter line per attribute
  graph.txt    the graph as a topology-only edge list

The graph may be GML, JSON, an adjacency list or an edge list; the format
is chosen by file extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, graphPath := args[0], args[1]
			logger := loggerFromContext(cmd.Context())

			g, err := gio.Load(graphPath, gio.LoadOptions{})
			if err != nil {
				return err
			}
			in, err := magfit.PrepareInput(logger, base, dataset, g, attributes)
			if err != nil {
				return err
			}

			printSuccess("Prepared MAGFit input for %s", dataset)
			printFile(in.Config)
			printFile(in.Graph)
			printStats(fmt.Sprintf("%d nodes", g.NodeCount()), fmt.Sprintf("%d edges", g.EdgeCount()), fmt.Sprintf("%d attributes", attributes))
			printNextStep("Once MAGFit has run, convert its result", fmt.Sprintf("%s magfit features %s features.csv", appName, magfit.ResultFile(base, dataset)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&attributes, "attributes", "k", 0, "number of latent attributes")
	cmd.Flags().StringVar(&base, "base", base, "base directory for dataset folders")
	_ = cmd.MarkFlagRequired("attributes")

	return cmd
}

func (c *CLI) magfitResultCommand() *cobra.Command {
	var (
		base   = c.Config.BasePath
		ensure bool
	)

	cmd := &cobra.Command{
		Use:   "result <dataset>",
		Short: "Print the path MAGFit writes its result to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := magfit.ResultFile(base, args[0])
			if ensure {
				var err error
				path, err = magfit.EnsureResultFile(loggerFromContext(cmd.Context()), base, args[0])
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", base, "base directory for dataset folders")
	cmd.Flags().BoolVar(&ensure, "ensure", false, "create the dataset directory")

	return cmd
}

func (c *CLI) magfitFeaturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "features <result.txt> <output.csv>",
		Short: "Convert MAGFit result rows into comma-separated features",
		Long: `Convert MAGFit result rows into comma-separated features.

Each line is split on single spaces and its last segment is dropped, so
"1 0 1 -12.5" becomes "1,0,1". A line with no space is rejected and no
output is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := magfit.ExportFeatures(loggerFromContext(cmd.Context()), args[0], args[1])
			if err != nil {
				return err
			}
			printSuccess("Wrote %d feature rows", n)
			printFile(args[1])
			return nil
		},
	}
}
