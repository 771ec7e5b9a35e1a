package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/config"
	"github.com/matzehuels/graphprep/pkg/pipeline"
)

// runCommand creates the run command for batch job files.
func (c *CLI) runCommand() *cobra.Command {
	opts := pipeline.Options{
		BasePath: c.Config.BasePath,
		AttrMode: c.Config.AttrMode,
	}

	cmd := &cobra.Command{
		Use:   "run <jobs.toml>",
		Short: "Run a batch job file",
		Long: `Run a batch job file of convert, magfit, export and features jobs.

Each input graph is parsed once. The run stops at the first failing job.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := config.LoadJobs(args[0])
			if err != nil {
				return err
			}
			if jobs.Len() == 0 {
				printWarning("%s has no jobs", args[0])
				return nil
			}

			runner, err := pipeline.NewRunner(loggerFromContext(cmd.Context()), opts)
			if err != nil {
				return err
			}
			report, err := runner.Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}

			printSuccess("Completed %d jobs", len(report.Steps))
			printKeyValue("run", report.RunID)
			for _, s := range report.Steps {
				printInfo("%s %s", s, StyleDim.Render(s.Duration.Round(time.Millisecond).String()))
				for _, out := range s.Outputs {
					printFile(out)
				}
			}
			printStats(
				fmt.Sprintf("%d files", len(report.Outputs())),
				fmt.Sprintf("%d cache hits", report.CacheHits),
				report.Duration.Round(time.Millisecond).String(),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BasePath, "base", opts.BasePath, "base directory when the job file sets none")
	cmd.Flags().StringVar(&opts.AttrMode, "attr-mode", opts.AttrMode, "attribute matrix when the job file sets none")
	cmd.Flags().IntVar(&opts.CacheSize, "cache-size", pipeline.DefaultCacheSize, "number of parsed graphs kept in memory")

	return cmd
}
