// Package cli implements the graphprep command-line interface.
//
// # Commands
//
//   - convert: GML graph to sparse .npz archive
//   - inspect: summarize an archive
//   - magfit: prepare MAGFit input, locate results, convert result features
//   - export: rewrite a graph as adjacency list, edge list, JSON, GML, DOT or SVG
//   - features: whitespace-separated numeric table to CSV
//   - run: execute a TOML batch job file
//   - publish: upload a dataset directory to S3/MinIO
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed to commands through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/buildinfo"
	"github.com/matzehuels/graphprep/pkg/config"
)

// appName is the application name used for display.
const appName = "graphprep"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a CLI with a timestamped logger writing to w. Settings are
// read from the environment and an optional .env file.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Load(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "graphprep converts graph datasets for graph-learning tools",
		Long:          `graphprep converts graph datasets between GML, edge lists, adjacency lists, JSON and sparse .npz archives, and lays out input files for the MAGFit attribute-graph fitting tool.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.magfitCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.featuresCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.publishCommand())
	root.AddCommand(c.completionCommand())

	return root
}
