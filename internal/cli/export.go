package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/errors"
	gio "github.com/matzehuels/graphprep/pkg/io"
	"github.com/matzehuels/graphprep/pkg/pipeline"
)

// exportCommand creates the export command for format conversion.
func (c *CLI) exportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <graph> <output>",
		Short: "Rewrite a graph in another format",
		Long: `Rewrite a graph in another format: adjlist, edgelist, json, gml, dot or svg.

Without --format the output format follows the output file extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			if format == "" {
				var err error
				if format, err = formatFromPath(dst); err != nil {
					return err
				}
			}
			if err := pipeline.ValidateExportFormat(format); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			g, err := gio.Load(src, gio.LoadOptions{})
			if err != nil {
				return err
			}
			if err := pipeline.Export(ctx, logger, g, format, dst); err != nil {
				return err
			}
			prog.done("exported", "src", src, "format", format)

			printSuccess("Wrote %s", format)
			printFile(dst)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(pipeline.ExportFormats, ", "))

	return cmd
}

// formatFromPath maps an output extension to an export format.
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return pipeline.FormatDOT, nil
	case ".svg":
		return pipeline.FormatSVG, nil
	}
	f, err := gio.DetectFormat(path)
	if err != nil {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %s; pass --format", path)
	}
	return string(f), nil
}
