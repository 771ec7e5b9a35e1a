package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/features"
)

// featuresCommand creates the features command: numeric table to CSV.
func (c *CLI) featuresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "features <input> <output.csv>",
		Short: "Convert a whitespace-separated numeric table to CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			f, err := os.Open(src)
			if err != nil {
				if os.IsNotExist(err) {
					return errors.Wrap(errors.ErrCodeFileNotFound, err, "feature table %s", src)
				}
				return errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", src)
			}
			defer f.Close()

			rows, err := features.ReadNumeric(f)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			if err := features.SaveNumeric(loggerFromContext(cmd.Context()), dst, rows); err != nil {
				return err
			}
			printSuccess("Wrote %d feature rows", len(rows))
			printFile(dst)
			return nil
		},
	}
}
