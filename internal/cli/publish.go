package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/errors"
	"github.com/matzehuels/graphprep/pkg/storage"
)

// publishCommand creates the publish command for uploading a dataset.
func (c *CLI) publishCommand() *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "publish <dir>",
		Short: "Upload a dataset directory to S3-compatible storage",
		Long: `Upload every file in a dataset directory to S3-compatible storage under
<run-id>/<dataset>/. The store is configured through GRAPHPREP_S3_ENDPOINT,
GRAPHPREP_S3_ACCESS_KEY, GRAPHPREP_S3_SECRET_KEY and GRAPHPREP_S3_BUCKET.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Storage
			if !cfg.Enabled() {
				return errors.New(errors.ErrCodeInvalidInput, "storage not configured: set GRAPHPREP_S3_ENDPOINT")
			}
			if runID == "" {
				runID = uuid.NewString()
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			store, err := storage.NewS3Store(cfg, logger)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			keys, err := store.Publish(ctx, runID, args[0])
			if err != nil {
				return err
			}
			prog.done("uploaded", "dir", args[0], "objects", len(keys))

			printSuccess("Published %d files to %s", len(keys), store)
			for _, k := range keys {
				printFile(k)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "object key prefix (default: new UUID)")

	return cmd
}
