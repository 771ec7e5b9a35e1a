package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphprep/pkg/archive"
)

// inspectCommand creates the inspect command for summarizing an archive.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <archive.npz>",
		Short: "Print the shapes and sizes stored in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			printKeyValue("adjacency", fmt.Sprintf("%d x %d, %d nonzeros", a.Adj.Shape[0], a.Adj.Shape[1], a.Adj.NNZ()))
			printKeyValue("attributes", fmt.Sprintf("%d x %d, %d nonzeros", a.Attr.Shape[0], a.Attr.Shape[1], a.Attr.NNZ()))
			printKeyValue("labels", fmt.Sprintf("%d", len(a.Labels)))
			if classes := labelCounts(a.Labels); len(classes) > 0 {
				printKeyValue("classes", formatCounts(classes))
			}
			return nil
		},
	}
}

func labelCounts(labels []int64) map[int64]int {
	counts := make(map[int64]int)
	for _, l := range labels {
		counts[l]++
	}
	return counts
}

// formatCounts renders {0: 3, 1: 5} as "0=3 1=5".
func formatCounts(counts map[int64]int) string {
	var out string
	for i, k := range slices.Sorted(maps.Keys(counts)) {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d=%d", k, counts[k])
	}
	return out
}
