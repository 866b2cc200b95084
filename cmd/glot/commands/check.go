package commands

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openlocale/glot/pkg/catalog"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Classify catalog files as valid, invalid, or newer-schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := catalog.CheckPaths(args...)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			invalid := 0
			for _, path := range slices.Sorted(maps.Keys(status)) {
				if status[path] == catalog.StatusInvalid {
					invalid++
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", path, status[path])
			}
			_ = tw.Flush()

			if invalid > 0 {
				return errors.New("invalid catalog files found")
			}
			return nil
		},
	}
}
