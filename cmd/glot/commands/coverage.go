package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openlocale/glot/pkg/coverage"
	"github.com/openlocale/glot/pkg/translator"
)

func (c *CLI) newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage <dir>",
		Short: "Report translation coverage for the catalogs in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listMissing, _ := cmd.Flags().GetBool("missing")

			tr := translator.New()
			loaded, err := tr.LoadDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.log.Debug("catalogs loaded", "dir", args[0], "count", loaded)

			report := coverage.Evaluate(tr.Catalogs(), false)
			if report == nil {
				return fmt.Errorf("no valid catalogs in %q", args[0])
			}

			printReport(cmd.OutOrStdout(), report, listMissing)
			return nil
		},
	}

	cmd.Flags().BoolP("missing", "m", false, "List each catalog's missing keys")

	return cmd
}

func printReport(w io.Writer, report *coverage.Report, listMissing bool) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tKEYS\tCOVERAGE\tMISSING")
	for _, code := range slices.Sorted(maps.Keys(report.Percent)) {
		missing := len(report.MissingKeys[code])
		keys := len(report.AllKeys) - missing
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%d\n", code, keys, report.Percent[code], missing)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(w, "\n%d keys total, %.1f avg keys per catalog, %.1f%% avg coverage\n",
		len(report.AllKeys), report.AvgKeys, report.AvgPercent)

	if !listMissing {
		return
	}
	for _, code := range slices.Sorted(maps.Keys(report.MissingKeys)) {
		missing := report.MissingKeys[code]
		if len(missing) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\nmissing in %s:\n", code)
		for _, key := range slices.Sorted(maps.Keys(missing)) {
			_, _ = fmt.Fprintf(w, "  %s\n", key)
		}
	}
}
