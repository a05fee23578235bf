// internal/cli/show_dataset.go
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/mwiater/llmboard/internal/dashboard"
	"github.com/mwiater/llmboard/internal/dataset"
)

var showDatasetRaw bool

// showDatasetCmd implements 'show dataset', which prints every chart entry
// with its derived tier.
var showDatasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Show the loaded dataset",
	Long:  `The 'dataset' subcommand loads the configured dataset (or the built-in sample) and prints one row per score. --raw dumps the decoded structure instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(configOrDefaults().Dataset)
		if err != nil {
			return err
		}
		if showDatasetRaw {
			_, err := pp.Fprintln(cmd.OutOrStdout(), ds)
			return err
		}
		return printDatasetTable(cmd.OutOrStdout(), ds)
	},
}

func init() {
	showCmd.AddCommand(showDatasetCmd)
	showDatasetCmd.Flags().BoolVar(&showDatasetRaw, "raw", false, "pretty-print the decoded dataset")
}

func printDatasetTable(out io.Writer, ds dataset.Dataset) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Section", "Chart", "Rank", "Model", "Score", "Tier"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range ds.Sections {
		for _, c := range s.Charts {
			for i, p := range dashboard.PointsFromEntries(c.Entries) {
				data = append(data, []string{
					s.Heading,
					c.Title,
					strconv.Itoa(i + 1),
					dashboard.CleanLabel(p.Name),
					dashboard.FormatPercent(p.Score),
					tierLabel(p.Tier()),
				})
			}
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d charts, %d scores\n", len(ds.Charts()), ds.PointCount())
	return err
}
