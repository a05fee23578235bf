// internal/cli/show_tiers.go
package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/mwiater/llmboard/internal/dashboard"
)

// tierColors maps tiers to terminal colors close to their chart colors.
var tierColors = map[dashboard.Tier]*color.Color{
	dashboard.Excellent: color.New(color.FgGreen, color.Bold),
	dashboard.VeryGood:  color.New(color.FgBlue, color.Bold),
	dashboard.Good:      color.New(color.FgMagenta),
	dashboard.Fair:      color.New(color.FgYellow),
	dashboard.Poor:      color.New(color.FgRed),
}

// tierLabel returns the colored display label of t.
func tierLabel(t dashboard.Tier) string {
	if c, ok := tierColors[t]; ok {
		return c.Sprint(t.String())
	}
	return t.String()
}

// showTiersCmd implements 'show tiers', which prints the performance scale.
var showTiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the performance tiers and their colors",
	Long:  `The 'tiers' subcommand prints every performance tier with its score range and chart color, best first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTierTable(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.AddCommand(showTiersCmd)
}

func printTierTable(out io.Writer) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Tier", "Range", "Color"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range dashboard.Legend() {
		data = append(data, []string{tierLabel(e.Tier), e.Range, e.Color})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
