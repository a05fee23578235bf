// internal/cli/view.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/tui"
)

// viewCmd opens the terminal dashboard. It is also the root command's default action.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive terminal dashboard",
	Long:  `The 'view' command renders every chart in the terminal. Charts switch to the narrow layout when the terminal is narrower than terminalBreakpoint columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command) error {
	cfg := configOrDefaults()
	ds, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), ds, tui.Options{
		LoadingDelay: cfg.LoadingDelay(),
		Breakpoint:   cfg.TerminalBreakpointCols(),
	})
}
