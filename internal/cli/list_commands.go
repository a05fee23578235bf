// internal/cli/list_commands.go
package cli

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// commandInfo is one row of the command listing.
type commandInfo struct {
	Path        string
	Description string
}

// commandsCmd implements 'commands', which prints the available commands and
// subcommands in a hierarchical, indented, two-column table.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commandData := collectCommandData(rootCmd, "", "")
		filtered := make([]commandInfo, 0, len(commandData))
		for _, data := range commandData {
			if strings.Contains(data.Path, "completion") || strings.HasSuffix(data.Path, " help") {
				continue
			}
			filtered = append(filtered, data)
		}
		return printCommandTable(cmd.OutOrStdout(), filtered)
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

// collectCommandData walks the command tree and returns a flattened slice of
// path/description pairs.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	allData := []commandInfo{{Path: indent + fullPath, Description: cmd.Short}}
	for _, subCmd := range cmd.Commands() {
		allData = append(allData, collectCommandData(subCmd, fullPath, indent+"  ")...)
	}
	return allData
}

func printCommandTable(out io.Writer, rows []commandInfo) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Command", "Description"})
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.Path, r.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
