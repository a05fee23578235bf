// internal/cli/validate.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/logging"
)

// validateCmd implements 'validate', which checks dataset files against the
// dataset schema without rendering anything.
var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate dataset files against the schema",
	Long:  `The 'validate' command checks each JSON or YAML dataset file against the embedded schema. Without arguments it validates the files matched by the configured dataset glob.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			pattern := configOrDefaults().Dataset
			if pattern == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No dataset configured; the built-in sample is always valid.")
				return nil
			}
			expanded, err := dataset.Expand(pattern)
			if err != nil {
				return err
			}
			paths = expanded
		}

		failed := 0
		for _, path := range paths {
			if err := validateFile(path); err != nil {
				failed++
				logging.LogEvent("dataset %s failed validation: %v", path, err)
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n  %v\n", path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d dataset files failed validation", failed, len(paths))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFile(path string) error {
	format, err := dataset.FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return dataset.Validate(data, format)
}
