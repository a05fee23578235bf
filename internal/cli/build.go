// internal/cli/build.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mwiater/llmboard/internal/appconfig"
	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/mwiater/llmboard/internal/site"
)

// buildCmd implements 'build', which exports the static site.
var buildCmd = &cobra.Command{
	Use:         "build",
	Short:       "Export the leaderboard as a static site",
	Long:        `The 'build' command writes index.html and data.json into outDir. The page links assume it is hosted under basePath with a trailing slash.`,
	Annotations: map[string]string{consoleLogs: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configOrDefaults()
		ds, err := dataset.Load(cfg.Dataset)
		if err != nil {
			return err
		}

		written, err := site.Build(cfg.OutputDir(), ds, siteOptions(cfg))
		if err != nil {
			return err
		}
		for _, path := range written {
			logging.L().Info("wrote file", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Site ready to host at %s/\n", cfg.SitePrefix())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("outDir", appconfig.DefaultOutDir, "directory the static site is written to")
	_ = viper.BindPFlag("outDir", buildCmd.Flags().Lookup("outDir"))
}

func siteOptions(cfg appconfig.Config) site.Options {
	return site.Options{
		Prefix:       cfg.SitePrefix(),
		LoadingDelay: cfg.LoadingDelay(),
		Breakpoint:   cfg.MobileBreakpointPx(),
	}
}

// configOrDefaults returns the merged configuration, or the defaults when
// the root pre-run has not run.
func configOrDefaults() appconfig.Config {
	if cfg := GetConfig(); cfg != nil {
		return *cfg
	}
	return appconfig.Defaults()
}
