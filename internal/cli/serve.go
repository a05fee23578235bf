// internal/cli/serve.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/llmboard/internal/appconfig"
	"github.com/mwiater/llmboard/internal/dataset"
	"github.com/mwiater/llmboard/internal/server"
)

// serveCmd implements 'serve', which hosts the rendered site over HTTP.
var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Serve the leaderboard site over HTTP",
	Long:        `The 'serve' command renders the site in memory and serves it under basePath until interrupted. GET /healthz reports liveness.`,
	Annotations: map[string]string{consoleLogs: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configOrDefaults()
		ds, err := dataset.Load(cfg.Dataset)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s/ on %s\n", cfg.SitePrefix(), cfg.ListenAddr())
		return server.Run(cmd.Context(), server.Config{
			Addr:    cfg.ListenAddr(),
			Dataset: ds,
			Site:    siteOptions(cfg),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", appconfig.DefaultAddr, "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}
