// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/llmboard/internal/appconfig"
	"github.com/mwiater/llmboard/internal/logging"
)

// consoleLogs marks commands that may log to stdout. Everything else logs to
// the file only so command output and the terminal UI stay clean.
const consoleLogs = "consoleLogs"

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// stringKeys are the flag-backed settings copied back into unchanged flags.
var stringKeys = []string{"logFile", "dataset", "basePath", "outDir", "addr"}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "llmboard",
	Short: "LLM benchmark leaderboard for the terminal and the web",
	Long: `llmboard renders benchmark scores as bar charts colored by performance tier.
Run without a subcommand to open the terminal dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(cmd.Flags().Changed("config")); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range stringKeys {
			if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
				_ = f.Value.Set(viper.GetString(name))
			}
		}

		cfg := appconfig.Defaults()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		currentConfig = &cfg

		opts := logging.Options{Debug: cfg.Debug, Quiet: cmd.Annotations[consoleLogs] == ""}
		if err := logging.Init(cfg.LogFilePath(), opts); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Debugf("command %q using config %q", cmd.CommandPath(), cfg.ConfigPath)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd)
	},
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("logFile", appconfig.DefaultLogFile, "path to the log file")
	flags.String("dataset", "", "glob of JSON/YAML dataset files (empty = built-in sample)")
	flags.String("basePath", appconfig.DefaultBasePath, "URL prefix the site is hosted under")

	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("logFile", flags.Lookup("logFile"))
	_ = viper.BindPFlag("dataset", flags.Lookup("dataset"))
	_ = viper.BindPFlag("basePath", flags.Lookup("basePath"))
}

// initConfig applies defaults for keys that have no flag.
func initConfig() {
	defaults := appconfig.Defaults()
	viper.SetDefault("loadingDelayMs", defaults.LoadingDelayMs)
	viper.SetDefault("mobileBreakpoint", defaults.MobileBreakpoint)
	viper.SetDefault("terminalBreakpoint", defaults.TerminalBreakpoint)
	viper.SetDefault("outDir", defaults.OutDir)
	viper.SetDefault("addr", defaults.Addr)
}

// ensureConfigLoaded locates the config file, falling back to the legacy
// name, and reads it into viper. A missing file is only an error when the
// path was given explicitly.
func ensureConfigLoaded(explicit bool) error {
	loaded, err := appconfig.Load(cfgFile)
	if err != nil {
		if !explicit && errors.Is(err, appconfig.ErrNoConfig) {
			viper.SetConfigFile("")
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	viper.SetConfigFile(loaded.ConfigPath)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
