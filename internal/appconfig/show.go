package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		d := Defaults()
		cfg = &d
	}

	dataset := cfg.Dataset
	if dataset == "" {
		dataset = "(built-in sample)"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:               %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:            %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Dataset:             %s\n", dataset)
	fmt.Fprintf(out, "  Base Path:           %s/\n", cfg.SitePrefix())
	fmt.Fprintf(out, "  Output Dir:          %s\n", cfg.OutputDir())
	fmt.Fprintf(out, "  Listen Addr:         %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Loading Delay:       %s\n", cfg.LoadingDelay())
	fmt.Fprintf(out, "  Mobile Breakpoint:   %dpx\n", cfg.MobileBreakpointPx())
	fmt.Fprintf(out, "  Terminal Breakpoint: %d cols\n", cfg.TerminalBreakpointCols())
}
