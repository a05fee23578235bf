// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the flat config file name accepted next to the binary.
	legacyConfigPath = "llmboard.json"
	// DefaultBasePath is the URL prefix the static site is hosted under.
	DefaultBasePath = "/llm-benchmark"
	// DefaultOutDir is where the static export is written.
	DefaultOutDir = "out"
	// DefaultAddr is the listen address of the site server.
	DefaultAddr = ":8080"
	// DefaultLogFile is the log file used when none is configured.
	DefaultLogFile = "llmboard.log"
	// defaultLoadingDelay is how long the loading placeholder is shown.
	defaultLoadingDelay = 500 * time.Millisecond
	// defaultMobileBreakpoint is the page width, in CSS pixels, below which charts go mobile.
	defaultMobileBreakpoint = 640
	// defaultTerminalBreakpoint is the terminal width, in columns, below which charts go mobile.
	defaultTerminalBreakpoint = 100
)

// ErrNoConfig is returned by Load when no configuration file exists.
var ErrNoConfig = errors.New("no configuration file found")

// Config represents the top-level application configuration.
type Config struct {
	Debug              bool   `json:"debug" mapstructure:"debug"`
	LogFile            string `json:"logFile,omitempty" mapstructure:"logFile"`
	Dataset            string `json:"dataset,omitempty" mapstructure:"dataset"`
	BasePath           string `json:"basePath,omitempty" mapstructure:"basePath"`
	OutDir             string `json:"outDir,omitempty" mapstructure:"outDir"`
	Addr               string `json:"addr,omitempty" mapstructure:"addr"`
	LoadingDelayMs     int    `json:"loadingDelayMs,omitempty" mapstructure:"loadingDelayMs"`
	MobileBreakpoint   int    `json:"mobileBreakpoint,omitempty" mapstructure:"mobileBreakpoint"`
	TerminalBreakpoint int    `json:"terminalBreakpoint,omitempty" mapstructure:"terminalBreakpoint"`
	ConfigPath         string `json:"-" mapstructure:"-"`
}

// Defaults returns a configuration with every default applied.
func Defaults() Config {
	return Config{
		LogFile:            DefaultLogFile,
		BasePath:           DefaultBasePath,
		OutDir:             DefaultOutDir,
		Addr:               DefaultAddr,
		LoadingDelayMs:     int(defaultLoadingDelay / time.Millisecond),
		MobileBreakpoint:   defaultMobileBreakpoint,
		TerminalBreakpoint: defaultTerminalBreakpoint,
	}
}

// Validate rejects settings no renderer can honour.
func (c Config) Validate() error {
	var errs []error
	if c.LoadingDelayMs < 0 {
		errs = append(errs, fmt.Errorf("loadingDelayMs must not be negative (got %d)", c.LoadingDelayMs))
	}
	if c.MobileBreakpoint < 0 {
		errs = append(errs, fmt.Errorf("mobileBreakpoint must not be negative (got %d)", c.MobileBreakpoint))
	}
	if c.TerminalBreakpoint < 0 {
		errs = append(errs, fmt.Errorf("terminalBreakpoint must not be negative (got %d)", c.TerminalBreakpoint))
	}
	if bp := strings.TrimSpace(c.BasePath); bp != "" && !strings.HasPrefix(bp, "/") {
		errs = append(errs, fmt.Errorf("basePath must start with '/' (got %q)", bp))
	}
	return errors.Join(errs...)
}

// LoadingDelay returns the loading placeholder duration. Zero means ready
// immediately; an unset key keeps the 500ms from Defaults.
func (c Config) LoadingDelay() time.Duration {
	if c.LoadingDelayMs < 0 {
		return defaultLoadingDelay
	}
	return time.Duration(c.LoadingDelayMs) * time.Millisecond
}

// MobileBreakpointPx returns the page breakpoint in CSS pixels.
func (c Config) MobileBreakpointPx() int {
	if c.MobileBreakpoint <= 0 {
		return defaultMobileBreakpoint
	}
	return c.MobileBreakpoint
}

// TerminalBreakpointCols returns the terminal breakpoint in columns.
func (c Config) TerminalBreakpointCols() int {
	if c.TerminalBreakpoint <= 0 {
		return defaultTerminalBreakpoint
	}
	return c.TerminalBreakpoint
}

// SitePrefix returns the cleaned URL prefix without a trailing slash. Hosting
// at the root yields "".
func (c Config) SitePrefix() string {
	bp := strings.TrimSpace(c.BasePath)
	if bp == "" {
		bp = DefaultBasePath
	}
	bp = path.Clean("/" + strings.Trim(bp, "/"))
	if bp == "/" {
		return ""
	}
	return bp
}

// OutputDir returns the static export directory, applying a default if not set.
func (c Config) OutputDir() string {
	if dir := strings.TrimSpace(c.OutDir); dir != "" {
		return dir
	}
	return DefaultOutDir
}

// ListenAddr returns the server listen address, applying a default if not set.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return DefaultAddr
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if p := c.LogFile; strings.TrimSpace(p) != "" {
		return p
	}
	return DefaultLogFile
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		if err := config.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
		}
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				if err := config.Validate(); err != nil {
					return Config{}, fmt.Errorf("invalid config %q: %w", legacyConfigPath, err)
				}
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("%w (searched %q and %q)", ErrNoConfig, DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("%w at %q", ErrNoConfig, path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	config := Defaults()
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
