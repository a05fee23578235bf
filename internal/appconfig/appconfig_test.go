// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad verifies that a valid file is loaded with defaults filled in, while
// invalid JSON, invalid values, and missing files are rejected.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	valid := writeConfig(t, dir, "config.json", `{"dataset": "data/*.yaml", "addr": ":9090"}`)
	cfg, err := Load(valid)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Dataset != "data/*.yaml" || cfg.ListenAddr() != ":9090" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ConfigPath != valid {
		t.Fatalf("expected ConfigPath %q, got %q", valid, cfg.ConfigPath)
	}
	if cfg.LoadingDelay() != 500*time.Millisecond {
		t.Fatalf("expected default loading delay of 500ms, got %v", cfg.LoadingDelay())
	}
	if cfg.MobileBreakpointPx() != 640 || cfg.TerminalBreakpointCols() != 100 {
		t.Fatalf("unexpected breakpoints: %d %d", cfg.MobileBreakpointPx(), cfg.TerminalBreakpointCols())
	}
	if cfg.SitePrefix() != "/llm-benchmark" {
		t.Fatalf("expected default prefix, got %q", cfg.SitePrefix())
	}

	invalidJSON := writeConfig(t, dir, "broken.json", `{ "dataset": `)
	if _, err := Load(invalidJSON); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	immediate := writeConfig(t, dir, "immediate.json", `{ "loadingDelayMs": 0 }`)
	cfg, err = Load(immediate)
	if err != nil {
		t.Fatalf("Load() with zero delay failed: %v", err)
	}
	if cfg.LoadingDelay() != 0 {
		t.Fatalf("expected an explicit zero delay to be kept, got %v", cfg.LoadingDelay())
	}

	negative := writeConfig(t, dir, "negative.json", `{ "loadingDelayMs": -5 }`)
	if _, err := Load(negative); err == nil || !strings.Contains(err.Error(), "loadingDelayMs") {
		t.Fatalf("Load() with negative delay should have failed, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "nonexistent.json")); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("Load() with nonexistent file should report ErrNoConfig, got %v", err)
	}
}

func TestLoadDefaultPathAndLegacyFallback(t *testing.T) {
	tempDir := t.TempDir()
	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })

	if _, err := Load(""); !errors.Is(err, ErrNoConfig) || !strings.Contains(err.Error(), "no configuration file found") {
		t.Fatalf("expected missing config error, got %v", err)
	}

	writeConfig(t, tempDir, legacyConfigPath, `{"outDir": "public"}`)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("legacy Load error: %v", err)
	}
	if cfg.OutputDir() != "public" || cfg.ConfigPath != legacyConfigPath {
		t.Fatalf("unexpected legacy config: %+v", cfg)
	}

	writeConfig(t, tempDir, DefaultConfigPath, `{"outDir": "dist"}`)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("default Load error: %v", err)
	}
	if cfg.OutputDir() != "dist" {
		t.Fatalf("expected default path to win over legacy, got %q", cfg.OutputDir())
	}
}

func TestSitePrefix(t *testing.T) {
	tests := map[string]string{
		"":                "/llm-benchmark",
		"/":               "",
		"/llm-benchmark/": "/llm-benchmark",
		"boards//llm":     "/boards/llm",
		" /x ":            "/x",
	}
	for in, want := range tests {
		if got := (Config{BasePath: in}).SitePrefix(); got != want {
			t.Fatalf("SitePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := Config{MobileBreakpoint: -1, TerminalBreakpoint: -1, BasePath: "relative"}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"mobileBreakpoint", "terminalBreakpoint", "basePath"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil)
	out := buf.String()
	for _, want := range []string{"No config file loaded", "(built-in sample)", "/llm-benchmark/", "640px", "100 cols", "500ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	cfg := Config{Dataset: "boards/*.json", BasePath: "/"}
	ShowConfig(&buf, "config/config.json", &cfg)
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") || !strings.Contains(out, "boards/*.json") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Base Path:           /\n") {
		t.Fatalf("expected root base path, got:\n%s", out)
	}
}
