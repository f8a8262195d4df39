package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newTestFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("scopedraft", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.String("locale", "", "")
	return fs
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scopedraft.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadRuntimeConfigFileLayer(t *testing.T) {
	path := writeConfigFile(t, "locale: de\noutput_format: markdown\n")

	fs := newTestFlags(t)
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadRuntimeConfig(fs)
	if err != nil {
		t.Fatalf("loadRuntimeConfig: %v", err)
	}
	if cfg.Locale != "de" {
		t.Errorf("locale = %q, want %q from config file", cfg.Locale, "de")
	}
	if cfg.OutputFormat != "markdown" {
		t.Errorf("output format = %q, want %q from config file", cfg.OutputFormat, "markdown")
	}
}

func TestLoadRuntimeConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "locale: de\n")
	t.Setenv("SCOPEDRAFT_LOCALE", "fr")

	fs := newTestFlags(t)
	if err := fs.Parse([]string{"--config", path}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadRuntimeConfig(fs)
	if err != nil {
		t.Fatalf("loadRuntimeConfig: %v", err)
	}
	if cfg.Locale != "fr" {
		t.Errorf("locale = %q, want env override %q", cfg.Locale, "fr")
	}
}

func TestLoadRuntimeConfigFlagsOutermost(t *testing.T) {
	path := writeConfigFile(t, "locale: de\n")
	t.Setenv("SCOPEDRAFT_LOCALE", "fr")

	fs := newTestFlags(t)
	if err := fs.Parse([]string{"--config", path, "--locale", "ja", "--verbose"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadRuntimeConfig(fs)
	if err != nil {
		t.Fatalf("loadRuntimeConfig: %v", err)
	}
	if cfg.Locale != "ja" {
		t.Errorf("locale = %q, want flag value %q", cfg.Locale, "ja")
	}
	if !cfg.Verbose {
		t.Error("verbose flag did not apply")
	}
}
