// Package config holds the runtime configuration shared by the scopedraft
// binaries: defaults first, then an optional YAML file, then environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultLocale            = "en"
	DefaultOutputFormat      = "html"
	DefaultEditorRetryDelay  = 2 * time.Second
	DefaultReplayDelayMillis = 0
	DefaultConfigFileName    = "scopedraft.yaml"
)

// RuntimeConfig captures user-configurable settings.
type RuntimeConfig struct {
	Locale            string `json:"locale" yaml:"locale"`
	OutputFormat      string `json:"output_format" yaml:"output_format"`
	EditorRetrySecs   int    `json:"editor_retry_seconds" yaml:"editor_retry_seconds"`
	ReplayDelayMillis int    `json:"replay_delay_millis" yaml:"replay_delay_millis"`
	Verbose           bool   `json:"verbose" yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() RuntimeConfig {
	return RuntimeConfig{
		Locale:            DefaultLocale,
		OutputFormat:      DefaultOutputFormat,
		EditorRetrySecs:   int(DefaultEditorRetryDelay / time.Second),
		ReplayDelayMillis: DefaultReplayDelayMillis,
	}
}

// EditorRetryDelay returns the configured editor readiness retry delay.
func (c RuntimeConfig) EditorRetryDelay() time.Duration {
	if c.EditorRetrySecs <= 0 {
		return DefaultEditorRetryDelay
	}
	return time.Duration(c.EditorRetrySecs) * time.Second
}

// ReplayDelay returns the configured inter-event replay delay.
func (c RuntimeConfig) ReplayDelay() time.Duration {
	if c.ReplayDelayMillis <= 0 {
		return 0
	}
	return time.Duration(c.ReplayDelayMillis) * time.Millisecond
}

// Load builds the effective configuration: defaults, overlaid by the config
// file at path (or, when path is empty, ./scopedraft.yaml then the one under
// the home config dir, whichever exists), overlaid by SCOPEDRAFT_*
// environment variables.
func Load(path string) (RuntimeConfig, error) {
	cfg := Default()

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaultConfigPath() string {
	if _, err := os.Stat(DefaultConfigFileName); err == nil {
		return DefaultConfigFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "scopedraft", DefaultConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func applyFile(cfg *RuntimeConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *RuntimeConfig) {
	if v := os.Getenv("SCOPEDRAFT_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("SCOPEDRAFT_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = v
	}
	if v := os.Getenv("SCOPEDRAFT_EDITOR_RETRY_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.EditorRetrySecs = n
		}
	}
	if v := os.Getenv("SCOPEDRAFT_REPLAY_DELAY_MILLIS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ReplayDelayMillis = n
		}
	}
	if v := os.Getenv("SCOPEDRAFT_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
