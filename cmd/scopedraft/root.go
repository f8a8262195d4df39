package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"scopedraft/internal/config"
	"scopedraft/internal/logging"
)

// Color helpers for CLI notifications.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func errorLine(msg string) string   { return red("✗ " + msg) }
func successLine(msg string) string { return green("✓ " + msg) }

// isTTY checks whether stdout is a terminal; piped output skips the preview
// renderer and styling.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// NewRootCommand builds the scopedraft CLI.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scopedraft",
		Short: "Assemble proposal documents and replay assistant task-plan streams",
		Long: `scopedraft turns a structured work breakdown into a rich proposal
document with financial rollups, and reconstructs an assistant's live task
plan from a stream of tool-invocation events.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("locale", "", "Locale for currency formatting (BCP 47)")

	rootCmd.AddCommand(newAssembleCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadRuntimeConfig resolves the effective configuration: config.Load owns
// the defaults, YAML file, and SCOPEDRAFT_* environment layers; viper binds
// command-line flags on top as the outermost layer.
func loadRuntimeConfig(flags *pflag.FlagSet) (config.RuntimeConfig, error) {
	cfgFile, _ := flags.GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("verbose", cfg.Verbose)
	if flag := flags.Lookup("verbose"); flag != nil && flag.Changed {
		_ = v.BindPFlag("verbose", flag)
	}
	if flag := flags.Lookup("locale"); flag != nil && flag.Changed {
		_ = v.BindPFlag("locale", flag)
	}
	cfg.Locale = v.GetString("locale")
	cfg.Verbose = v.GetBool("verbose")
	return cfg, nil
}

// newLogger builds the command logger: always the debug file, plus stderr
// when verbose.
func newLogger(cfg config.RuntimeConfig, component string) logging.Logger {
	fileLogger := logging.NewComponentLogger(component)
	if !cfg.Verbose {
		return fileLogger
	}
	return logging.Multi(fileLogger,
		logging.NewWriterLogger(os.Stderr, logging.DebugLevel, component))
}
