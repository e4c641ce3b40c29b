// Package commands implements the carousel CLI.
package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Validate and preview carousel configurations",
	Long: `carousel works with the TOML files that configure the browser carousel
widget: it writes a starter file, validates and resolves existing ones, and
previews a configuration in the terminal on an in-memory element tree.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: nearest "+ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
}

// newLogger returns a tint logger on w at info level, or debug with --debug.
func newLogger(w io.Writer, noColor bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

func stderrLogger() *slog.Logger {
	return newLogger(os.Stderr, false)
}
