// Command astargrid solves and visualises A* searches on grid worlds.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "astargrid",
		Short:         "A* search on grid worlds",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

// newLogger writes text logs to w, at debug level when --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
