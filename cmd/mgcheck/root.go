// mgcheck validates the on-disk artifact tree of the event-generation
// pipeline (MadGraph processes, run directories, event files) before the
// Delphes-reading stage consumes it.
//
// Usage:
//
//	mgcheck check [--base-dir=<dir>] [--workflow=<path>] [--parallel=N] [--json]
//	mgcheck serve [--base-dir=<dir>] [--workflow=<path>]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mgcheck",
	Short: "Validate event-generation pipeline artifacts",
	Long:  "mgcheck checks that every expected process directory, run directory and\nevent file is present in the generation tree, and that the downstream\nDelphes input layout exists, before the next pipeline stage runs.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A failed validation already printed its report; anything else
		// still needs to reach the operator.
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
