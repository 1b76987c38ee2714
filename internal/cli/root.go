// Package cli implements the command-line interface for cubecross.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubecross",
	Short: "Cross trainer for the 3x3x3 puzzle",
	Long: `cubecross - plan the opening cross of a layer-by-layer 3x3x3 solve.

Save puzzle states by name, scramble and turn them from the command line,
and ask for cross solutions: one edge at a time, a full greedy plan, or an
exhaustive search over every edge order, validated by replay.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubecross/cubecross.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
