package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sidsat",
	Short: "Survey-Inspired Decimation solver for random 3-SAT formulas",
	Long: `sidsat decides random 3-SAT formulas near the satisfiability threshold
using Survey Propagation combined with iterative variable fixing, unit
propagation, and a WalkSAT local-search fallback.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
