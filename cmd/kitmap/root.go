package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twilightdev/kitmap/internal/logger"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kitmap",
	Short: "Keyboard usage heatmaps and statistics",
	Long: `Kitmap records your keyboard activity into a local SQLite database and
renders it as a keyboard heatmap with usage statistics, either in the
terminal or in a browser dashboard.

All data stays on your machine.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
