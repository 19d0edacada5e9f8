package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsgrep",
	Short: "Search platform news and posts with combined queries",
	Long: `Newsgrep queries the platform's news and post search APIs, merging
multiple search terms into a single OR-combined request to minimize
per-result billing. Curated news stories are preferred; post search runs
as a fallback when no stories are found, or in addition on request.`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
