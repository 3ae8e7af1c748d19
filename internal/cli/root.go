package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Personal study journal with derived statistics",
	Long: `compass is a personal study journal built around one document per day.

Log hours, goals, habits, and reflections; the server derives hour totals,
streaks, heatmaps, and weekly reports from the raw documents.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
