package drip

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "drip",
	Short: "drip tracks daily hydration from your terminal",
	Long:  "drip is a local-first hydration tracking CLI with a personalized daily goal, drink-aware progress, statistics, and cached advisories.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
