package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your goal streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			best, current, err := service.Streaks(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d days\n", current)
			fmt.Fprintf(cmd.OutOrStdout(), "Best streak: %d days\n", best)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
