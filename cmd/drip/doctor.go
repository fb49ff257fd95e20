package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database for consistency problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Orphan portions: %d\n", report.OrphanPortions)
			fmt.Fprintf(out, "Non-positive portions: %d\n", report.NonPositivePortions)
			fmt.Fprintf(out, "Unknown drink rows: %d\n", report.UnknownDrinkRows)
			fmt.Fprintf(out, "Negative goal days: %d\n", report.NegativeGoalDays)
			fmt.Fprintf(out, "Duplicate advisories: %d\n", report.DuplicateAdvisories)
			if report.Clean() {
				fmt.Fprintln(out, "Database looks healthy")
			} else {
				return fmt.Errorf("database integrity issues found")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
