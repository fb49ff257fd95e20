package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's hydration progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			progress, totals, err := service.DayProgress(sqldb, todayDate)
			if err != nil {
				return err
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", progress.Day)
			fmt.Fprintf(out, "Goal: %s\n", formatVolume(progress.GoalML, unit))
			fmt.Fprintf(out, "Intake: %s raw | %s net\n", formatVolume(totals.RawML, unit), formatVolume(totals.NetML, unit))
			fmt.Fprintf(out, "Progress: %.0f%%\n", totals.Percent)
			if totals.DehydrationML > 0 {
				fmt.Fprintf(out, "Dehydration: %s\n", formatVolume(totals.DehydrationML, unit))
			}
			if totals.CaffeineMG > 0 {
				fmt.Fprintf(out, "Caffeine: %.0f mg\n", totals.CaffeineMG)
			}
			if totals.Calories > 0 {
				fmt.Fprintf(out, "Calories: %.0f kcal | Sugar: %.1fg\n", totals.Calories, totals.SugarG)
			}
			fmt.Fprintf(out, "Portions: %d\n", len(progress.Portions))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
