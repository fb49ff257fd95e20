package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log and manage drink portions",
}

var (
	logAmount float64
	logUnit   string
	logDrink  string
	logDate   string
	logTime   string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a drink portion",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := service.ParseWaterUnit(logUnit)
		if err != nil {
			return err
		}
		loggedAt, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddPortion(sqldb, service.AddPortionInput{
				Amount:   logAmount,
				Unit:     unit,
				Drink:    logDrink,
				LoggedAt: loggedAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged portion %d\n", id)
			return nil
		})
	},
}

var logListDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portions for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			progress, _, err := service.DayProgress(sqldb, logListDate)
			if err != nil {
				return err
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			if len(progress.Portions) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No portions logged for %s\n", progress.Day)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tDRINK\tAMOUNT")
			for _, p := range progress.Portions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					p.ID, p.LoggedAt.Format("15:04"), p.Drink, formatVolume(p.AmountML, unit))
			}
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged portion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("portion id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemovePortion(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted portion %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logDeleteCmd)

	logAddCmd.Flags().Float64Var(&logAmount, "amount", 0, "Amount to log")
	logAddCmd.Flags().StringVar(&logUnit, "unit", "ml", "Unit: ml or fl-oz")
	logAddCmd.Flags().StringVar(&logDrink, "drink", "water", "Drink kind (see 'drip drinks')")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&logTime, "time", "", "Time HH:MM")
	_ = logAddCmd.MarkFlagRequired("amount")

	logListCmd.Flags().StringVar(&logListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
