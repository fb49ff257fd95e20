package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the configured daily goal override",
}

var (
	goalAmount float64
	goalUnit   string
	goalDate   string
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a daily goal override with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := service.ParseWaterUnit(goalUnit)
		if err != nil {
			return err
		}
		in := service.SetGoalOverrideInput{
			Goal:          goalAmount,
			Unit:          unit,
			EffectiveDate: goalDate,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetGoalOverride(sqldb, in); err != nil {
				return err
			}
			if in.EffectiveDate == "" {
				in.EffectiveDate = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set goal override effective %s\n", in.EffectiveDate)
			return nil
		})
	},
}

var currentGoalDate string

var goalCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the goal override in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goal, err := service.GoalForDate(sqldb, currentGoalDate)
			if err != nil {
				return err
			}
			if goal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No goal override configured")
				return nil
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Effective: %s\nGoal: %s\n", goal.EffectiveDate, formatVolume(goal.GoalML, unit))
			return nil
		})
	},
}

var goalHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show goal override history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goals, err := service.GoalHistory(sqldb)
			if err != nil {
				return err
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tGOAL")
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", g.EffectiveDate, formatVolume(g.GoalML, unit))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalCurrentCmd)
	goalCmd.AddCommand(goalHistoryCmd)

	goalSetCmd.Flags().Float64Var(&goalAmount, "amount", 0, "Goal amount")
	goalSetCmd.Flags().StringVar(&goalUnit, "unit", "ml", "Unit: ml or fl-oz")
	goalSetCmd.Flags().StringVar(&goalDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = goalSetCmd.MarkFlagRequired("amount")

	goalCurrentCmd.Flags().StringVar(&currentGoalDate, "date", "", "Date YYYY-MM-DD (default today)")
}
