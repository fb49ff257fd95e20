package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/model"
	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the daily hydration goal from your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			metrics, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			if metrics == nil {
				return fmt.Errorf("no profile configured; run 'drip profile set' first")
			}
			tuning, unit, err := service.PlanningConfig(sqldb)
			if err != nil {
				return err
			}
			plan := service.PlanHydration(*metrics, tuning, unit)
			fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %s (%d cups)\n", formatVolume(plan.GoalML, unit), plan.Cups)
			fmt.Fprintf(cmd.OutOrStdout(), "Profile: %s tuning\n", tuning.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Starts: %s\n", plan.StartsAt.Format("2006-01-02"))
			return nil
		})
	},
}

var macroGoalKind string

var planMacrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Compute a daily calorie and macro target from the same profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := model.MacroGoalKind(macroGoalKind)
		switch kind {
		case model.MacroGoalLose, model.MacroGoalMaintain, model.MacroGoalGain:
		default:
			return fmt.Errorf("invalid --goal %q (use lose, maintain, or gain)", macroGoalKind)
		}
		return withDB(func(sqldb *sql.DB) error {
			metrics, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			if metrics == nil {
				return fmt.Errorf("no profile configured; run 'drip profile set' first")
			}
			plan := service.PlanMacros(*metrics, kind, service.DefaultMacroTuning)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", plan.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1fg\nFat: %.1fg\nCarbs: %.1fg\n", plan.ProteinG, plan.FatG, plan.CarbsG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planMacrosCmd)
	planMacrosCmd.Flags().StringVar(&macroGoalKind, "goal", "maintain", "Weight goal: lose, maintain, or gain")
}
