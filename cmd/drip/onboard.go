package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	onboardAnswers = map[string]*string{}
	onboardSave    bool
)

// onboard takes free-text answers the way an onboarding wizard would hand
// them over and previews the plan they produce.
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Preview a hydration plan from free-text onboarding answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := make(map[string]string, len(onboardAnswers))
		for key, value := range onboardAnswers {
			answers[key] = *value
		}
		metrics, err := service.ParseUserMetrics(answers)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			tuning, unit, err := service.PlanningConfig(sqldb)
			if err != nil {
				return err
			}
			plan := service.PlanHydration(*metrics, tuning, unit)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Parsed: %s, %.0f cm, %.1f kg, %d y, %s activity, %s climate\n",
				metrics.Gender, metrics.HeightCM, metrics.WeightKG, metrics.AgeYears, metrics.Activity, metrics.Climate)
			fmt.Fprintf(out, "Daily goal: %s (%d cups)\n", formatVolume(plan.GoalML, unit), plan.Cups)
			fmt.Fprintf(out, "Starts: %s\n", plan.StartsAt.Format("2006-01-02"))

			if onboardSave {
				if err := service.SetProfile(sqldb, service.SetProfileInput{
					Gender:   answers["gender"],
					HeightCM: metrics.HeightCM,
					WeightKG: metrics.WeightKG,
					AgeYears: metrics.AgeYears,
					Activity: answers["activity"],
					Climate:  answers["climate"],
				}); err != nil {
					return err
				}
				fmt.Fprintln(out, "Profile saved")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	for _, key := range []string{"gender", "height", "weight", "age", "activity", "climate"} {
		value := ""
		onboardAnswers[key] = &value
		onboardCmd.Flags().StringVar(onboardAnswers[key], key, "", fmt.Sprintf("Onboarding answer for %s (free text)", key))
	}
	_ = onboardCmd.MarkFlagRequired("gender")
	_ = onboardCmd.MarkFlagRequired("height")
	_ = onboardCmd.MarkFlagRequired("weight")
	_ = onboardCmd.MarkFlagRequired("age")
}
