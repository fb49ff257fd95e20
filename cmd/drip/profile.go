package drip

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the body profile used by the planners",
}

var (
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileAge      int
	profileActivity string
	profileClimate  string
	profileSleep    float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetProfileInput{
			Gender:   profileGender,
			HeightCM: profileHeight,
			WeightKG: profileWeight,
			AgeYears: profileAge,
			Activity: profileActivity,
			Climate:  profileClimate,
		}
		if cmd.Flags().Changed("sleep-hours") {
			v := profileSleep
			in.SleepHours = &v
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetProfile(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			metrics, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			if metrics == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gender: %s\n", metrics.Gender)
			fmt.Fprintf(out, "Height: %.0f cm | Weight: %.1f kg | Age: %d\n", metrics.HeightCM, metrics.WeightKG, metrics.AgeYears)
			fmt.Fprintf(out, "Activity: %s | Climate: %s\n", metrics.Activity, metrics.Climate)
			if metrics.SleepHrs != nil {
				fmt.Fprintf(out, "Sleep: %.1f h\n", *metrics.SleepHrs)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, or other")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "moderate", "Activity level")
	profileSetCmd.Flags().StringVar(&profileClimate, "climate", "temperate", "Climate")
	profileSetCmd.Flags().Float64Var(&profileSleep, "sleep-hours", 0, "Average sleep hours")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("age")
}
