package drip

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	statsFrom string
	statsTo   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show hydration statistics over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from := statsFrom
		to := statsTo
		if to == "" {
			to = time.Now().Format("2006-01-02")
		}
		if from == "" {
			from = time.Now().AddDate(0, 0, -29).Format("2006-01-02")
		}
		return withDB(func(sqldb *sql.DB) error {
			stats, err := service.StatisticsRange(sqldb, from, to)
			if err != nil {
				return err
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Range: %s .. %s\n", stats.FromDate, stats.ToDate)
			fmt.Fprintf(out, "Days with portions: %d (%d portions)\n", stats.DaysWithPortions, stats.PortionCount)
			if stats.DaysWithPortions == 0 {
				return nil
			}
			fmt.Fprintf(out, "Average daily intake: %s raw | %s net\n",
				formatVolume(stats.AvgDailyRawML, unit), formatVolume(stats.AvgDailyNetML, unit))
			fmt.Fprintf(out, "Average portion: %s\n", formatVolume(stats.AvgPortionML, unit))
			fmt.Fprintf(out, "Goal achievement: %.0f%%\n", stats.AchievementPct)
			fmt.Fprintf(out, "Favorite drink: %s\n", stats.FavoriteDrink)
			fmt.Fprintf(out, "Most active day: %s | Least active day: %s\n", stats.MostActiveDay, stats.LeastActiveDay)
			fmt.Fprintf(out, "Streak: best %d | current %d\n", stats.BestStreak, stats.CurrentStreak)
			for i, avg := range stats.WeeklyAvgRawML {
				fmt.Fprintf(out, "Week %d avg: %s\n", i+1, formatVolume(avg, unit))
			}
			return nil
		})
	},
}

var statsDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "Show per-day raw totals in the range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from := statsFrom
		to := statsTo
		if to == "" {
			to = time.Now().Format("2006-01-02")
		}
		if from == "" {
			from = time.Now().AddDate(0, 0, -29).Format("2006-01-02")
		}
		return withDB(func(sqldb *sql.DB) error {
			stats, err := service.StatisticsRange(sqldb, from, to)
			if err != nil {
				return err
			}
			unit, err := service.DisplayUnit(sqldb)
			if err != nil {
				return err
			}
			days := make([]string, 0, len(stats.DailyRawML))
			for day := range stats.DailyRawML {
				days = append(days, day)
			}
			sort.Strings(days)
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tRAW")
			for _, day := range days {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", day, formatVolume(stats.DailyRawML[day], unit))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsDaysCmd)
	statsCmd.PersistentFlags().StringVar(&statsFrom, "from", "", "Start date YYYY-MM-DD (default 30 days ago)")
	statsCmd.PersistentFlags().StringVar(&statsTo, "to", "", "End date YYYY-MM-DD (default today)")
}
