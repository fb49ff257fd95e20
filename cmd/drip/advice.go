package drip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Manage cached daily advisories",
}

var adviceDate string

var adviceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cached advisories for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			advisor := service.NewAdvisor(sqldb)
			entries, err := advisor.Entries(adviceDate)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No advisories cached")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s (computed %s)\n",
					entry.Source, entry.Payload, entry.ComputedAt.Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var (
	adviceSource  string
	advicePayload string
	adviceRefresh bool
)

// The advisory payload itself comes from an external collaborator (weather
// or sleep analysis); this command plays the cache side, storing whatever
// the collaborator produced unless a fresh-enough entry already exists.
var advicePutCmd = &cobra.Command{
	Use:   "put",
	Short: "Cache an externally computed advisory",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := service.ParseAdvisorySource(adviceSource)
		if err != nil {
			return err
		}
		if advicePayload == "" {
			return fmt.Errorf("--payload is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			advisor := service.NewAdvisor(sqldb)
			fn := func(ctx context.Context) (string, error) { return advicePayload, nil }
			var stored string
			if adviceRefresh {
				e, err := advisor.Refresh(cmd.Context(), adviceDate, source, fn)
				if err != nil {
					return err
				}
				stored = e.Payload
			} else {
				e, err := advisor.GetOrCompute(cmd.Context(), adviceDate, source, fn)
				if err != nil {
					return err
				}
				stored = e.Payload
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", source, stored)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(adviceCmd)
	adviceCmd.AddCommand(adviceShowCmd)
	adviceCmd.AddCommand(advicePutCmd)

	adviceCmd.PersistentFlags().StringVar(&adviceDate, "date", "", "Date YYYY-MM-DD (default today)")
	advicePutCmd.Flags().StringVar(&adviceSource, "source", "", "Advisory source: weather or sleep")
	advicePutCmd.Flags().StringVar(&advicePayload, "payload", "", "Advisory payload from the external analysis")
	advicePutCmd.Flags().BoolVar(&adviceRefresh, "refresh", false, "Replace today's cached entry")
	_ = advicePutCmd.MarkFlagRequired("source")
}
