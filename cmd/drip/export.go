package drip

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked history as JSON or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "json" && exportFormat != "csv" {
			return fmt.Errorf("invalid --format %q (use json or csv)", exportFormat)
		}
		return withDB(func(sqldb *sql.DB) error {
			w := cmd.OutOrStdout()
			if exportOut != "" {
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if exportFormat == "json" {
				return service.ExportJSON(sqldb, w)
			}
			return service.ExportCSV(sqldb, w)
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
}
