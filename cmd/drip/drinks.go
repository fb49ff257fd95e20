package drip

import (
	"fmt"

	"github.com/denizcan/drip-cli/internal/service"
	"github.com/spf13/cobra"
)

var drinksCmd = &cobra.Command{
	Use:   "drinks",
	Short: "List the drink catalog and hydration coefficients",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "DRINK\tFACTOR\tCATEGORY\tCAFFEINE/100ML\tFLAGS")
		for _, info := range service.Drinks() {
			flags := ""
			if info.ContainsCaffeine {
				flags += "caffeine "
			}
			if info.ContainsAlcohol {
				flags += "alcohol"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\t%s\t%.0f mg\t%s\n",
				info.Kind, info.HydrationFactor, info.Category, info.CaffeinePer100ML, flags)
		}
	},
}

func init() {
	rootCmd.AddCommand(drinksCmd)
}
