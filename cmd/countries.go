package cmd

import (
	"github.com/huangsam/trajectory/core"
	"github.com/huangsam/trajectory/internal/contract"
	"github.com/spf13/cobra"
)

// countriesCmd lists the countries that can be selected.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries available in the upstream feed",
	Long: `List every valid country of the upstream summary with its identifier,
display name and total confirmed cases, sorted by identifier.

Identifiers and names from this list can be passed to 'trajectory run --countries'.

Examples:
  trajectory countries
  trajectory countries --output csv --output-file countries.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCountries(rootCtx, cfg, source); err != nil {
			contract.LogFatal("Cannot list countries", err)
		}
	},
}
