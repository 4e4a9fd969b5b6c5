package cmd

import (
	"github.com/huangsam/trajectory/core"
	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/history"
	"github.com/spf13/cobra"
)

// runCmd aligns, smooths and renders the selected countries.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the total vs new trajectory of the selected countries",
	Long: `Fetch the confirmed-case history of every selected country, align all of
them on one calendar, derive daily new cases and smooth both series.

Selection (pick one):
  --countries  explicit list of identifiers or names, matched case-insensitively
  --threshold  every country with at least this many total confirmed cases
  (neither)    every country in the feed

Every requested country must exist in the feed or the run fails before any
history is downloaded.

Examples:
  # Compare a handful of countries
  trajectory run --countries italy,spain,us,korea-south

  # Every country past 15000 cases, lighter smoothing
  trajectory run --threshold 15000 --window 3 --degree 1

  # Animated log-log plot
  trajectory run --countries italy,germany --output svg --output-file trajectory.svg

  # Long-format frames for pandas or DuckDB
  trajectory run --countries italy --output parquet --output-file frames.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrajectory(rootCtx, cfg, source, history.Manager); err != nil {
			contract.LogFatal("Cannot build trajectory", err)
		}
	},
}
