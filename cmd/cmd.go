// Package cmd defines the command-line interface for trajectory.
package cmd

import (
	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or svg")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for parquet and svg)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percentage columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("api-url", schema.DefaultAPIURL, "Base URL of the covid19api-compatible feed")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Timeout of each upstream request (e.g. 30s, 1m)")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Prefix progress lines with emojis (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runCmd to Viper
	runCmd.Flags().Int64("threshold", 0, "Select every country with at least this many total confirmed cases")
	runCmd.Flags().StringSlice("countries", nil, "Comma-separated country identifiers or names to select")
	runCmd.Flags().String("smoothing", "yes", "Smooth totals and daily counts with a moving average (yes/no/true/false/1/0)")
	runCmd.Flags().Int("window", schema.DefaultSmoothingWindow, "Odd moving-average window in days")
	runCmd.Flags().Int("degree", schema.DefaultSmoothingDegree, "Number of smoothing passes")
	runCmd.Flags().Int64("visibility", schema.DefaultVisibility, "Hide points at or below this count in frames")
	if err := viper.BindPFlags(runCmd.Flags()); err != nil {
		contract.LogFatal("Error binding run flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
