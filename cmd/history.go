package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/history"
	"github.com/huangsam/trajectory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyConfigSetup loads only the history backend settings. It does NOT open
// the store or create tables, so clear and migrate can run on any database state.
func historyConfigSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseDatabaseBackend(viper.GetString("history-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads the history settings and opens the store.
func historySetup() error {
	if err := historyConfigSetup(); err != nil {
		return err
	}
	if err := history.InitStores(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyConfigSetupWrapper wraps historyConfigSetup for clear and migrate.
func historyConfigSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyConfigSetup()
}

// sqliteFilePath returns the SQLite file used by the configured backend.
func sqliteFilePath() string {
	if cfg.HistoryDBConnect != "" {
		return cfg.HistoryDBConnect
	}
	return contract.GetHistoryDBFilePath()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization instead of the full
// sharedSetup. They never contact the upstream feed.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage tracked trajectory runs and exports",
	Long: `Manage the history of trajectory runs.

When a history backend is configured, every run stores:
- Run metadata (timestamp, selection and smoothing parameters, duration)
- One summary per admitted country (first day, final total, peak daily count)

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default).
MySQL connection strings need parseTime=true.

Subcommands:
  status  - Show tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Track runs in the default SQLite file
  trajectory run --countries italy --history-backend sqlite
  trajectory history status --history-backend sqlite`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show the backend, connection status, number of tracked runs, last and
oldest run timestamps, distinct countries and table sizes.

Examples:
  trajectory history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := history.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all tracked runs to two Parquet files named after --output-file:

  <output-file>.runs.parquet           run metadata
  <output-file>.run_countries.parquet  per-country summaries

Requires: --output-file parameter

Examples:
  trajectory history export --history-backend sqlite --output-file trajectory
  duckdb -c "SELECT * FROM read_parquet('trajectory.run_countries.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(history.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked run history",
	Long: `Delete all stored runs and country summaries.

For SQLite the database file is removed. For MySQL and PostgreSQL the history
tables and the migration bookkeeping table are dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  trajectory history export --history-backend sqlite --output-file backup
  trajectory history clear --history-backend sqlite`,
	PreRunE: historyConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ClearHistory(cfg.HistoryBackend, sqliteFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  trajectory history migrate --history-backend postgresql

  # Migrate to specific version
  trajectory history migrate --history-backend sqlite --target-version 1

  # Rollback everything
  trajectory history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		connStr := cfg.HistoryDBConnect
		if cfg.HistoryBackend == schema.SQLiteBackend {
			connStr = sqliteFilePath()
		}
		targetVersion := viper.GetInt("target-version")
		if err := history.MigrateHistory(cfg.HistoryBackend, connStr, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
