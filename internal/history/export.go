package history

import (
	"errors"
	"fmt"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/parquet"
)

// ExecuteHistoryExport writes every tracked run and country summary to two Parquet files
// named after outputFile.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total country records: %d\n", status.TableSizes[runCountriesTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	countries, err := store.GetAllRunCountries()
	if err != nil {
		return fmt.Errorf("failed to retrieve run countries: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	countriesFile := outputFile + ".run_countries.parquet"
	if err := parquet.WriteRunCountriesParquet(parquet.ConvertRunCountryRecords(countries), countriesFile); err != nil {
		return fmt.Errorf("failed to write run countries: %w", err)
	}
	fmt.Printf("Exported %d country records to: %s\n", len(countries), countriesFile)

	return nil
}
