// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/trajectory/schema"
)

// DataSource defines the upstream case-count feed.
// This allows the core pipeline to be tested without network access.
type DataSource interface {
	// ListSummary returns every country in the feed with its total confirmed count.
	ListSummary(ctx context.Context) ([]schema.CountryRecord, error)

	// DailyHistory returns the cumulative daily series of one country,
	// starting from its first recorded case.
	DailyHistory(ctx context.Context, identifier string) ([]schema.DailyRecord, error)
}

// StoreManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking trajectory runs.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalCountries, totalDays int) error

	// RecordCountry stores the summary statistics of one admitted country
	RecordCountry(runID int64, summary schema.CountrySummary) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every tracked run ordered by ID
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllRunCountries returns every tracked country summary ordered by run and key
	GetAllRunCountries() ([]schema.RunCountryRecord, error)

	// Close closes the underlying connection
	Close() error
}
