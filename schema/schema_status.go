package schema

import "time"

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalCountries int              `json:"total_countries"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// RunRecord represents a row from the trajectory_runs table.
type RunRecord struct {
	RunID          int64
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int32
	TotalCountries int32
	TotalDays      int32
	ConfigParams   *string
}

// RunCountryRecord represents a row from the trajectory_run_countries table.
type RunCountryRecord struct {
	RunID      int64
	CountryKey string
	Display    string
	FirstDay   int32
	FinalTotal int64
	PeakNew    int64
	PeakDay    int32
}
