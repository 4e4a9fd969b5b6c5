// Package parquet provides data structures and functions for exporting trajectory
// frames and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/trajectory/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single tracked trajectory run.
// This struct maps to the trajectory_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	TotalCountries int32 `parquet:"total_countries,snappy"`
	TotalDays      int32 `parquet:"total_days,snappy"`

	// ConfigParams contains the JSON-encoded selection and smoothing parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunCountry represents the summary of one admitted country within a run.
// This struct maps to the trajectory_run_countries database table.
type RunCountry struct {
	RunID      int64  `parquet:"run_id,snappy"`
	CountryKey string `parquet:"country_key,snappy"`
	Display    string `parquet:"display,snappy"`
	FirstDay   int32  `parquet:"first_day,snappy"`
	FinalTotal int64  `parquet:"final_total,snappy"`
	PeakNew    int64  `parquet:"peak_new,snappy"`
	PeakDay    int32  `parquet:"peak_day,snappy"`
}

// FrameRow is one country's point in one animation frame, in long format.
type FrameRow struct {
	FrameIndex int32  `parquet:"frame_index,snappy"`
	Day        int32  `parquet:"day,snappy"`
	Date       string `parquet:"date,snappy"`
	Country    string `parquet:"country,snappy"`
	Total      int64  `parquet:"total,snappy"`
	New        int64  `parquet:"new,snappy"`
	Visible    bool   `parquet:"visible,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteRunCountriesParquet writes a slice of RunCountry structs to a Parquet file.
func WriteRunCountriesParquet(data []RunCountry, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteFramesParquet writes frame rows to w. The caller owns w.
func WriteFramesParquet(data []FrameRow, w io.Writer) error {
	return writeRows(data, w)
}

func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRows(data, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// writeRows infers the schema from the struct tags of T.
func writeRows[T any](data []T, w io.Writer) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:          record.RunID,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			RunDurationMs:  record.RunDurationMs,
			TotalCountries: record.TotalCountries,
			TotalDays:      record.TotalDays,
			ConfigParams:   record.ConfigParams,
		}
	}
	return result
}

// ConvertRunCountryRecords converts schema.RunCountryRecord to RunCountry for Parquet export.
func ConvertRunCountryRecords(records []schema.RunCountryRecord) []RunCountry {
	result := make([]RunCountry, len(records))
	for i, record := range records {
		result[i] = RunCountry(record)
	}
	return result
}

// ConvertFrames flattens a frame set into one row per frame and country.
func ConvertFrames(frames schema.FrameSet) []FrameRow {
	var rows []FrameRow
	for _, frame := range frames.Frames {
		for _, p := range frame.Points {
			rows = append(rows, FrameRow{
				FrameIndex: int32(frame.Index),
				Day:        int32(frame.Day),
				Date:       frame.Date,
				Country:    p.Country,
				Total:      p.Total,
				New:        p.New,
				Visible:    p.Visible,
			})
		}
	}
	return rows
}
