package core

import (
	"fmt"
	"time"

	"github.com/huangsam/trajectory/schema"
)

// isoDateLayout is the date prefix of every upstream record.
const isoDateLayout = "2006-01-02"

// NormalizeSeries converts a country's raw cumulative records into a dense
// per-day array anchored at the Julian day-of-year of the first record.
// The feed is daily-dense, so record i is day StartDay+i.
func NormalizeSeries(identifier string, records []schema.DailyRecord) (schema.DailySeries, error) {
	if len(records) == 0 {
		return schema.DailySeries{}, fmt.Errorf("%w: %s", schema.ErrEmptySeries, identifier)
	}

	start, err := parseRecordDate(records[0].Date)
	if err != nil {
		return schema.DailySeries{}, fmt.Errorf("failed to parse first date of %s: %w", identifier, err)
	}

	counts := make([]int64, len(records))
	for i, r := range records {
		counts[i] = r.Cases
	}

	startDay := start.YearDay()
	return schema.DailySeries{
		Identifier: identifier,
		StartDay:   startDay,
		EndDay:     startDay + len(records) - 1,
		Year:       start.Year(),
		Counts:     counts,
	}, nil
}

// parseRecordDate reads the YYYY-MM-DD prefix of an ISO 8601 timestamp.
func parseRecordDate(date string) (time.Time, error) {
	if len(date) < len(isoDateLayout) {
		return time.Time{}, fmt.Errorf("date %q is too short", date)
	}
	return time.Parse(isoDateLayout, date[:len(isoDateLayout)])
}
