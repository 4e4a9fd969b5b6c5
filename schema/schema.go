// Package schema has models, enums and errors shared by all parts of trajectory.
package schema

// CountryRecord is one entry of the upstream summary feed.
type CountryRecord struct {
	Identifier     string `json:"identifier"` // URL slug, e.g. "united-kingdom"
	Name           string `json:"name"`       // Feed display name, e.g. "Korea, South"
	TotalConfirmed int64  `json:"total_confirmed"`
}

// DailyRecord is one day of a country's cumulative history as returned upstream.
type DailyRecord struct {
	Date  string `json:"date"` // ISO 8601, only the YYYY-MM-DD prefix is used
	Cases int64  `json:"cases"`
}

// DailySeries is a country's history normalized to a dense per-day array.
type DailySeries struct {
	Identifier string
	StartDay   int // Julian day-of-year of the first record
	EndDay     int // StartDay + len(Counts) - 1
	Year       int
	Counts     []int64
}

// Admission is a country that passed the selection filter.
type Admission struct {
	Key        string `json:"key"`        // lower-case lookup key
	Identifier string `json:"identifier"` // identifier used for the history fetch
	Display    string `json:"display"`    // name shown on the plot
}

// CountrySummary holds per-row statistics of a finished run.
type CountrySummary struct {
	Key        string `json:"key"`
	Display    string `json:"display"`
	FirstDay   int    `json:"first_day"` // first column with a non-zero total
	FinalTotal int64  `json:"final_total"`
	FinalNew   int64  `json:"final_new"`
	PeakNew    int64  `json:"peak_new"`
	PeakDay    int    `json:"peak_day"`
}

// TrajectoryResult is everything a renderer needs to draw the animation.
// Rows of Totals and News are aligned with Keys and Names; column i is
// Julian day EarliestDay+i of Year.
type TrajectoryResult struct {
	Keys        []string  `json:"keys"`
	Names       []string  `json:"names"`
	Totals      [][]int64 `json:"totals"`
	News        [][]int64 `json:"news"`
	EarliestDay int       `json:"earliest_day"`
	LatestDay   int       `json:"latest_day"`
	Year        int       `json:"year"`
	Smoothing   bool      `json:"smoothing"`
	Window      int       `json:"window"`
	Degree      int       `json:"degree"`

	Summaries []CountrySummary `json:"summaries"` // one per row, in row order
}

// Days returns the number of calendar columns in the result.
func (r TrajectoryResult) Days() int {
	if len(r.Totals) == 0 {
		return 0
	}
	return len(r.Totals[0])
}

// FramePoint is one country's position in a single animation frame.
type FramePoint struct {
	Country    string `json:"country"`
	Total      int64  `json:"total"`
	New        int64  `json:"new"`
	Visible    bool   `json:"visible"`
	TrailStart int    `json:"trail_start"` // first frame index of the trailing connector line
}

// Frame is one calendar day of the animation.
type Frame struct {
	Index  int          `json:"index"`
	Day    int          `json:"day"`  // Julian day-of-year
	Date   string       `json:"date"` // dd/mm/yyyy label
	Points []FramePoint `json:"points"`
}

// Bounds are the log-axis limits of the plot.
type Bounds struct {
	MinTotal int64 `json:"min_total"`
	MaxTotal int64 `json:"max_total"`
	MinNew   int64 `json:"min_new"`
	MaxNew   int64 `json:"max_new"`
}

// FrameSet is the renderer-ready view of a TrajectoryResult.
type FrameSet struct {
	Frames []Frame `json:"frames"`
	Bounds Bounds  `json:"bounds"`
}
