package core

import (
	"time"

	"github.com/huangsam/trajectory/schema"
)

// axisHeadroom stretches the upper plot limits past the largest value.
const axisHeadroom = 5

// DateLabel formats Julian day of year as a dd/mm/yyyy calendar date.
func DateLabel(year, day int) string {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, day-1).
		Format(schema.DateLabelFormat)
}

// BuildFrames derives one animation frame per calendar column of the result.
// A point is visible when both its total and new counts exceed visibility.
func BuildFrames(result *schema.TrajectoryResult, visibility int64) schema.FrameSet {
	days := result.Days()
	trailStarts := make([]int, len(result.Keys))
	for r := range result.Keys {
		trailStarts[r] = firstPositive(result.Totals[r], result.News[r])
	}

	frames := make([]schema.Frame, days)
	for i := range days {
		frame := schema.Frame{
			Index:  i,
			Day:    result.EarliestDay + i,
			Date:   DateLabel(result.Year, result.EarliestDay+i),
			Points: make([]schema.FramePoint, len(result.Keys)),
		}
		for r, name := range result.Names {
			total, added := result.Totals[r][i], result.News[r][i]
			frame.Points[r] = schema.FramePoint{
				Country:    name,
				Total:      total,
				New:        added,
				Visible:    total > visibility && added > visibility,
				TrailStart: min(trailStarts[r], i),
			}
		}
		frames[i] = frame
	}

	return schema.FrameSet{
		Frames: frames,
		Bounds: schema.Bounds{
			MinTotal: minAtLeast(result.Totals, visibility),
			MaxTotal: maxValue(result.Totals) * axisHeadroom,
			MinNew:   minAtLeast(result.News, visibility),
			MaxNew:   maxValue(result.News) * axisHeadroom,
		},
	}
}

// firstPositive returns the first column where both series can be drawn on a
// log axis, or the row length when there is none.
func firstPositive(totals, news []int64) int {
	for c := range totals {
		if totals[c] > 0 && news[c] > 0 {
			return c
		}
	}
	return len(totals)
}

// minAtLeast returns the smallest cell not below floor, or floor when none is.
func minAtLeast(m [][]int64, floor int64) int64 {
	found := false
	var lo int64
	for _, row := range m {
		for _, v := range row {
			if v >= floor && (!found || v < lo) {
				lo, found = v, true
			}
		}
	}
	if !found {
		return max(floor, 1)
	}
	return max(lo, 1)
}

// maxValue returns the largest cell, never less than 1.
func maxValue(m [][]int64) int64 {
	var hi int64 = 1
	for _, row := range m {
		for _, v := range row {
			hi = max(hi, v)
		}
	}
	return hi
}
