package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/parquet"
	"github.com/huangsam/trajectory/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrajectoryResults outputs a trajectory, dispatching based on the output format configured.
func WriteTrajectoryResults(result *schema.TrajectoryResult, frames schema.FrameSet, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForTrajectory(w, result, frames)
		}, "Wrote JSON trajectory"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForFrames(w, frames, intFmt)
		}, "Wrote CSV frames"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteFramesParquet(parquet.ConvertFrames(frames), w)
		}, "Wrote Parquet frames"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.SVGOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrajectorySVG(w, frames)
		}, "Wrote SVG animation"); err != nil {
			return fmt.Errorf("error writing SVG output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrajectoryTable(result, frames, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrajectoryTable prints one summary row per admitted country.
func writeTrajectoryTable(result *schema.TrajectoryResult, frames schema.FrameSet, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Country", "First Day", "Total", "New", "Peak New", "Peak Date", "% Peak", "Trend"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range result.Summaries {
		pct := pctOfPeak(s.FinalNew, s.PeakNew)
		label := contract.GetPlainLabel(pct)
		if cfg.UseColors {
			label = contract.GetColorLabel(pct)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Display, nameWidth),
			frameDate(result, frames, s.FirstDay),
			fmt.Sprintf(intFmt, s.FinalTotal),
			fmt.Sprintf(intFmt, s.FinalNew),
			fmt.Sprintf(intFmt, s.PeakNew),
			frameDate(result, frames, s.PeakDay),
			fmtFloat(pct),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	days := result.Days()
	if _, err := fmt.Fprintf(writer, "Showing %d countries over %d days (%s to %s)\n",
		len(result.Keys), days, frameDate(result, frames, result.EarliestDay), frameDate(result, frames, result.LatestDay)); err != nil {
		return err
	}
	smoothing := "off"
	if result.Smoothing {
		smoothing = fmt.Sprintf("window %d, degree %d", result.Window, result.Degree)
	}
	if _, err := fmt.Fprintf(writer, "Trajectory completed in %v. Smoothing: %s. History backend: %s\n", duration, smoothing, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// frameDate returns the calendar label of a Julian day inside the result window.
func frameDate(result *schema.TrajectoryResult, frames schema.FrameSet, day int) string {
	idx := day - result.EarliestDay
	if idx < 0 || idx >= len(frames.Frames) {
		return "-"
	}
	return frames.Frames[idx].Date
}
