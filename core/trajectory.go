package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
)

// GetTrajectoryResult runs the whole pipeline short of rendering: it selects
// countries from the summary feed, folds their histories into one aligned
// matrix, derives daily deltas and smooths both matrices.
//
// Histories are fetched one at a time in row order and the first failure
// aborts the run, because fold order determines the matrix contents.
//
// A tracked run that fails is still closed, with zero countries and days.
func GetTrajectoryResult(ctx context.Context, cfg *contract.Config, source contract.DataSource, mgr contract.StoreManager) (result *schema.TrajectoryResult, err error) {
	if !shouldSuppressHeader(ctx) {
		logTrajectoryHeader(cfg)
	}

	// --- 0. Begin Run Tracking (if configured) ---
	var historyStore contract.HistoryStore
	if mgr != nil {
		historyStore = mgr.GetHistoryStore()
	}
	if historyStore != nil {
		runID, beginErr := historyStore.BeginRun(time.Now(), cfg.ConfigParams())
		if beginErr != nil {
			contract.LogWarn("Run tracking initialization failed", beginErr)
		} else if runID > 0 {
			ctx = withRunID(ctx, runID)
			defer func() {
				if err == nil {
					return
				}
				if endErr := historyStore.EndRun(runID, time.Now(), 0, 0); endErr != nil {
					contract.LogWarn("Failed to finalize run tracking", endErr)
				}
			}()
		}
	}

	// --- 1. Selection ---
	records, err := source.ListSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch country summary: %w", err)
	}
	admissions, err := SelectCountries(records, NewSelector(cfg))
	if err != nil {
		return nil, err
	}
	if len(admissions) == 0 {
		return nil, errors.New("no countries matched the selection")
	}

	// --- 2. Alignment ---
	var state AlignmentState
	for _, a := range admissions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		daily, err := source.DailyHistory(ctx, a.Identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch history of %s: %w", a.Identifier, err)
		}
		series, err := NormalizeSeries(a.Identifier, daily)
		if err != nil {
			return nil, err
		}
		if state, err = Fold(state, series); err != nil {
			return nil, err
		}
		if !shouldSuppressHeader(ctx) {
			logSeriesProgress(cfg, a.Display, series)
		}
	}

	// --- 3. Deltas and Smoothing ---
	result, err = buildResult(cfg, state, admissions)
	if err != nil {
		return nil, err
	}

	// --- 4. End Run Tracking ---
	if runID := getRunID(ctx); historyStore != nil && runID > 0 {
		for _, summary := range result.Summaries {
			if err := historyStore.RecordCountry(runID, summary); err != nil {
				contract.LogWarn("Failed to record country summary", err)
				break
			}
		}
		if err := historyStore.EndRun(runID, time.Now(), len(result.Keys), result.Days()); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return result, nil
}

// buildResult turns the final alignment into the renderer contract.
// Deltas always come from the unsmoothed cumulative matrix.
func buildResult(cfg *contract.Config, state AlignmentState, admissions []schema.Admission) (*schema.TrajectoryResult, error) {
	totals := state.Rows
	news := Deltas(state.Rows)
	if cfg.Smoothing {
		var err error
		if totals, err = Smooth(totals, cfg.Window, cfg.Degree); err != nil {
			return nil, err
		}
		if news, err = Smooth(news, cfg.Window, cfg.Degree); err != nil {
			return nil, err
		}
	}

	result := &schema.TrajectoryResult{
		Keys:        make([]string, len(admissions)),
		Names:       make([]string, len(admissions)),
		Totals:      totals,
		News:        news,
		EarliestDay: state.Earliest,
		LatestDay:   state.Latest,
		Year:        state.Year,
		Smoothing:   cfg.Smoothing,
		Window:      cfg.Window,
		Degree:      cfg.Degree,
	}
	for i, a := range admissions {
		result.Keys[i] = a.Key
		result.Names[i] = a.Display
	}
	result.Summaries = Summarize(result)
	return result, nil
}

// Summarize computes per-row statistics from the result matrices.
func Summarize(result *schema.TrajectoryResult) []schema.CountrySummary {
	summaries := make([]schema.CountrySummary, len(result.Keys))
	for r := range result.Keys {
		totals, news := result.Totals[r], result.News[r]
		s := schema.CountrySummary{
			Key:      result.Keys[r],
			Display:  result.Names[r],
			FirstDay: result.EarliestDay,
			PeakDay:  result.EarliestDay,
		}
		for c, v := range totals {
			if v != 0 {
				s.FirstDay = result.EarliestDay + c
				break
			}
		}
		for c, v := range news {
			if v > s.PeakNew {
				s.PeakNew = v
				s.PeakDay = result.EarliestDay + c
			}
		}
		if n := len(totals); n > 0 {
			s.FinalTotal = totals[n-1]
			s.FinalNew = news[n-1]
		}
		summaries[r] = s
	}
	return summaries
}

// ListCountries returns the valid entries of the summary feed sorted by identifier.
func ListCountries(ctx context.Context, source contract.DataSource) ([]schema.CountryRecord, error) {
	records, err := source.ListSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch country summary: %w", err)
	}
	return ValidCountries(records), nil
}
