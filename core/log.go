package core

import (
	"fmt"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
)

// logLine prints a progress line, with an emoji prefix when enabled.
func logLine(cfg *contract.Config, emoji, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cfg.UseEmojis {
		fmt.Printf("%s %s\n", emoji, msg)
	} else {
		fmt.Println(msg)
	}
}

// logTrajectoryHeader prints a concise, 2-line header for a trajectory run.
func logTrajectoryHeader(cfg *contract.Config) {
	switch cfg.Selection {
	case schema.ThresholdSelection:
		logLine(cfg, "🔎", "Selection: countries with at least %d confirmed cases", cfg.Threshold)
	case schema.ListSelection:
		logLine(cfg, "🔎", "Selection: %d requested countries", len(cfg.Countries))
	default:
		logLine(cfg, "🔎", "Selection: all countries")
	}
	if cfg.Smoothing {
		logLine(cfg, "📐", "Smoothing: window %d, degree %d", cfg.Window, cfg.Degree)
	} else {
		logLine(cfg, "📐", "Smoothing: off")
	}
}

// logSeriesProgress reports a country's first day and latest total.
func logSeriesProgress(cfg *contract.Config, display string, s schema.DailySeries) {
	logLine(cfg, "📈", "%s starts at Julian Day %d and currently has %d total confirmed cases",
		display, s.StartDay, s.Counts[len(s.Counts)-1])
}
