// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrajectory writes a finished trajectory and its frames using the configured output format.
func (ow *OutWriter) WriteTrajectory(result *schema.TrajectoryResult, frames schema.FrameSet, cfg *contract.Config, duration time.Duration) error {
	return WriteTrajectoryResults(result, frames, cfg, duration)
}

// WriteCountries writes the valid countries of the feed using the configured output format.
func (ow *OutWriter) WriteCountries(records []schema.CountryRecord, cfg *contract.Config) error {
	return WriteCountryResults(records, cfg)
}
