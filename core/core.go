// Package core has core logic for selecting, aligning and smoothing country trajectories.
package core

import (
	"context"
	"time"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/outwriter"
	"github.com/huangsam/trajectory/schema"
)

// ExecuteTrajectory runs a full trajectory and writes it with the configured output format.
// It serves as the main entry point for the 'run' command.
func ExecuteTrajectory(ctx context.Context, cfg *contract.Config, source contract.DataSource, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetTrajectoryResult(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	frames := BuildFrames(result, cfg.Visibility)
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteTrajectory(result, frames, cfg, duration)
}

// ExecuteCountries lists every valid country of the feed.
// It serves as the main entry point for the 'countries' command.
func ExecuteCountries(ctx context.Context, cfg *contract.Config, source contract.DataSource) error {
	records, err := ListCountries(ctx, source)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCountries(records, cfg)
}

// GetTrajectoryResultQuiet runs GetTrajectoryResult without header or progress lines.
// Callers that own stdout, such as the MCP stdio server, use this.
func GetTrajectoryResultQuiet(ctx context.Context, cfg *contract.Config, source contract.DataSource, mgr contract.StoreManager) (*schema.TrajectoryResult, schema.FrameSet, error) {
	result, err := GetTrajectoryResult(withSuppressHeader(ctx), cfg, source, mgr)
	if err != nil {
		return nil, schema.FrameSet{}, err
	}
	return result, BuildFrames(result, cfg.Visibility), nil
}
