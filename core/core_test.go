package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/internal/history"
	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestExecuteTrajectory tests the main run entry point end to end with JSON output.
func TestExecuteTrajectory(t *testing.T) {
	source := &contract.MockDataSource{}
	mgr := &history.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(nil)
	source.On("ListSummary", mock.Anything).Return(feed(), nil)
	source.On("DailyHistory", mock.Anything, "germany").Return(daily("2020-01-28", 4, 5, 12, 12), nil)

	cfg := listConfig("germany")
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "trajectory.json")

	require.NoError(t, ExecuteTrajectory(withSuppressHeader(context.Background()), cfg, source, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var doc struct {
		Result schema.TrajectoryResult `json:"result"`
		Frames schema.FrameSet         `json:"animation"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"germany"}, doc.Result.Keys)
	assert.Len(t, doc.Frames.Frames, 4)

	source.AssertExpectations(t)
}

// TestExecuteTrajectory_FetchError tests that no output is written when the feed fails.
func TestExecuteTrajectory_FetchError(t *testing.T) {
	source := &contract.MockDataSource{}
	source.On("ListSummary", mock.Anything).Return(nil, errors.New("offline"))

	cfg := listConfig("germany")
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "trajectory.json")

	err := ExecuteTrajectory(withSuppressHeader(context.Background()), cfg, source, nil)
	assert.ErrorContains(t, err, "offline")
	assert.NoFileExists(t, cfg.OutputFile)
}

// TestExecuteCountries tests the country listing entry point with CSV output.
func TestExecuteCountries(t *testing.T) {
	source := &contract.MockDataSource{}
	source.On("ListSummary", mock.Anything).Return(feed(), nil)

	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: filepath.Join(t.TempDir(), "countries.csv"),
	}
	require.NoError(t, ExecuteCountries(context.Background(), cfg, source))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "identifier,name,total_confirmed")
	assert.Contains(t, string(data), "germany,Germany,43000")
	assert.NotContains(t, string(data), "-bogus")
}

// TestGetTrajectoryResultQuiet tests that frames come back alongside the result.
func TestGetTrajectoryResultQuiet(t *testing.T) {
	source := &contract.MockDataSource{}
	source.On("ListSummary", mock.Anything).Return(feed(), nil)
	source.On("DailyHistory", mock.Anything, "us").Return(daily("2020-01-21", 1, 1, 2), nil)

	result, frames, err := GetTrajectoryResultQuiet(context.Background(), listConfig("us"), source, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"us"}, result.Keys)
	require.Len(t, frames.Frames, result.Days())
	assert.Equal(t, 21, frames.Frames[0].Day)
}
