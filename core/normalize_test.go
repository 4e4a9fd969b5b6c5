package core

import (
	"testing"

	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSeries(t *testing.T) {
	records := []schema.DailyRecord{
		{Date: "2020-02-01T00:00:00Z", Cases: 1},
		{Date: "2020-02-02T00:00:00Z", Cases: 1},
		{Date: "2020-02-03T00:00:00Z", Cases: 4},
	}

	s, err := NormalizeSeries("italy", records)
	require.NoError(t, err)
	assert.Equal(t, "italy", s.Identifier)
	assert.Equal(t, 32, s.StartDay)
	assert.Equal(t, 34, s.EndDay)
	assert.Equal(t, 2020, s.Year)
	assert.Equal(t, []int64{1, 1, 4}, s.Counts)
}

func TestNormalizeSeriesDates(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		startDay int
	}{
		{"first day of year", "2020-01-01", 1},
		{"leap day", "2020-02-29T00:00:00Z", 60},
		{"after leap day", "2020-03-01", 61},
		{"non-leap march", "2021-03-01T12:30:00Z", 60},
		{"last day of leap year", "2020-12-31", 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NormalizeSeries("x", []schema.DailyRecord{{Date: tt.date, Cases: 1}})
			require.NoError(t, err)
			assert.Equal(t, tt.startDay, s.StartDay)
			assert.Equal(t, tt.startDay, s.EndDay)
		})
	}
}

func TestNormalizeSeriesErrors(t *testing.T) {
	t.Run("empty records", func(t *testing.T) {
		_, err := NormalizeSeries("atlantis", nil)
		assert.ErrorIs(t, err, schema.ErrEmptySeries)
	})

	t.Run("short date", func(t *testing.T) {
		_, err := NormalizeSeries("x", []schema.DailyRecord{{Date: "2020-1-1", Cases: 1}})
		assert.Error(t, err)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := NormalizeSeries("x", []schema.DailyRecord{{Date: "2020-13-01", Cases: 1}})
		assert.Error(t, err)
	})
}
