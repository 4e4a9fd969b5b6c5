package core

import (
	"testing"

	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltas(t *testing.T) {
	cum := [][]int64{
		{1, 3, 3, 10},
		{0, 0, 2, 2},
	}
	assert.Equal(t, [][]int64{
		{1, 2, 0, 7},
		{0, 0, 2, 0},
	}, Deltas(cum))
}

func TestDeltasRoundTrip(t *testing.T) {
	cum := [][]int64{
		{5, 8, 8, 20, 35, 35},
		{0, 0, 1, 1, 4, 9},
		{2, 2, 2, 2, 2, 2},
	}
	deltas := Deltas(cum)
	for r, row := range deltas {
		var running int64
		for c, d := range row {
			running += d
			assert.Equal(t, cum[r][c], running, "row %d col %d", r, c)
		}
	}
}

func TestSlidingAverage(t *testing.T) {
	tests := []struct {
		name     string
		input    []int64
		window   int
		expected []int64
	}{
		{"impulse window 3", []int64{0, 0, 10, 0, 0}, 3, []int64{0, 3, 3, 3, 0}},
		{"edges replicate window 3", []int64{3, 6, 9}, 3, []int64{4, 6, 8}},
		{"edges replicate window 5", []int64{0, 10}, 5, []int64{4, 6}},
		{"window 1 is identity", []int64{4, 1, 9}, 1, []int64{4, 1, 9}},
		{"single column", []int64{42}, 5, []int64{42}},
		{"negative truncates toward zero", []int64{-4, -4, -5}, 3, []int64{-4, -4, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlidingAverage([][]int64{tt.input}, tt.window)
			assert.Equal(t, [][]int64{tt.expected}, got)
		})
	}
}

func TestSmoothDegreeZeroIsCopy(t *testing.T) {
	m := [][]int64{{1, 5, 2, 8}, {0, 0, 3, 3}}
	out, err := Smooth(m, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, m, out)

	out[0][0] = 99
	assert.Equal(t, int64(1), m[0][0], "input must not share storage with output")
}

func TestSmoothShapeInvariance(t *testing.T) {
	m := [][]int64{
		{1, 4, 9, 16, 25, 36, 49},
		{0, 0, 0, 5, 5, 5, 100},
		{7, 7, 7, 7, 7, 7, 7},
	}
	for _, window := range []int{1, 3, 5, 7, 9} {
		for degree := range 4 {
			out, err := Smooth(m, window, degree)
			require.NoError(t, err)
			require.Len(t, out, len(m))
			for r := range m {
				assert.Len(t, out[r], len(m[r]), "window %d degree %d row %d", window, degree, r)
			}
		}
	}
}

func TestSmoothConstantRowIsFixedPoint(t *testing.T) {
	m := [][]int64{{12, 12, 12, 12, 12, 12}}
	for degree := range 6 {
		out, err := Smooth(m, 5, degree)
		require.NoError(t, err)
		assert.Equal(t, m, out, "degree %d", degree)
	}
}

func TestSmoothAppliesSequentialPasses(t *testing.T) {
	m := [][]int64{{0, 0, 90, 0, 0}}
	once := SlidingAverage(m, 3)
	twice := SlidingAverage(once, 3)

	out, err := Smooth(m, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, twice, out)
	assert.Equal(t, [][]int64{{10, 20, 30, 20, 10}}, out)
}

func TestSmoothRejectsInvalidParameters(t *testing.T) {
	m := [][]int64{{1, 2, 3}}
	for _, tc := range []struct{ window, degree int }{{4, 1}, {0, 1}, {-3, 1}, {5, -1}} {
		_, err := Smooth(m, tc.window, tc.degree)
		assert.ErrorIs(t, err, schema.ErrInvalidSmoothing, "window %d degree %d", tc.window, tc.degree)
	}
}
