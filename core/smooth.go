package core

import (
	"slices"

	"github.com/huangsam/trajectory/internal/contract"
)

// Deltas differentiates each cumulative row into daily new counts.
// Column 0 keeps its cumulative value, as if preceded by a zero.
func Deltas(cum [][]int64) [][]int64 {
	out := make([][]int64, len(cum))
	for r, row := range cum {
		d := make([]int64, len(row))
		var prev int64
		for c, v := range row {
			d[c] = v - prev
			prev = v
		}
		out[r] = d
	}
	return out
}

// SlidingAverage applies one centred moving-average pass with edge
// replication. Each cell becomes the integer mean of the window around it,
// where positions past either end repeat the first or last value.
// The window must be odd and positive.
func SlidingAverage(m [][]int64, window int) [][]int64 {
	half := window / 2
	out := make([][]int64, len(m))
	for r, row := range m {
		n := len(row)
		smoothed := make([]int64, n)
		if n == 0 {
			out[r] = smoothed
			continue
		}
		at := func(i int) int64 {
			return row[min(max(i, 0), n-1)]
		}

		var sum int64
		for i := -half; i <= half; i++ {
			sum += at(i)
		}
		for c := range n {
			smoothed[c] = sum / int64(window)
			sum += at(c+half+1) - at(c-half)
		}
		out[r] = smoothed
	}
	return out
}

// Smooth runs SlidingAverage degree times, each pass consuming the previous
// output. Degree 0 returns an identical copy.
func Smooth(m [][]int64, window, degree int) ([][]int64, error) {
	if err := contract.ValidateSmoothing(window, degree); err != nil {
		return nil, err
	}
	out := cloneMatrix(m)
	for range degree {
		out = SlidingAverage(out, window)
	}
	return out, nil
}

// cloneMatrix deep-copies a row-major matrix.
func cloneMatrix(m [][]int64) [][]int64 {
	out := make([][]int64, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}
