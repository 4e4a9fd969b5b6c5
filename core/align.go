package core

import (
	"fmt"
	"slices"

	"github.com/huangsam/trajectory/schema"
)

// AlignmentState is the growing cumulative matrix plus its calendar bounds.
// Column c of every row is Julian day Earliest+c. The zero value is empty.
type AlignmentState struct {
	Rows     [][]int64
	Earliest int
	Latest   int
	Year     int
}

// Empty reports whether no series has been folded yet.
func (s AlignmentState) Empty() bool {
	return len(s.Rows) == 0
}

// Width returns the number of calendar columns.
func (s AlignmentState) Width() int {
	if s.Empty() {
		return 0
	}
	return s.Latest - s.Earliest + 1
}

// Fold merges one normalized series into the matrix as a new bottom row and
// returns the new state. The input state is left untouched.
//
// Existing rows are zero-padded on the left when the series starts earlier
// and flat-extended with their last value when it ends later. The new row is
// zero-padded on both sides. Results therefore depend on fold order.
func Fold(state AlignmentState, s schema.DailySeries) (AlignmentState, error) {
	if len(s.Counts) == 0 {
		return state, fmt.Errorf("%w: %s", schema.ErrEmptySeries, s.Identifier)
	}
	if s.EndDay-s.StartDay+1 != len(s.Counts) {
		return state, fmt.Errorf("series %s spans days %d-%d but has %d counts", s.Identifier, s.StartDay, s.EndDay, len(s.Counts))
	}

	if state.Empty() {
		return AlignmentState{
			Rows:     [][]int64{slices.Clone(s.Counts)},
			Earliest: s.StartDay,
			Latest:   s.EndDay,
			Year:     s.Year,
		}, nil
	}

	next := AlignmentState{
		Rows:     make([][]int64, 0, len(state.Rows)+1),
		Earliest: min(state.Earliest, s.StartDay),
		Latest:   max(state.Latest, s.EndDay),
		Year:     state.Year,
	}
	shift := state.Earliest - next.Earliest
	extend := next.Latest - state.Latest

	for _, row := range state.Rows {
		grown := make([]int64, 0, len(row)+shift+extend)
		grown = append(grown, make([]int64, shift)...)
		grown = append(grown, row...)
		last := row[len(row)-1]
		for range extend {
			grown = append(grown, last)
		}
		next.Rows = append(next.Rows, grown)
	}

	row := make([]int64, next.Width())
	copy(row[s.StartDay-next.Earliest:], s.Counts)
	next.Rows = append(next.Rows, row)

	return next, nil
}

// FoldAll folds every series in order, starting from an empty state.
func FoldAll(series []schema.DailySeries) (AlignmentState, error) {
	var state AlignmentState
	for _, s := range series {
		var err error
		if state, err = Fold(state, s); err != nil {
			return AlignmentState{}, err
		}
	}
	return state, nil
}
