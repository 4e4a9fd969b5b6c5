package core

import (
	"testing"

	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *schema.TrajectoryResult {
	return &schema.TrajectoryResult{
		Keys:        []string{"italy", "spain"},
		Names:       []string{"Italy", "Spain"},
		Totals:      [][]int64{{3, 20, 80}, {0, 0, 10}},
		News:        [][]int64{{3, 17, 60}, {0, 0, 10}},
		EarliestDay: 59,
		LatestDay:   61,
		Year:        2020,
	}
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "01/01/2020", DateLabel(2020, 1))
	assert.Equal(t, "29/02/2020", DateLabel(2020, 60))
	assert.Equal(t, "01/03/2021", DateLabel(2021, 60))
	assert.Equal(t, "31/12/2020", DateLabel(2020, 366))
}

func TestBuildFrames(t *testing.T) {
	set := BuildFrames(sampleResult(), 5)
	require.Len(t, set.Frames, 3)

	first := set.Frames[0]
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 59, first.Day)
	assert.Equal(t, "28/02/2020", first.Date)
	require.Len(t, first.Points, 2)
	assert.False(t, first.Points[0].Visible, "3 is below the visibility threshold")

	second := set.Frames[1]
	assert.Equal(t, "29/02/2020", second.Date)
	assert.True(t, second.Points[0].Visible)
	assert.False(t, second.Points[1].Visible)

	last := set.Frames[2]
	assert.Equal(t, schema.FramePoint{Country: "Spain", Total: 10, New: 10, Visible: true, TrailStart: 2}, last.Points[1])
	assert.Equal(t, 0, last.Points[0].TrailStart)
}

func TestBuildFramesBounds(t *testing.T) {
	set := BuildFrames(sampleResult(), 5)
	assert.Equal(t, schema.Bounds{
		MinTotal: 10,
		MaxTotal: 400,
		MinNew:   10,
		MaxNew:   300,
	}, set.Bounds)
}

func TestBuildFramesEmptyResult(t *testing.T) {
	set := BuildFrames(&schema.TrajectoryResult{Year: 2020}, 5)
	assert.Empty(t, set.Frames)
	assert.Equal(t, int64(5), set.Bounds.MinTotal)
	assert.Equal(t, int64(5), set.Bounds.MaxTotal)
}
