package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAxis(t *testing.T) {
	x := newLogAxis(1, 100, 0, 200)
	assert.InDelta(t, 0, x.pos(1), 1e-9)
	assert.InDelta(t, 100, x.pos(10), 1e-9)
	assert.InDelta(t, 200, x.pos(100), 1e-9)
	assert.InDelta(t, 200, x.pos(1000), 1e-9, "values above the bound are clamped")
	assert.InDelta(t, 0, x.pos(0), 1e-9, "zero is clamped to the lower bound")
	assert.Equal(t, []int{0, 1, 2}, x.decades())

	y := newLogAxis(1, 100, 600, 0)
	assert.InDelta(t, 300, y.pos(10), 1e-9)

	flat := newLogAxis(10, 10, 0, 100)
	assert.InDelta(t, 0, flat.pos(10), 1e-9)
	assert.InDelta(t, 100, flat.pos(100), 1e-9)
}

func TestFormatTick(t *testing.T) {
	tests := map[int]string{0: "1", 2: "100", 3: "1k", 5: "100k", 6: "1M", 9: "1B"}
	for p, expected := range tests {
		assert.Equal(t, expected, formatTick(p))
	}
}

func TestWriteTrajectorySVG(t *testing.T) {
	_, frames := sampleTrajectory()

	var buf bytes.Buffer
	require.NoError(t, writeTrajectorySVG(&buf, frames))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, plotTitle)
	assert.Contains(t, out, "Total Confirmed Cases")
	assert.Contains(t, out, "New Confirmed Cases")

	assert.Equal(t, 3, strings.Count(out, "<set "), "one slot per frame")
	assert.Equal(t, 1, strings.Count(out, `fill="freeze"`), "only the last frame stays")
	assert.Equal(t, 4, strings.Count(out, "<circle"), "Italy is visible in every frame, US only on day 61")
	assert.Equal(t, 3, strings.Count(out, "<polyline"), "trails need at least two drawable points")
	assert.Contains(t, out, `begin="0.143s"`)
}

func TestWriteTrajectorySVG_EscapesNames(t *testing.T) {
	frames := schema.FrameSet{
		Frames: []schema.Frame{{Date: "01/03/2020", Points: []schema.FramePoint{
			{Country: "Bosnia & <Herzegovina>", Total: 10, New: 10, Visible: true},
		}}},
		Bounds: schema.Bounds{MinTotal: 10, MaxTotal: 50, MinNew: 10, MaxNew: 50},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTrajectorySVG(&buf, frames))
	assert.Contains(t, buf.String(), "Bosnia &amp; &lt;Herzegovina&gt;")
	assert.NotContains(t, buf.String(), "<Herzegovina>")
}

func TestWriteTrajectorySVG_NoFrames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTrajectorySVG(&buf, schema.FrameSet{}))
	assert.Zero(t, strings.Count(buf.String(), "<set "))
	assert.Contains(t, buf.String(), "</svg>")
}
