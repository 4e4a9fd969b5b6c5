package outwriter

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/huangsam/trajectory/schema"
)

// Plot geometry of the SVG animation.
const (
	svgWidth     = 960
	svgHeight    = 720
	marginLeft   = 90
	marginRight  = 40
	marginTop    = 60
	marginBottom = 70
	frameSeconds = 1.0 / 7 // seven frames per second
	plotTitle    = "COVID-19 uptake trajectory from day-zero"
)

// svgPalette cycles through distinguishable line colors, one per country row.
var svgPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// logAxis maps a count onto a pixel range on a base-10 log scale.
type logAxis struct {
	lo, hi     float64 // log10 of the bounds
	start, end float64 // pixel range
}

func newLogAxis(minVal, maxVal int64, start, end float64) logAxis {
	lo := math.Log10(float64(max(minVal, 1)))
	hi := math.Log10(float64(max(maxVal, 1)))
	if hi <= lo {
		hi = lo + 1
	}
	return logAxis{lo: lo, hi: hi, start: start, end: end}
}

// pos clamps v into the axis bounds and returns its pixel coordinate.
func (a logAxis) pos(v int64) float64 {
	l := math.Log10(float64(max(v, 1)))
	l = math.Min(math.Max(l, a.lo), a.hi)
	return a.start + (l-a.lo)/(a.hi-a.lo)*(a.end-a.start)
}

// decades lists the powers of ten that fall inside the axis bounds.
func (a logAxis) decades() []int {
	var out []int
	for p := int(math.Ceil(a.lo - 1e-9)); float64(p) <= a.hi+1e-9; p++ {
		out = append(out, p)
	}
	return out
}

// formatTick renders 10^p with a metric suffix.
func formatTick(p int) string {
	switch {
	case p < 3:
		return fmt.Sprintf("%d", int(math.Pow10(p)))
	case p < 6:
		return fmt.Sprintf("%dk", int(math.Pow10(p-3)))
	case p < 9:
		return fmt.Sprintf("%dM", int(math.Pow10(p-6)))
	default:
		return fmt.Sprintf("%dB", int(math.Pow10(p-9)))
	}
}

// writeTrajectorySVG renders the frames as a self-contained SMIL animation on
// log-log axes of total against new confirmed cases. Each frame is a group that
// is shown for one frame slot; the last frame stays on screen.
func writeTrajectorySVG(w io.Writer, frames schema.FrameSet) error {
	x := newLogAxis(frames.Bounds.MinTotal, frames.Bounds.MaxTotal, marginLeft, svgWidth-marginRight)
	y := newLogAxis(frames.Bounds.MinNew, frames.Bounds.MaxNew, svgHeight-marginBottom, marginTop)

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="white"/>`+"\n", svgWidth, svgHeight)
	writeSVGAxes(&b, x, y)

	last := len(frames.Frames) - 1
	for i, frame := range frames.Frames {
		fill := ""
		if i == last {
			fill = ` fill="freeze"`
		}
		fmt.Fprintf(&b, `<g visibility="hidden"><set attributeName="visibility" to="visible" begin="%.3fs" dur="%.3fs"%s/>`+"\n",
			float64(i)*frameSeconds, frameSeconds, fill)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="16">%s</text>`+"\n", marginLeft+10, marginTop+20, html.EscapeString(frame.Date))

		for r, p := range frame.Points {
			color := svgPalette[r%len(svgPalette)]
			if trail := trailPoints(frames.Frames, r, p.TrailStart, i, x, y); len(trail) > 1 {
				fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n", strings.Join(trail, " "), color)
			}
			if !p.Visible {
				continue
			}
			px, py := x.pos(p.Total), y.pos(p.New)
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>`+"\n", px, py, color)
			fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>`+"\n", px+6, py-6, color, html.EscapeString(p.Country))
		}
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")

	_, err := w.Write(b.Bytes())
	return err
}

// writeSVGAxes draws the decade grid, tick labels, axis titles and plot title.
func writeSVGAxes(b *bytes.Buffer, x, y logAxis) {
	for _, p := range x.decades() {
		px := x.pos(int64(math.Pow10(p)))
		fmt.Fprintf(b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#e0e0e0"/>`+"\n", px, marginTop, px, svgHeight-marginBottom)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="11" text-anchor="middle">%s</text>`+"\n", px, svgHeight-marginBottom+16, formatTick(p))
	}
	for _, p := range y.decades() {
		py := y.pos(int64(math.Pow10(p)))
		fmt.Fprintf(b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#e0e0e0"/>`+"\n", marginLeft, py, svgWidth-marginRight, py)
		fmt.Fprintf(b, `<text x="%d" y="%.1f" font-size="11" text-anchor="end">%s</text>`+"\n", marginLeft-6, py+4, formatTick(p))
	}
	fmt.Fprintf(b, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="black"/>`+"\n",
		marginLeft, marginTop, svgWidth-marginLeft-marginRight, svgHeight-marginTop-marginBottom)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="14" text-anchor="middle">Total Confirmed Cases</text>`+"\n",
		marginLeft+(svgWidth-marginLeft-marginRight)/2, svgHeight-20)
	fmt.Fprintf(b, `<text x="20" y="%d" font-size="14" text-anchor="middle" transform="rotate(-90 20 %d)">New Confirmed Cases</text>`+"\n",
		marginTop+(svgHeight-marginTop-marginBottom)/2, marginTop+(svgHeight-marginTop-marginBottom)/2)
	fmt.Fprintf(b, `<text x="%d" y="30" font-size="18" text-anchor="middle">%s</text>`+"\n", svgWidth/2, plotTitle)
}

// trailPoints returns the polyline coordinates of row r from frame start to end,
// skipping values that cannot be placed on a log axis.
func trailPoints(frames []schema.Frame, r, start, end int, x, y logAxis) []string {
	var pts []string
	for k := start; k <= end; k++ {
		p := frames[k].Points[r]
		if p.Total <= 0 || p.New <= 0 {
			continue
		}
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x.pos(p.Total), y.pos(p.New)))
	}
	return pts
}
