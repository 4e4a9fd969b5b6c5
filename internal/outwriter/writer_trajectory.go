package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/trajectory/schema"
)

// trajectoryDocument is the JSON shape of a trajectory run.
type trajectoryDocument struct {
	Result *schema.TrajectoryResult `json:"result"`
	Frames schema.FrameSet          `json:"animation"`
}

// writeJSONResultsForTrajectory writes the aligned matrices together with the derived frames.
func writeJSONResultsForTrajectory(w io.Writer, result *schema.TrajectoryResult, frames schema.FrameSet) error {
	return writeJSON(w, trajectoryDocument{Result: result, Frames: frames})
}

// writeCSVResultsForFrames writes one row per frame and country.
func writeCSVResultsForFrames(w io.Writer, frames schema.FrameSet, intFmt string) error {
	header := []string{"frame_index", "day", "date", "country", "total", "new", "visible", "trail_start"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range frames.Frames {
			for _, p := range f.Points {
				row := []string{
					strconv.Itoa(f.Index),
					strconv.Itoa(f.Day),
					f.Date,
					p.Country,
					fmt.Sprintf(intFmt, p.Total),
					fmt.Sprintf(intFmt, p.New),
					strconv.FormatBool(p.Visible),
					strconv.Itoa(p.TrailStart),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
