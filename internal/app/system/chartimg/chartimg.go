// Package chartimg renders the leaderboard as a PNG bar chart. The image is
// regenerated from the current snapshot on every request, so it is always
// consistent with the rest of the dashboard.
package chartimg

import (
	"bytes"

	"github.com/dalemusser/treehub/internal/app/system/aggregate"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 800
	chartHeight = 320
)

var (
	barColor  = drawing.Color{R: 0x22, G: 0xc5, B: 0x5e, A: 255}
	textColor = drawing.Color{R: 0x33, G: 0x41, B: 0x55, A: 255}
)

// Leaderboard renders one bar per entry, in the order given (callers pass the
// already-sorted leaderboard). An empty leaderboard renders a placeholder.
func Leaderboard(entries []aggregate.LeaderboardEntry) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoDataPlaceholder()
	}

	maxTotal := 0
	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		if e.Total > maxTotal {
			maxTotal = e.Total
		}
		bars[i] = chart.Value{
			Label: e.Name,
			Value: float64(e.Total),
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		}
	}
	if maxTotal < 1 {
		maxTotal = 1
	}

	graph := chart.BarChart{
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 48,
		XAxis: chart.Style{
			FontColor: textColor,
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontColor: textColor},
			ValueFormatter: chart.IntValueFormatter,
			// Anchoring the range at zero keeps it non-degenerate when
			// every bar carries the same total (one contributor, or an
			// all-way tie), which Render otherwise rejects.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxTotal)},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const msg = "No trees logged yet"

	graph := chart.Chart{
		Width:          chartWidth,
		Height:         chartHeight,
		XAxis:          chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:          chart.YAxis{Style: chart.Style{Hidden: true}},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		// Render refuses a chart with no series; a transparent one keeps
		// the canvas blank for the text element.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(textColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
