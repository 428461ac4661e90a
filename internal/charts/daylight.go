package charts

import (
	"fmt"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// MonthlyDaylight is the mean sunrise-to-sunset length of each month.
func MonthlyDaylight(year int, lat, lon float64) [12]float64 {
	var sums [12]float64
	var counts [12]int
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == year {
		m := d.Month() - 1
		sums[m] += solar.MeasuredDaylightHours(d, lat, lon)
		counts[m]++
		d = d.AddDate(0, 0, 1)
	}
	var out [12]float64
	for i := range out {
		out[i] = sums[i] / float64(counts[i])
	}
	return out
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// DaylightChart writes a PNG bar chart of MonthlyDaylight. Bars are shaded
// from the scheme's winter to summer color by their length.
func DaylightChart(w io.Writer, year int, lat, lon float64, scheme render.ColorScheme) error {
	months := MonthlyDaylight(year, lat, lon)
	lo, hi := months[0], months[0]
	for _, h := range months {
		lo, hi = min(lo, h), max(hi, h)
	}

	bars := make([]chart.Value, 0, len(months))
	for i, h := range months {
		t := 0.0
		if hi > lo {
			t = (h - lo) / (hi - lo)
		}
		fill := render.Blend(scheme.Winter1, scheme.Summer1, t)
		bars = append(bars, chart.Value{
			Value: h,
			Label: time.Month(i + 1).String()[:3],
			Style: chart.Style{FillColor: toDrawing(fill), StrokeColor: toDrawing(scheme.Axis), StrokeWidth: 1},
		})
	}

	graph := chart.BarChart{
		Title: fmt.Sprintf("Mean daylight hours, %d", year),
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: toDrawing(scheme.Label),
		},
		Background: chart.Style{
			FillColor: toDrawing(scheme.Background),
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Canvas:     chart.Style{FillColor: toDrawing(scheme.Background)},
		Height:     400,
		Width:      720,
		BarWidth:   40,
		BarSpacing: 16,
		Bars:       bars,
		XAxis: chart.Style{
			FontSize:  10,
			FontColor: toDrawing(scheme.AxisLabel),
		},
		YAxis: chart.YAxis{
			Name: "Hours",
			NameStyle: chart.Style{
				FontSize:  12,
				FontColor: toDrawing(scheme.AxisLabel),
			},
			Style: chart.Style{
				FontSize:  10,
				FontColor: toDrawing(scheme.AxisLabel),
			},
			Range: &chart.ContinuousRange{Min: 0, Max: 24},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render daylight chart: %w", err)
	}
	return nil
}
