// Package charts renders whole-year overviews and the terminal day curve.
package charts

import (
	"fmt"
	"io"

	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// AnnualQuantities are the percentage quantities drawn on the annual chart.
var AnnualQuantities = []solar.Bounds{
	solar.PeakIntensity,
	solar.AverageIntensity,
	solar.DaylightPercentage,
	solar.RelativeTemperature,
}

func annualLine(b solar.Bounds, year int) plotter.XYs {
	total := solar.TotalDaysInYear(year)
	series := solar.AnnualSeries(b, total, solar.AnchorDay(year))
	pts := make(plotter.XYs, len(series))
	for day, v := range series {
		pts[day].X = float64(day)
		pts[day].Y = v
	}
	return pts
}

// Annual writes a line chart of every quantity in AnnualQuantities over year.
func Annual(w io.Writer, year int, format render.Format, width, height float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Seasonal quantities, %d", year)
	p.X.Label.Text = "Day of year"
	p.Y.Label.Text = "%"
	p.X.Min = 0
	p.X.Max = float64(solar.TotalDaysInYear(year))
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	lines := make([]interface{}, 0, 2*len(AnnualQuantities))
	for _, q := range AnnualQuantities {
		lines = append(lines, q.Name, annualLine(q, year))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("error adding annual lines: %w", err)
	}
	p.Legend.Top = false
	p.Legend.Left = true

	wt, err := p.WriterTo(vg.Points(width), vg.Points(height), string(format))
	if err != nil {
		return fmt.Errorf("error creating annual chart writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("error writing annual chart: %w", err)
	}
	return nil
}
