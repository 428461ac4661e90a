package charts

import (
	"github.com/guptarohit/asciigraph"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
)

// ASCIIDayCurve plots the day curve's samples for a terminal.
func ASCIIDayCurve(v *daycurve.View, width, height int) string {
	samples := v.Samples()
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	lo, hi := v.Variant().Domain()
	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(0),
		asciigraph.Caption("Sun "+v.Variant().String()+", "+v.Date().Format("2 Jan 2006")+" (0h to 24h UTC)"),
	)
}
