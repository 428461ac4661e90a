// Package daycurve is the day widget: the sun's elevation or intensity over
// 24 hours for one date, sampled into a polyline, with a draggable dot on
// the selected hour.
package daycurve

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Variant selects the plotted quantity.
type Variant int

const (
	Elevation Variant = iota
	Intensity
)

func (v Variant) String() string {
	if v == Intensity {
		return "intensity"
	}
	return "elevation"
}

// ParseVariant accepts "elevation" or "intensity".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "elevation":
		return Elevation, nil
	case "intensity":
		return Intensity, nil
	}
	return Elevation, fmt.Errorf("unknown day curve variant %q", s)
}

// Domain is the vertical axis range of the variant.
func (v Variant) Domain() (lo, hi float64) {
	if v == Intensity {
		return 0, 100
	}
	return -18, 90
}

func (v Variant) tickStep() float64 {
	if v == Intensity {
		return 25
	}
	return 36
}

func (v Variant) title() [2]string {
	if v == Intensity {
		return [2]string{"Sun", "Intensity"}
	}
	return [2]string{"Sun", "Angle"}
}

// Config holds the widget's pixel geometry.
type Config struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	LeftMargin  float64 `json:"left_margin"`
	GraphWidth  float64 `json:"graph_width"`
	Baseline    float64 `json:"baseline"`
	GraphHeight float64 `json:"graph_height"`
	AxisTop     float64 `json:"axis_top"`
	DotRadius   float64 `json:"dot_radius"`
	// Step is the sampling interval in hours.
	Step float64 `json:"step"`
}

// DefaultConfig is a 540x230 canvas with the graph 380 px wide.
func DefaultConfig() Config {
	return Config{
		Width:       540,
		Height:      230,
		LeftMargin:  80,
		GraphWidth:  380,
		Baseline:    180,
		GraphHeight: 160,
		AxisTop:     20,
		DotRadius:   6,
		Step:        0.01,
	}
}

// Sample is the plotted value at one hour.
type Sample struct {
	Hour  float64 `json:"hour"`
	Value float64 `json:"value"`
}

// View is the day curve's state. The selected hour is owned by the view and
// only changed through SetHour or pointer input.
type View struct {
	cfg     Config
	variant Variant
	date    time.Time
	lat     float64
	lon     float64
	hour    float64

	samples []Sample
}

// New returns a view of date at the given location with hour selected.
func New(cfg Config, variant Variant, date time.Time, lat, lon, hour float64) *View {
	v := &View{cfg: cfg, variant: variant, lat: lat, lon: lon}
	v.SetDate(date)
	v.SetHour(hour)
	return v
}

func (v *View) Config() Config     { return v.cfg }
func (v *View) Variant() Variant   { return v.variant }
func (v *View) Date() time.Time    { return v.date }
func (v *View) Hour() float64      { return v.hour }
func (v *View) Latitude() float64  { return v.lat }
func (v *View) Longitude() float64 { return v.lon }

// SetDate moves the curve to the UTC calendar day containing t.
func (v *View) SetDate(t time.Time) {
	t = t.UTC()
	v.date = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	v.samples = nil
}

func (v *View) SetVariant(variant Variant) {
	v.variant = variant
	v.samples = nil
}

func (v *View) SetLocation(lat, lon float64) {
	v.lat, v.lon = lat, lon
	v.samples = nil
}

// SetHour selects hour, clamped to [0, 24].
func (v *View) SetHour(hour float64) {
	v.hour = clampHour(hour)
}

func clampHour(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	if h > 24 {
		return 24
	}
	return h
}

// At is the instant hour hours after the view's midnight.
func (v *View) At(hour float64) time.Time {
	return v.date.Add(time.Duration(hour * float64(time.Hour)))
}

// Value is the plotted quantity at hour, clamped to the variant's domain.
func (v *View) Value(hour float64) float64 {
	t := v.At(hour)
	var val float64
	if v.variant == Intensity {
		val = solar.SolarIntensity(t, v.lat, v.lon) * 100
	} else {
		val = solar.SolarElevationAngle(t, v.lat, v.lon)
	}
	lo, hi := v.variant.Domain()
	return math.Max(lo, math.Min(hi, val))
}

// Samples evaluates Value every Step hours from 0 to 24 inclusive.
func (v *View) Samples() []Sample {
	if v.samples != nil {
		return v.samples
	}
	step := v.cfg.Step
	if step <= 0 {
		step = 0.01
	}
	n := int(math.Round(24 / step))
	out := make([]Sample, n+1)
	for i := range out {
		h := math.Min(24, float64(i)*step)
		out[i] = Sample{Hour: h, Value: v.Value(h)}
	}
	v.samples = out
	return out
}

// XForHour maps an hour onto the horizontal axis.
func (v *View) XForHour(hour float64) float64 {
	return v.cfg.LeftMargin + hour/24*v.cfg.GraphWidth
}

// HourForX inverts XForHour, clamped to [0, 24].
func (v *View) HourForX(x float64) float64 {
	if v.cfg.GraphWidth <= 0 {
		return 0
	}
	return clampHour((x - v.cfg.LeftMargin) / v.cfg.GraphWidth * 24)
}

// YForValue maps a value in the variant's domain onto the vertical axis.
func (v *View) YForValue(value float64) float64 {
	lo, hi := v.variant.Domain()
	return v.cfg.Baseline - (value-lo)/(hi-lo)*v.cfg.GraphHeight
}

// Polyline is the sampled curve in widget pixels.
func (v *View) Polyline() []render.Point {
	samples := v.Samples()
	pts := make([]render.Point, len(samples))
	for i, s := range samples {
		pts[i] = render.Point{X: v.XForHour(s.Hour), Y: v.YForValue(s.Value)}
	}
	return pts
}

// DotPosition implements interaction.Draggable.
func (v *View) DotPosition() render.Point {
	return render.Point{X: v.XForHour(v.hour), Y: v.YForValue(v.Value(v.hour))}
}

// SetFromPointer selects the hour under p. Only the horizontal position
// matters.
func (v *View) SetFromPointer(p render.Point) bool {
	h := v.HourForX(p.X)
	if h == v.hour {
		return false
	}
	v.hour = h
	return true
}

// Render draws the whole widget.
func (v *View) Render(r render.Renderer, scheme render.ColorScheme) {
	cfg := v.cfg
	left, right := cfg.LeftMargin, cfg.LeftMargin+cfg.GraphWidth
	axis := render.Stroke{Color: scheme.Axis, Width: 1}
	label := render.TextStyle{Color: scheme.AxisLabel, Size: 12, Align: render.AlignCenter}

	r.Clear(scheme.Background)
	r.Line(left, cfg.Baseline, right, cfg.Baseline, axis)
	r.Line(left, cfg.Baseline, left, cfg.AxisTop, axis)

	for h := 0; h <= 24; h += 6 {
		x := v.XForHour(float64(h))
		r.Line(x, cfg.Baseline, x, cfg.Baseline+5, axis)
		r.Text(x, cfg.Baseline+15, strconv.Itoa(h), label)
	}
	r.Text(left+cfg.GraphWidth/2, cfg.Baseline+30, "Time", label)

	lo, hi := v.variant.Domain()
	tick := label
	tick.Align = render.AlignRight
	for val := lo; val <= hi; val += v.variant.tickStep() {
		y := v.YForValue(val)
		r.Line(left-5, y, left, y, axis)
		r.Text(left-10, y+4, strconv.FormatFloat(val, 'f', -1, 64), tick)
	}
	title := render.TextStyle{Color: scheme.AxisLabel, Size: 14, Align: render.AlignCenter}
	for i, line := range v.variant.title() {
		r.Text(left-55, 100+15*float64(i), line, title)
	}

	if lo < 0 {
		y := v.YForValue(0)
		r.Line(left, y, right, y, render.Stroke{Color: scheme.AxisDotted, Width: 1, Dash: []float64{4, 4}})
	}

	r.Polyline(v.Polyline(), render.Stroke{Color: scheme.Yellow, Width: 2})

	dot := v.DotPosition()
	r.Line(left, dot.Y, right, dot.Y, render.Stroke{Color: scheme.Green, Width: 1.5, Dash: []float64{4, 4}})
	r.FillCircle(dot.X, dot.Y, cfg.DotRadius, scheme.Green, &render.Stroke{Color: scheme.DotOutline, Width: 2})
}
