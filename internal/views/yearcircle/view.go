// Package yearcircle is the circular year widget: the calendar wrapped once
// around a circle with June 21 at the top, shaded by season, with a draggable
// dot on the selected day.
package yearcircle

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Config holds the widget's pixel geometry.
type Config struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Radius  float64 `json:"radius"`
	Sectors int     `json:"sectors"`
	// DashLength is the length of a marker dash, centered on the rim.
	DashLength float64 `json:"dash_length"`
}

// DefaultConfig is a 300x270 canvas with a 100 px circle.
func DefaultConfig() Config {
	return Config{Width: 300, Height: 270, Radius: 100, Sectors: 64, DashLength: 13}
}

var (
	TopCaption    = "Jun 21st – 100% Sun Intensity at Peak"
	BottomCaption = fmt.Sprintf("Dec 21st – %.1f%% Sun Intensity at Peak", markers.IntensityFloor*100)
)

// View is the year circle's state and geometry. The selected day is owned
// by the view and only changed through SetDay or pointer input.
type View struct {
	cfg       Config
	year      int
	totalDays int
	anchorDay int
	day       int
	mode      markers.Mode
}

// New returns a view for year with day selected.
func New(cfg Config, year, day int, mode markers.Mode) *View {
	v := &View{cfg: cfg, mode: mode}
	v.SetYear(year)
	v.SetDay(day)
	return v
}

func (v *View) Config() Config         { return v.cfg }
func (v *View) Year() int              { return v.year }
func (v *View) TotalDays() int         { return v.totalDays }
func (v *View) AnchorDay() int         { return v.anchorDay }
func (v *View) Day() int               { return v.day }
func (v *View) Mode() markers.Mode     { return v.mode }
func (v *View) SetMode(m markers.Mode) { v.mode = m }

// SetYear switches the calendar, keeping the selected day in range.
func (v *View) SetYear(year int) {
	v.year = year
	v.totalDays = solar.TotalDaysInYear(year)
	v.anchorDay = solar.AnchorDay(year)
	v.day = solar.NormalizeDay(v.day, v.totalDays)
}

// SetDay selects day, folded into the year.
func (v *View) SetDay(day int) {
	v.day = solar.NormalizeDay(day, v.totalDays)
}

// Center is the circle's center in widget pixels.
func (v *View) Center() render.Point {
	return render.Point{X: v.cfg.Width / 2, Y: v.cfg.Height / 2}
}

// AngleForDay places day on the circle.
func (v *View) AngleForDay(day int) float64 {
	return solar.AngleForDay(float64(day), v.totalDays, v.anchorDay)
}

// DayForAngle is the inverse of AngleForDay.
func (v *View) DayForAngle(angle float64) int {
	return solar.DayForAngle(angle, v.totalDays, v.anchorDay)
}

func (v *View) onRim(angle, r float64) render.Point {
	c := v.Center()
	return render.Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

// DotRadius is the radius of the selected-day dot.
func (v *View) DotRadius() float64 { return v.cfg.Radius * 0.07 }

// DotPosition implements interaction.Draggable.
func (v *View) DotPosition() render.Point {
	return v.onRim(v.AngleForDay(v.day), v.cfg.Radius)
}

// SetFromPointer selects the day under p, measured by its angle around the
// center.
func (v *View) SetFromPointer(p render.Point) bool {
	c := v.Center()
	day := v.DayForAngle(math.Atan2(p.Y-c.Y, p.X-c.X))
	if day == v.day {
		return false
	}
	v.day = day
	return true
}

// NearEdge implements interaction.EdgeTarget.
func (v *View) NearEdge(p render.Point, tolerance float64) bool {
	c := v.Center()
	return math.Abs(math.Hypot(p.X-c.X, p.Y-c.Y)-v.cfg.Radius) < tolerance
}

// Markers returns the active mode's markers.
func (v *View) Markers() []markers.Marker {
	return markers.ForMode(v.mode, v.totalDays, v.anchorDay)
}

// SectorColor is the gradient color at an unrotated angle. The parameter is
// the rim point's height: the upper half runs Summer2 to Summer1 toward the
// top, the lower half Winter1 to Winter2 toward the middle.
func (v *View) SectorColor(angle float64, scheme render.ColorScheme) colorful.Color {
	yNorm := (1 - math.Sin(angle)) / 2
	if yNorm >= 0.5 {
		return render.Blend(scheme.Summer2, scheme.Summer1, (yNorm-0.5)/0.5)
	}
	return render.Blend(scheme.Winter1, scheme.Winter2, yNorm/0.5)
}

// Sector is one slice of the shaded background.
type Sector struct {
	Start float64
	End   float64
	Color colorful.Color
}

// Sectors splits the circle into equal slices starting at the top, rotated
// by the mode's phase shift. Colors come from the unrotated position so the
// whole gradient turns with the markers.
func (v *View) Sectors(scheme render.ColorScheme) []Sector {
	n := v.cfg.Sectors
	if n <= 0 {
		return nil
	}
	shift := v.mode.PhaseShift()
	step := 2 * math.Pi / float64(n)
	out := make([]Sector, n)
	for i := range out {
		start := solar.TopAngle + float64(i)*step
		out[i] = Sector{
			Start: start + shift,
			End:   start + step + shift,
			Color: v.SectorColor(start+step/2, scheme),
		}
	}
	return out
}

func (v *View) markerStyle(m markers.Marker, scheme render.ColorScheme) (render.Stroke, float64) {
	length := v.cfg.DashLength
	switch m.Category {
	case markers.Cardinal:
		return render.Stroke{Color: scheme.Blue, Width: 2}, length
	case markers.Diagonal:
		return render.Stroke{Color: scheme.BlueLight, Width: 2}, length - 2
	}
	if v.mode == markers.ModeTemperature {
		return render.Stroke{Color: scheme.Yellow, Width: 2}, length
	}
	return render.Stroke{Color: scheme.Red, Width: 2}, length
}

// Render draws the whole widget.
func (v *View) Render(r render.Renderer, scheme render.ColorScheme) {
	c := v.Center()
	radius := v.cfg.Radius

	r.Clear(scheme.Background)
	for _, s := range v.Sectors(scheme) {
		r.FillSector(c.X, c.Y, radius-1, s.Start, s.End, s.Color)
	}
	r.StrokeArc(c.X, c.Y, radius, 0, 2*math.Pi, render.Stroke{Color: scheme.Circle, Width: 2})

	for _, m := range v.Markers() {
		stroke, length := v.markerStyle(m, scheme)
		a := v.onRim(m.Angle, radius-length/2)
		b := v.onRim(m.Angle, radius+length/2)
		r.Line(a.X, a.Y, b.X, b.Y, stroke)
	}

	caption := render.TextStyle{Color: scheme.Label, Size: radius * 0.1, Align: render.AlignCenter}
	r.Text(c.X, c.Y-radius*1.1, TopCaption, caption)
	r.Text(c.X, c.Y+radius*1.18, BottomCaption, caption)

	dot := v.DotPosition()
	r.FillCircle(dot.X, dot.Y, v.DotRadius(), scheme.Green, nil)
}
