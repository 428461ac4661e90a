// Package scene arranges both widgets and the info panel on one surface and
// turns raw mouse state into session pointer events. It has no windowing
// dependency so the same scene can be drawn on screen or saved as an image.
package scene

import (
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
)

const (
	LineHeight = 16
	Padding    = 12
	TextSize   = 12
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the year circle on the left, the day curve on its right and
// the info panel underneath both.
type Layout struct {
	Year   Rect
	Day    Rect
	Panel  Rect
	Width  int
	Height int
}

// NewLayout sizes the window for the session's widgets and a panel of rows
// text lines plus the status line.
func NewLayout(s *session.Session, rows int) Layout {
	yw, yh := s.Size(session.WidgetYear)
	dw, dh := s.Size(session.WidgetDay)

	top := max(yh, dh)
	panelH := float64(rows+1)*LineHeight + 2*Padding
	l := Layout{
		Year:  Rect{X: 0, Y: 0, W: yw, H: yh},
		Day:   Rect{X: yw, Y: (top - dh) / 2, W: dw, H: dh},
		Panel: Rect{X: 0, Y: top, W: yw + dw, H: panelH},
	}
	l.Width = int(yw + dw)
	l.Height = int(top + panelH)
	return l
}

// Rows is the number of panel rows info needs.
func Rows(info panel.Info) int {
	left, right := columns(info)
	return max(len(left), len(right))
}

// Rect returns a widget's rectangle.
func (l Layout) Rect(w session.Widget) Rect {
	if w == session.WidgetDay {
		return l.Day
	}
	return l.Year
}

// WidgetAt returns the widget under (x, y).
func (l Layout) WidgetAt(x, y float64) (session.Widget, bool) {
	switch {
	case l.Year.Contains(x, y):
		return session.WidgetYear, true
	case l.Day.Contains(x, y):
		return session.WidgetDay, true
	}
	return "", false
}

// Local converts window coordinates to a widget's own coordinates.
func (l Layout) Local(w session.Widget, x, y float64) render.Point {
	r := l.Rect(w)
	return render.Point{X: x - r.X, Y: y - r.Y}
}

// columns splits the panel into the day column and the time column.
func columns(info panel.Info) (left, right []string) {
	left = append(left, "Day Selected: "+info.Date)
	for _, r := range info.Seasonal {
		left = append(left, r.String())
	}
	if info.Sunrise != "" {
		left = append(left, "Sunrise: "+info.Sunrise+", Sunset: "+info.Sunset)
	}
	for _, r := range info.Measured {
		left = append(left, r.String())
	}

	right = append(right, "Time Selected: "+info.TimeSelected)
	for _, r := range info.Current {
		right = append(right, r.String())
	}
	return left, right
}
