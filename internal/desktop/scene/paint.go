package scene

import (
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
)

// Hint lists the keyboard shortcuts.
const Hint = "T today  N now  M mode  D dark  V curve  S save  Q quit"

// Paint draws the whole scene: both widgets, the info panel and a status
// line that shows Hint when status is empty.
func Paint(r render.Renderer, s *session.Session, l Layout, info panel.Info, status string) {
	scheme := s.Scheme()
	r.Clear(scheme.Background)
	s.Render(session.WidgetYear, render.Translate(r, l.Year.X, l.Year.Y))
	s.Render(session.WidgetDay, render.Translate(r, l.Day.X, l.Day.Y))

	label := render.TextStyle{Color: scheme.Label, Size: TextSize}
	left, right := columns(info)
	x0, x1 := l.Panel.X+Padding, l.Day.X+Padding
	for i, line := range left {
		r.Text(x0, rowY(l, i), line, label)
	}
	for i, line := range right {
		r.Text(x1, rowY(l, i), line, label)
	}

	if status == "" {
		status = Hint
	}
	r.Text(x0, l.Panel.Y+l.Panel.H-Padding, status, render.TextStyle{Color: scheme.AxisLabel, Size: TextSize})
}

// rowY is the text baseline of panel row i.
func rowY(l Layout, i int) float64 {
	return l.Panel.Y + Padding + float64(i+1)*LineHeight
}
