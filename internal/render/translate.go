package render

import "github.com/lucasb-eyer/go-colorful"

// Translated draws onto Dst shifted by (DX, DY). Hosts use it to place
// several widgets on one surface.
type Translated struct {
	Dst    Renderer
	DX, DY float64
}

// Translate returns r shifted by (dx, dy).
func Translate(r Renderer, dx, dy float64) *Translated {
	return &Translated{Dst: r, DX: dx, DY: dy}
}

// Clear is dropped so one widget cannot wipe another; the host clears the
// shared surface once per frame.
func (t *Translated) Clear(colorful.Color) {}

func (t *Translated) StrokeArc(cx, cy, radius, start, end float64, s Stroke) {
	t.Dst.StrokeArc(cx+t.DX, cy+t.DY, radius, start, end, s)
}

func (t *Translated) FillSector(cx, cy, radius, start, end float64, c colorful.Color) {
	t.Dst.FillSector(cx+t.DX, cy+t.DY, radius, start, end, c)
}

func (t *Translated) FillCircle(cx, cy, radius float64, fill colorful.Color, outline *Stroke) {
	t.Dst.FillCircle(cx+t.DX, cy+t.DY, radius, fill, outline)
}

func (t *Translated) Line(x1, y1, x2, y2 float64, s Stroke) {
	t.Dst.Line(x1+t.DX, y1+t.DY, x2+t.DX, y2+t.DY, s)
}

func (t *Translated) Polyline(pts []Point, s Stroke) {
	moved := make([]Point, len(pts))
	for i, p := range pts {
		moved[i] = Point{X: p.X + t.DX, Y: p.Y + t.DY}
	}
	t.Dst.Polyline(moved, s)
}

func (t *Translated) Text(x, y float64, text string, ts TextStyle) {
	t.Dst.Text(x+t.DX, y+t.DY, text, ts)
}
