package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output encoding supported by Encode.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// VG adapts a gonum/plot vg canvas to Renderer. One pixel maps to one point
// and the y axis is flipped so callers keep screen coordinates.
type VG struct {
	c      vg.Canvas
	dc     draw.Canvas
	width  float64
	height float64
}

// NewVG wraps a sized vg canvas.
func NewVG(c vg.CanvasSizer) *VG {
	w, h := c.Size()
	return &VG{c: c, dc: draw.New(c), width: float64(w), height: float64(h)}
}

func (v *VG) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(v.height - y)}
}

func (v *VG) setStroke(s Stroke) {
	v.c.SetColor(s.Color)
	v.c.SetLineWidth(vg.Length(s.Width))
	if len(s.Dash) == 0 {
		v.c.SetLineDash(nil, 0)
		return
	}
	dash := make([]vg.Length, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = vg.Length(d)
	}
	v.c.SetLineDash(dash, 0)
}

// arcPath traces a screen-space clockwise arc. Screen angle θ is vg angle -θ.
func (v *VG) arcPath(p *vg.Path, cx, cy, r, start, end float64) {
	p.Arc(v.pt(cx, cy), vg.Length(r), -start, -(end - start))
}

func (v *VG) Clear(c colorful.Color) {
	var p vg.Path
	p.Move(vg.Point{})
	p.Line(vg.Point{X: vg.Length(v.width)})
	p.Line(vg.Point{X: vg.Length(v.width), Y: vg.Length(v.height)})
	p.Line(vg.Point{Y: vg.Length(v.height)})
	p.Close()
	v.c.SetColor(c)
	v.c.Fill(p)
}

func (v *VG) StrokeArc(cx, cy, r, start, end float64, s Stroke) {
	var p vg.Path
	p.Move(v.pt(cx+r*math.Cos(start), cy+r*math.Sin(start)))
	v.arcPath(&p, cx, cy, r, start, end)
	v.setStroke(s)
	v.c.Stroke(p)
}

func (v *VG) FillSector(cx, cy, r, start, end float64, c colorful.Color) {
	var p vg.Path
	p.Move(v.pt(cx, cy))
	v.arcPath(&p, cx, cy, r, start, end)
	p.Close()
	v.c.SetColor(c)
	v.c.Fill(p)
}

func (v *VG) FillCircle(cx, cy, r float64, fill colorful.Color, outline *Stroke) {
	var p vg.Path
	p.Move(v.pt(cx+r, cy))
	v.arcPath(&p, cx, cy, r, 0, 2*math.Pi)
	p.Close()
	v.c.SetColor(fill)
	v.c.Fill(p)
	if outline != nil {
		v.setStroke(*outline)
		v.c.Stroke(p)
	}
}

func (v *VG) Line(x1, y1, x2, y2 float64, s Stroke) {
	var p vg.Path
	p.Move(v.pt(x1, y1))
	p.Line(v.pt(x2, y2))
	v.setStroke(s)
	v.c.Stroke(p)
}

func (v *VG) Polyline(pts []Point, s Stroke) {
	if len(pts) < 2 {
		return
	}
	var p vg.Path
	p.Move(v.pt(pts[0].X, pts[0].Y))
	for _, q := range pts[1:] {
		p.Line(v.pt(q.X, q.Y))
	}
	v.setStroke(s)
	v.c.Stroke(p)
}

func (v *VG) Text(x, y float64, txt string, t TextStyle) {
	size := t.Size
	if size <= 0 {
		size = 12
	}
	sty := text.Style{
		Color:   color.Color(t.Color),
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: vg.Points(size)},
		XAlign:  xAlign(t.Align),
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	v.dc.FillText(sty, v.pt(x, y), txt)
}

func xAlign(a Align) text.XAlignment {
	switch a {
	case AlignCenter:
		return text.XCenter
	case AlignRight:
		return text.XRight
	}
	return text.XLeft
}

// Encode draws onto a fresh canvas of the given pixel size and writes it to w.
func Encode(w io.Writer, format Format, width, height int, paint func(Renderer)) error {
	switch format {
	case FormatSVG:
		c := vgsvg.New(vg.Length(width), vg.Length(height))
		paint(NewVG(c))
		if _, err := c.WriteTo(w); err != nil {
			return fmt.Errorf("error writing svg: %w", err)
		}
	case FormatPNG:
		c := vgimg.NewWith(vgimg.UseWH(vg.Length(width), vg.Length(height)), vgimg.UseDPI(72))
		paint(NewVG(c))
		if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
			return fmt.Errorf("error writing png: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	return nil
}
