package desktop

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
)

const (
	// Debug font cell size.
	glyphWidth  = 6
	glyphHeight = 16

	maxCachedLabels = 512
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// The debug font only covers ASCII.
var asciiReplacer = strings.NewReplacer("°", " deg", "–", "-", "—", "-", "’", "'")

// Canvas draws render primitives onto an ebiten image.
type Canvas struct {
	dst    *ebiten.Image
	labels map[string]*ebiten.Image
	vs     []ebiten.Vertex
	is     []uint16
}

func NewCanvas() *Canvas {
	return &Canvas{labels: make(map[string]*ebiten.Image)}
}

// Begin targets dst for the following calls.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(clr colorful.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) StrokeArc(cx, cy, r, start, end float64, s render.Stroke) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{Width: float32(s.Width)})
	c.drawTriangles(s.Color)
}

func (c *Canvas) FillSector(cx, cy, r, start, end float64, clr colorful.Color) {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	path.Close()
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(clr)
}

func (c *Canvas) drawTriangles(clr colorful.Color) {
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(clr.R)
		c.vs[i].ColorG = float32(clr.G)
		c.vs[i].ColorB = float32(clr.B)
		c.vs[i].ColorA = 1
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) FillCircle(cx, cy, r float64, fill colorful.Color, outline *render.Stroke) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), fill, true)
	if outline != nil {
		vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(outline.Width), outline.Color, true)
	}
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, s render.Stroke) {
	c.Polyline([]render.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, s)
}

func (c *Canvas) Polyline(pts []render.Point, s render.Stroke) {
	for _, run := range render.Dashes(pts, s.Dash) {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(s.Width), s.Color, true)
		}
	}
}

// Text draws with the debug font scaled to the requested size; y is the
// bottom of the line.
func (c *Canvas) Text(x, y float64, txt string, t render.TextStyle) {
	img := c.label(asciiReplacer.Replace(txt))
	scale := 1.0
	if t.Size > 0 {
		scale = t.Size / 12
	}
	w := float64(img.Bounds().Dx()) * scale
	switch t.Align {
	case render.AlignCenter:
		x -= w / 2
	case render.AlignRight:
		x -= w
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-glyphHeight*scale)
	op.ColorScale.ScaleWithColor(t.Color)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// label returns txt pre-rendered in white.
func (c *Canvas) label(txt string) *ebiten.Image {
	if img, ok := c.labels[txt]; ok {
		return img
	}
	if len(c.labels) >= maxCachedLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}
	img := ebiten.NewImage(max(1, len(txt)*glyphWidth), glyphHeight)
	ebitenutil.DebugPrint(img, txt)
	c.labels[txt] = img
	return img
}
