// Package render defines the drawing surface the widgets draw through and
// the backends that implement it. Coordinates are pixels with the origin in
// the top-left corner and y growing downward; angles are radians measured
// clockwise from 3 o'clock, matching the year circle's convention.
package render

import "github.com/lucasb-eyer/go-colorful"

// Point is a pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke describes how lines and arcs are drawn.
type Stroke struct {
	Color colorful.Color
	Width float64
	// Dash alternates on/off lengths in pixels; empty means solid.
	Dash []float64
}

// Align positions text horizontally relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes filled text.
type TextStyle struct {
	Color colorful.Color
	Size  float64
	Align Align
}

// Renderer is the small set of primitives the widgets need. Implementations
// are free to batch, but must draw in call order.
type Renderer interface {
	// Clear paints the whole surface.
	Clear(c colorful.Color)
	// StrokeArc strokes the arc from start to end (clockwise) around (cx, cy).
	StrokeArc(cx, cy, r, start, end float64, s Stroke)
	// FillSector fills the pie slice from start to end around (cx, cy).
	FillSector(cx, cy, r, start, end float64, c colorful.Color)
	// FillCircle fills a disc, optionally outlining it.
	FillCircle(cx, cy, r float64, fill colorful.Color, outline *Stroke)
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64, s Stroke)
	// Polyline strokes connected straight segments through pts.
	Polyline(pts []Point, s Stroke)
	// Text fills a single line of text whose baseline starts at (x, y).
	Text(x, y float64, text string, t TextStyle)
}
