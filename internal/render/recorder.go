package render

import "github.com/lucasb-eyer/go-colorful"

// OpKind names a recorded primitive.
type OpKind string

const (
	OpClear      OpKind = "clear"
	OpStrokeArc  OpKind = "stroke_arc"
	OpFillSector OpKind = "fill_sector"
	OpFillCircle OpKind = "fill_circle"
	OpLine       OpKind = "line"
	OpPolyline   OpKind = "polyline"
	OpText       OpKind = "text"
)

// Op is one draw instruction in a transport-friendly shape. Colors are hex
// strings so the list can be replayed by any client.
type Op struct {
	Kind    OpKind    `json:"kind"`
	Points  []Point   `json:"points,omitempty"`
	Radius  float64   `json:"radius,omitempty"`
	Start   float64   `json:"start,omitempty"`
	End     float64   `json:"end,omitempty"`
	Color   string    `json:"color,omitempty"`
	Outline string    `json:"outline,omitempty"`
	Width   float64   `json:"width,omitempty"`
	Dash    []float64 `json:"dash,omitempty"`
	Text    string    `json:"text,omitempty"`
	Size    float64   `json:"size,omitempty"`
	Align   Align     `json:"align,omitempty"`
}

// Recorder is a Renderer that keeps every call as an Op.
type Recorder struct {
	Ops []Op `json:"ops"`
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded ops of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Clear(c colorful.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c.Hex()})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end float64, s Stroke) {
	r.Ops = append(r.Ops, Op{
		Kind: OpStrokeArc, Points: []Point{{cx, cy}}, Radius: radius, Start: start, End: end,
		Color: s.Color.Hex(), Width: s.Width, Dash: s.Dash,
	})
}

func (r *Recorder) FillSector(cx, cy, radius, start, end float64, c colorful.Color) {
	r.Ops = append(r.Ops, Op{
		Kind: OpFillSector, Points: []Point{{cx, cy}}, Radius: radius, Start: start, End: end, Color: c.Hex(),
	})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, fill colorful.Color, outline *Stroke) {
	op := Op{Kind: OpFillCircle, Points: []Point{{cx, cy}}, Radius: radius, Color: fill.Hex()}
	if outline != nil {
		op.Outline = outline.Color.Hex()
		op.Width = outline.Width
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, s Stroke) {
	r.Ops = append(r.Ops, Op{
		Kind: OpLine, Points: []Point{{x1, y1}, {x2, y2}}, Color: s.Color.Hex(), Width: s.Width, Dash: s.Dash,
	})
}

func (r *Recorder) Polyline(pts []Point, s Stroke) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: cp, Color: s.Color.Hex(), Width: s.Width, Dash: s.Dash})
}

func (r *Recorder) Text(x, y float64, text string, t TextStyle) {
	r.Ops = append(r.Ops, Op{
		Kind: OpText, Points: []Point{{x, y}}, Text: text, Color: t.Color.Hex(), Size: t.Size, Align: t.Align,
	})
}

// Replay draws the recorded ops onto another renderer.
func (r *Recorder) Replay(dst Renderer) error {
	for _, op := range r.Ops {
		if err := replayOp(dst, op); err != nil {
			return err
		}
	}
	return nil
}

func replayOp(dst Renderer, op Op) error {
	col, err := colorful.Hex(op.Color)
	if err != nil {
		return err
	}
	stroke := Stroke{Color: col, Width: op.Width, Dash: op.Dash}

	switch op.Kind {
	case OpClear:
		dst.Clear(col)
	case OpStrokeArc:
		dst.StrokeArc(op.Points[0].X, op.Points[0].Y, op.Radius, op.Start, op.End, stroke)
	case OpFillSector:
		dst.FillSector(op.Points[0].X, op.Points[0].Y, op.Radius, op.Start, op.End, col)
	case OpFillCircle:
		var outline *Stroke
		if op.Outline != "" {
			oc, err := colorful.Hex(op.Outline)
			if err != nil {
				return err
			}
			outline = &Stroke{Color: oc, Width: op.Width}
		}
		dst.FillCircle(op.Points[0].X, op.Points[0].Y, op.Radius, col, outline)
	case OpLine:
		dst.Line(op.Points[0].X, op.Points[0].Y, op.Points[1].X, op.Points[1].Y, stroke)
	case OpPolyline:
		dst.Polyline(op.Points, stroke)
	case OpText:
		dst.Text(op.Points[0].X, op.Points[0].Y, op.Text, TextStyle{Color: col, Size: op.Size, Align: op.Align})
	}
	return nil
}
