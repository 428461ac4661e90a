package render

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func drawSample(r Renderer) {
	s := Stroke{Color: Light.Circle, Width: 2, Dash: []float64{4, 2}}
	r.Clear(Light.Background)
	r.StrokeArc(50, 50, 40, 0, math.Pi, s)
	r.FillSector(50, 50, 40, 0, math.Pi/4, Light.Summer1)
	r.FillCircle(50, 10, 5, Light.Red, &Stroke{Color: Light.DotOutline, Width: 1})
	r.FillCircle(10, 10, 3, Light.Blue, nil)
	r.Line(0, 0, 100, 100, s)
	r.Polyline([]Point{{0, 0}, {10, 5}, {20, 0}}, Stroke{Color: Light.Green, Width: 1})
	r.Text(50, 90, "June", TextStyle{Color: Light.Label, Size: 12, Align: AlignCenter})
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder()
	drawSample(src)
	if len(src.Ops) != 8 {
		t.Fatalf("expected 8 ops, got %d", len(src.Ops))
	}

	dst := NewRecorder()
	if err := src.Replay(dst); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(dst.Ops) != len(src.Ops) {
		t.Fatalf("replayed %d ops, want %d", len(dst.Ops), len(src.Ops))
	}
	for i := range src.Ops {
		a, b := src.Ops[i], dst.Ops[i]
		if a.Kind != b.Kind || a.Color != b.Color || a.Outline != b.Outline || a.Text != b.Text {
			t.Errorf("op %d differs after replay: %+v vs %+v", i, a, b)
		}
	}
}

func TestRecorderFilterAndReset(t *testing.T) {
	r := NewRecorder()
	drawSample(r)
	if got := len(r.Filter(OpFillCircle)); got != 2 {
		t.Errorf("fill circles = %d, want 2", got)
	}
	if got := r.Filter(OpText); len(got) != 1 || got[0].Text != "June" {
		t.Errorf("text ops = %+v", got)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("reset left %d ops", len(r.Ops))
	}
}

func TestRecorderPolylineCopiesPoints(t *testing.T) {
	r := NewRecorder()
	pts := []Point{{1, 1}, {2, 2}}
	r.Polyline(pts, Stroke{Color: Light.Axis, Width: 1})
	pts[0].X = 99
	if r.Ops[0].Points[0].X != 1 {
		t.Error("recorder kept a reference to the caller's slice")
	}
}

func TestReplayRejectsBadColor(t *testing.T) {
	r := &Recorder{Ops: []Op{{Kind: OpClear, Color: "not-a-color"}}}
	if err := r.Replay(NewRecorder()); err == nil {
		t.Error("expected an error for an invalid color")
	}
}

func TestSchemeByName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "light", false},
		{"light", "light", false},
		{" Dark ", "dark", false},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := SchemeByName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s.Name != tt.want {
				t.Errorf("got %q, want %q", s.Name, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	if Light.Toggle().Name != "dark" || Dark.Toggle().Name != "light" {
		t.Error("toggle did not swap palettes")
	}
}

func TestBlend(t *testing.T) {
	if got := Blend(Light.Summer1, Light.Winter1, 0).Hex(); got != Light.Summer1.Hex() {
		t.Errorf("blend at 0 = %s", got)
	}
	if got := Blend(Light.Summer1, Light.Winter1, 1).Hex(); got != Light.Winter1.Hex() {
		t.Errorf("blend at 1 = %s", got)
	}
	if got := Blend(Light.Summer1, Light.Winter1, 7).Hex(); got != Light.Winter1.Hex() {
		t.Errorf("blend above 1 should clamp, got %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("PNG"); err != nil || f != FormatPNG {
		t.Errorf("ParseFormat(PNG) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
	if FormatSVG.ContentType() != "image/svg+xml" || FormatPNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
}

func TestEncode(t *testing.T) {
	var svg bytes.Buffer
	if err := Encode(&svg, FormatSVG, 100, 100, drawSample); err != nil {
		t.Fatalf("svg: %v", err)
	}
	if !strings.Contains(svg.String(), "<svg") {
		t.Error("svg output missing root element")
	}

	var png bytes.Buffer
	if err := Encode(&png, FormatPNG, 100, 100, drawSample); err != nil {
		t.Fatalf("png: %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")) {
		t.Error("png output missing signature")
	}
}

func TestTranslate(t *testing.T) {
	rec := NewRecorder()
	drawSample(Translate(rec, 300, 20))

	if got := len(rec.Filter(OpClear)); got != 0 {
		t.Errorf("translated clear reached the surface %d times", got)
	}
	line := rec.Filter(OpLine)[0]
	if line.Points[0] != (Point{300, 20}) || line.Points[1] != (Point{400, 120}) {
		t.Errorf("line = %+v", line.Points)
	}
	poly := rec.Filter(OpPolyline)[0]
	if poly.Points[1] != (Point{310, 25}) {
		t.Errorf("polyline = %+v", poly.Points)
	}
	text := rec.Filter(OpText)[0]
	if text.Points[0] != (Point{350, 110}) {
		t.Errorf("text at %+v", text.Points[0])
	}
	for _, op := range rec.Filter(OpFillCircle) {
		if op.Points[0].X < 300 {
			t.Errorf("circle not moved: %+v", op.Points[0])
		}
	}
}

func TestDashes(t *testing.T) {
	line := []Point{{0, 0}, {10, 0}}

	tests := []struct {
		name    string
		pts     []Point
		pattern []float64
		want    [][]Point
	}{
		{"solid", line, nil, [][]Point{{{0, 0}, {10, 0}}}},
		{"zero pattern", line, []float64{0, 0}, [][]Point{{{0, 0}, {10, 0}}}},
		{"two dashes", line, []float64{2, 3}, [][]Point{{{0, 0}, {2, 0}}, {{5, 0}, {7, 0}}}},
		{"across a corner", []Point{{0, 0}, {4, 0}, {4, 4}}, []float64{6, 1}, [][]Point{{{0, 0}, {4, 0}, {4, 2}}, {{4, 3}, {4, 4}}}},
		{"too short", []Point{{1, 1}}, []float64{1, 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dashes(tt.pts, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d runs %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("run %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("run %d point %d = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}
