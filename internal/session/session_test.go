package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
)

var solsticeAfternoon = FixedClock{T: time.Date(2025, time.June, 21, 14, 30, 0, 0, time.UTC)}

func newTestSession() *Session {
	return New("test", DefaultOptions(), solsticeAfternoon)
}

func collect(s *Session) (*[]EventKind, func()) {
	var mu sync.Mutex
	var kinds []EventKind
	cancel := s.Subscribe(func(e Event) {
		mu.Lock()
		kinds = append(kinds, e.Kind)
		mu.Unlock()
	})
	return &kinds, cancel
}

func TestNewStartsAtClock(t *testing.T) {
	st := newTestSession().State()
	if st.Year != 2025 || st.Day != 172 || st.AnchorDay != 172 || st.TotalDays != 365 {
		t.Errorf("state = %+v", st)
	}
	if st.Hour != 14.5 || st.Time != "14:30" {
		t.Errorf("hour = %v time = %q", st.Hour, st.Time)
	}
	if st.Date != "21st of June 2025" {
		t.Errorf("date = %q", st.Date)
	}
	if st.Mode != "intensity" || st.Scheme != "light" || st.Variant != "elevation" {
		t.Errorf("settings = %s %s %s", st.Mode, st.Scheme, st.Variant)
	}
}

func TestNewYearsEve(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		date string
	}{
		{"common year", time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC), "31st of December 2025"},
		{"leap year", time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC), "31st of December 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("eve", DefaultOptions(), FixedClock{T: tt.now})
			if st := s.State(); st.Year != tt.now.Year() || st.Date != tt.date {
				t.Errorf("state year %d date %q, want %d %q", st.Year, st.Date, tt.now.Year(), tt.date)
			}

			s.ResetToToday()
			if info := s.Info(); info.Year != tt.now.Year() || info.Date != tt.date {
				t.Errorf("info year %d date %q, want %d %q", info.Year, info.Date, tt.now.Year(), tt.date)
			}
			y, m, d := s.day.Date().Date()
			if y != tt.now.Year() || m != time.December || d != 31 {
				t.Errorf("day curve date = %d-%02d-%02d", y, m, d)
			}
		})
	}
}

func TestResets(t *testing.T) {
	s := newTestSession()
	events, _ := collect(s)

	s.SetDay(10)
	s.SetHour(3)
	if st := s.State(); st.Day != 10 || st.Hour != 3 {
		t.Fatalf("state after set = %+v", st)
	}
	s.ResetToToday()
	s.ResetToNow()
	if st := s.State(); st.Day != 172 || st.Hour != 14.5 {
		t.Errorf("state after reset = day %d hour %v", st.Day, st.Hour)
	}
	want := []EventKind{DayChanged, HourChanged, Reset, DayChanged, Reset, HourChanged}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, (*events)[i], want[i])
		}
	}
}

func TestSchemeSubscription(t *testing.T) {
	s := newTestSession()
	events, cancel := collect(s)

	s.SetScheme(render.Dark)
	s.SetScheme(render.Dark)
	if len(*events) != 1 || (*events)[0] != SchemeChanged {
		t.Fatalf("events = %v, want one scheme change", *events)
	}
	if s.Scheme().Name != "dark" {
		t.Errorf("scheme = %s", s.Scheme().Name)
	}

	cancel()
	s.ToggleScheme()
	if len(*events) != 1 {
		t.Errorf("cancelled subscriber still received %v", *events)
	}
	if s.Scheme().Name != "light" {
		t.Errorf("toggle left scheme %s", s.Scheme().Name)
	}
}

func TestSubscriberMayReadSession(t *testing.T) {
	s := newTestSession()
	var day int
	s.Subscribe(func(Event) { day = s.State().Day })
	s.SetDay(42)
	if day != 42 {
		t.Errorf("subscriber saw day %d, want 42", day)
	}
}

func TestEdgeClickChangesDay(t *testing.T) {
	s := newTestSession()
	events, _ := collect(s)

	// The bottom of the circle is half a year after the anchor.
	changed, _, err := s.Pointer(WidgetYear, PointerDown, render.Point{X: 150, Y: 235})
	if err != nil || !changed {
		t.Fatalf("changed = %v err = %v", changed, err)
	}
	if st := s.State(); st.Day != 355 {
		t.Errorf("day = %d, want 355", st.Day)
	}
	if len(*events) != 1 || (*events)[0] != DayChanged {
		t.Errorf("events = %v", *events)
	}
	if info := s.Info(); info.Date != "21st of December 2025" {
		t.Errorf("info date = %q", info.Date)
	}
}

func TestOnlyOneWidgetDrags(t *testing.T) {
	s := newTestSession()
	opts := DefaultOptions()

	// Anchor day sits at the top of the circle.
	if _, cursor, _ := s.Pointer(WidgetYear, PointerDown, render.Point{X: 150, Y: 35}); cursor.String() != "grabbing" {
		t.Fatalf("year cursor = %v", cursor)
	}

	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	dv := daycurve.New(opts.DayView, opts.Variant, date, opts.Latitude, opts.Longitude, 14.5)
	s.Pointer(WidgetDay, PointerDown, dv.DotPosition())

	st := s.State()
	if st.YearDrag != "dragging_circle_dot" || st.DayDrag != "idle" {
		t.Errorf("drag states = %s / %s", st.YearDrag, st.DayDrag)
	}

	s.Pointer(WidgetYear, PointerUp, render.Point{})
	s.Pointer(WidgetDay, PointerDown, dv.DotPosition())
	if st := s.State(); st.DayDrag != "dragging_curve_dot" {
		t.Errorf("day drag = %s after year released", st.DayDrag)
	}
	changed, _, _ := s.Pointer(WidgetDay, PointerMove, render.Point{X: opts.DayView.LeftMargin})
	if !changed || s.State().Hour != 0 {
		t.Errorf("drag to left margin: changed %v hour %v", changed, s.State().Hour)
	}
	s.Pointer(WidgetDay, PointerLeave, render.Point{})
	if st := s.State(); st.DayDrag != "idle" {
		t.Errorf("leave left day drag %s", st.DayDrag)
	}
}

func TestUnknownPointerKind(t *testing.T) {
	if _, _, err := newTestSession().Pointer(WidgetYear, "wiggle", render.Point{}); err == nil {
		t.Error("expected an error")
	}
}

func TestModeAndVariant(t *testing.T) {
	s := newTestSession()
	events, _ := collect(s)
	s.CycleMode()
	if s.State().Mode != "temperature" {
		t.Errorf("mode after cycle = %s", s.State().Mode)
	}
	s.SetMode(markers.ModeTemperature)
	s.SetMode(markers.ModeTime)
	s.SetVariant(daycurve.Intensity)
	if len(*events) != 3 {
		t.Errorf("events = %v, want 3", *events)
	}
	if s.State().Variant != "intensity" {
		t.Errorf("variant = %s", s.State().Variant)
	}
}

func TestRenderUsesScheme(t *testing.T) {
	s := newTestSession()
	s.SetScheme(render.Dark)
	for _, w := range []Widget{WidgetYear, WidgetDay} {
		rec := render.NewRecorder()
		s.Render(w, rec)
		if len(rec.Ops) == 0 || rec.Ops[0].Color != render.Dark.Background.Hex() {
			t.Errorf("%s: first op %+v", w, rec.Ops)
		}
	}
	if w, h := s.Size(WidgetDay); w != 540 || h != 230 {
		t.Errorf("day size = %vx%v", w, h)
	}
}

func TestParseWidget(t *testing.T) {
	if w, err := ParseWidget("Year"); err != nil || w != WidgetYear {
		t.Errorf("ParseWidget(Year) = %q, %v", w, err)
	}
	if _, err := ParseWidget("month"); err == nil {
		t.Error("expected error for month")
	}
}

func TestManager(t *testing.T) {
	log.UseNop()
	m := NewManager(DefaultOptions(), solsticeAfternoon)
	a := m.Create()
	b := m.Create()
	if a.ID() == b.ID() || m.Len() != 2 || len(m.IDs()) != 2 {
		t.Fatalf("ids %q %q len %d", a.ID(), b.ID(), m.Len())
	}

	got, err := m.Get(a.ID())
	if err != nil || got != a {
		t.Fatalf("Get = %v, %v", got, err)
	}

	if err := m.Delete(a.ID()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := m.Delete(a.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
	if _, err := m.Get(a.ID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get deleted err = %v", err)
	}
	if _, err := m.Get("not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get malformed err = %v", err)
	}
}
