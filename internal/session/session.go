// Package session holds the explicit state of one viewer: both widgets,
// their controllers, the selected scheme and mode, and the subscribers that
// redraw when any of it changes.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/internal/interaction"
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/yearcircle"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Widget names one of the two widgets.
type Widget string

const (
	WidgetYear Widget = "year"
	WidgetDay  Widget = "day"
)

// ParseWidget accepts "year" or "day".
func ParseWidget(s string) (Widget, error) {
	switch w := Widget(strings.ToLower(s)); w {
	case WidgetYear, WidgetDay:
		return w, nil
	}
	return "", fmt.Errorf("unknown widget %q", s)
}

// PointerKind is the type of a pointer event.
type PointerKind string

const (
	PointerDown  PointerKind = "down"
	PointerMove  PointerKind = "move"
	PointerUp    PointerKind = "up"
	PointerLeave PointerKind = "leave"
)

// EventKind says what changed.
type EventKind string

const (
	DayChanged    EventKind = "day_changed"
	HourChanged   EventKind = "hour_changed"
	SchemeChanged EventKind = "scheme_changed"
	ModeChanged   EventKind = "mode_changed"
	Reset         EventKind = "reset"
)

// Event is delivered to subscribers after the change is applied.
type Event struct {
	Kind    EventKind `json:"kind"`
	Session string    `json:"session"`
}

// Options configure a new session.
type Options struct {
	YearView  yearcircle.Config
	DayView   daycurve.Config
	Variant   daycurve.Variant
	Mode      markers.Mode
	Scheme    render.ColorScheme
	Latitude  float64
	Longitude float64
	Altitude  float64
	// Location is used for displayed sunrise and sunset times.
	Location *time.Location
}

// DefaultOptions is the London reference location with the light scheme.
func DefaultOptions() Options {
	return Options{
		YearView:  yearcircle.DefaultConfig(),
		DayView:   daycurve.DefaultConfig(),
		Variant:   daycurve.Elevation,
		Mode:      markers.ModeIntensity,
		Scheme:    render.Light,
		Latitude:  51.5074,
		Longitude: -0.1278,
		Altitude:  11,
	}
}

// State is a read-only snapshot of a session.
type State struct {
	ID         string  `json:"id"`
	Year       int     `json:"year"`
	Day        int     `json:"day"`
	TotalDays  int     `json:"total_days"`
	AnchorDay  int     `json:"anchor_day"`
	Date       string  `json:"date"`
	Hour       float64 `json:"hour"`
	Time       string  `json:"time"`
	Mode       string  `json:"mode"`
	Scheme     string  `json:"scheme"`
	Variant    string  `json:"variant"`
	YearDrag   string  `json:"year_drag"`
	DayDrag    string  `json:"day_drag"`
	YearCursor string  `json:"year_cursor"`
	DayCursor  string  `json:"day_cursor"`
}

// Session is one viewer's state. All methods are safe for concurrent use;
// subscribers run after the session's lock is released.
type Session struct {
	mu    sync.Mutex
	id    string
	opts  Options
	clock Clock

	scheme  render.ColorScheme
	year    *yearcircle.View
	yearCtl *interaction.Controller
	day     *daycurve.View
	dayCtl  *interaction.Controller

	pending []EventKind
	subs    map[int]func(Event)
	nextSub int
}

// New creates a session set to today and now according to clock.
func New(id string, opts Options, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	now := clock.Now().UTC()
	s := &Session{
		id:     id,
		opts:   opts,
		clock:  clock,
		scheme: opts.Scheme,
		subs:   make(map[int]func(Event)),
	}
	s.year = yearcircle.New(opts.YearView, now.Year(), solar.DayOfYear(now), opts.Mode)
	s.day = daycurve.New(opts.DayView, opts.Variant, now, opts.Latitude, opts.Longitude, solar.HourOfDay(now))

	s.yearCtl = interaction.New(s.year, interaction.DraggingCircleDot)
	s.yearCtl.OnChange(func() {
		s.syncDate()
		s.pending = append(s.pending, DayChanged)
	})
	s.dayCtl = interaction.New(s.day, interaction.DraggingCurveDot)
	s.dayCtl.OnChange(func() {
		s.pending = append(s.pending, HourChanged)
	})
	return s
}

func (s *Session) ID() string { return s.id }

// syncDate moves the day curve to the year circle's selected date.
func (s *Session) syncDate() {
	s.day.SetDate(solar.DateForDay(s.year.Day(), s.year.Year()))
}

// update runs fn under the lock and then delivers queued events.
func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	kinds := s.pending
	s.pending = nil
	subs := make([]func(Event), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	for _, k := range kinds {
		ev := Event{Kind: k, Session: s.id}
		for _, f := range subs {
			f(ev)
		}
	}
}

// Subscribe registers fn for every future event. The returned function
// removes the subscription.
func (s *Session) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) controller(w Widget) *interaction.Controller {
	if w == WidgetDay {
		return s.dayCtl
	}
	return s.yearCtl
}

func (s *Session) other(w Widget) *interaction.Controller {
	if w == WidgetDay {
		return s.yearCtl
	}
	return s.dayCtl
}

// Pointer routes a pointer event to a widget's controller. A drag on one
// widget blocks new drags on the other until it ends.
func (s *Session) Pointer(w Widget, kind PointerKind, p render.Point) (changed bool, cursor interaction.Cursor, err error) {
	s.update(func() {
		c := s.controller(w)
		switch kind {
		case PointerDown:
			if s.other(w).Dragging() {
				break
			}
			changed = c.PointerDown(p)
		case PointerMove:
			changed = c.PointerMove(p)
		case PointerUp:
			c.PointerUp()
		case PointerLeave:
			c.PointerLeave()
		default:
			err = fmt.Errorf("unknown pointer event %q", kind)
		}
		cursor = c.Cursor()
	})
	return changed, cursor, err
}

// ResetToToday selects today's date from the clock.
func (s *Session) ResetToToday() {
	s.update(func() {
		now := s.clock.Now().UTC()
		s.year.SetYear(now.Year())
		s.year.SetDay(solar.DayOfYear(now))
		s.syncDate()
		s.pending = append(s.pending, Reset, DayChanged)
	})
}

// ResetToNow selects the clock's current UTC hour.
func (s *Session) ResetToNow() {
	s.update(func() {
		s.day.SetHour(solar.HourOfDay(s.clock.Now()))
		s.pending = append(s.pending, Reset, HourChanged)
	})
}

// SetDay selects a day of the session's year.
func (s *Session) SetDay(day int) {
	s.update(func() {
		s.year.SetDay(day)
		s.syncDate()
		s.pending = append(s.pending, DayChanged)
	})
}

// SetYear switches the calendar year, keeping the selected day in range.
func (s *Session) SetYear(year int) {
	s.update(func() {
		s.year.SetYear(year)
		s.syncDate()
		s.pending = append(s.pending, DayChanged)
	})
}

// SetHour selects an hour of the day, clamped to [0, 24].
func (s *Session) SetHour(hour float64) {
	s.update(func() {
		s.day.SetHour(hour)
		s.pending = append(s.pending, HourChanged)
	})
}

// SetScheme changes the palette and notifies subscribers so hosts redraw.
func (s *Session) SetScheme(scheme render.ColorScheme) {
	s.update(func() {
		if scheme.Name == s.scheme.Name {
			return
		}
		s.scheme = scheme
		s.pending = append(s.pending, SchemeChanged)
	})
}

// ToggleScheme swaps between the light and dark palettes.
func (s *Session) ToggleScheme() {
	s.update(func() {
		s.scheme = s.scheme.Toggle()
		s.pending = append(s.pending, SchemeChanged)
	})
}

func (s *Session) Scheme() render.ColorScheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheme
}

// SetMode switches the year circle's marker mode.
func (s *Session) SetMode(m markers.Mode) {
	s.update(func() {
		if s.year.Mode() == m {
			return
		}
		s.year.SetMode(m)
		s.pending = append(s.pending, ModeChanged)
	})
}

// CycleMode advances to the next marker mode.
func (s *Session) CycleMode() {
	s.update(func() {
		s.year.SetMode(s.year.Mode().Next())
		s.pending = append(s.pending, ModeChanged)
	})
}

// SetVariant switches what the day curve plots.
func (s *Session) SetVariant(v daycurve.Variant) {
	s.update(func() {
		if s.day.Variant() == v {
			return
		}
		s.day.SetVariant(v)
		s.pending = append(s.pending, HourChanged)
	})
}

// State returns a snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:         s.id,
		Year:       s.year.Year(),
		Day:        s.year.Day(),
		TotalDays:  s.year.TotalDays(),
		AnchorDay:  s.year.AnchorDay(),
		Date:       solar.FormatDate(s.year.Day(), s.year.Year()),
		Hour:       s.day.Hour(),
		Time:       solar.FormatHour(s.day.Hour()),
		Mode:       s.year.Mode().String(),
		Scheme:     s.scheme.Name,
		Variant:    s.day.Variant().String(),
		YearDrag:   s.yearCtl.State().String(),
		DayDrag:    s.dayCtl.State().String(),
		YearCursor: s.yearCtl.Cursor().String(),
		DayCursor:  s.dayCtl.Cursor().String(),
	}
}

// Info derives the info panel for the current selection.
func (s *Session) Info() panel.Info {
	s.mu.Lock()
	in := panel.Input{
		Year:      s.year.Year(),
		Day:       s.year.Day(),
		Hour:      s.day.Hour(),
		Latitude:  s.opts.Latitude,
		Longitude: s.opts.Longitude,
		Altitude:  s.opts.Altitude,
		Location:  s.opts.Location,
	}
	s.mu.Unlock()
	return panel.Compute(in)
}

// Size is a widget's canvas size in pixels.
func (s *Session) Size(w Widget) (width, height float64) {
	if w == WidgetDay {
		return s.opts.DayView.Width, s.opts.DayView.Height
	}
	return s.opts.YearView.Width, s.opts.YearView.Height
}

// Render draws a widget with the session's scheme.
func (s *Session) Render(w Widget, r render.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == WidgetDay {
		s.day.Render(r, s.scheme)
		return
	}
	s.year.Render(r, s.scheme)
}
