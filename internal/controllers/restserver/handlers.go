package restserver

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tobyhogan/seasons-viewer-tool/internal/charts"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/responseformat"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

const (
	defaultChartWidth  = 720
	defaultChartHeight = 400
	maxChartSide       = 4096
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// PointerRequest is the body of a pointer event.
type PointerRequest struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// PointerResponse reports what a pointer event did.
type PointerResponse struct {
	Changed bool          `json:"changed"`
	Cursor  string        `json:"cursor"`
	State   session.State `json:"state"`
}

// ResetRequest selects what to reset: "today", "now", or both when empty.
type ResetRequest struct {
	Target string `json:"target"`
}

// SettingsRequest changes any subset of a session's settings. Nothing is
// applied unless every field is valid.
type SettingsRequest struct {
	Year         *int     `json:"year,omitempty"`
	Day          *int     `json:"day,omitempty"`
	Hour         *float64 `json:"hour,omitempty"`
	Scheme       *string  `json:"scheme,omitempty"`
	Mode         *string  `json:"mode,omitempty"`
	Variant      *string  `json:"variant,omitempty"`
	ToggleScheme bool     `json:"toggle_scheme,omitempty"`
	CycleMode    bool     `json:"cycle_mode,omitempty"`
}

// SummaryResponse is the sun information table for one year.
type SummaryResponse struct {
	Year       int             `json:"year"`
	TotalDays  int             `json:"total_days"`
	AnchorDay  int             `json:"anchor_day"`
	Quantities []solar.Summary `json:"quantities"`
}

func (h *Handlers) writeError(w http.ResponseWriter, req *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Errorw("request failed", "path", req.URL.Path, "status", status, "error", err)
	} else {
		log.Debugw("bad request", "path", req.URL.Path, "status", status, "error", err)
	}
	if werr := h.formatter.WriteError(w, req, status, err); werr != nil {
		log.Errorf("error writing error response: %v", werr)
	}
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, status int, data any) {
	if err := h.formatter.WriteResponse(w, req, status, data); err != nil {
		log.Errorf("error writing response for %s: %v", req.URL.Path, err)
	}
}

func statusFor(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// lookup resolves the {id} route variable, writing a 404 when it is unknown.
func (h *Handlers) lookup(w http.ResponseWriter, req *http.Request) (*session.Session, bool) {
	s, err := h.controller.Sessions.Get(mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, req, statusFor(err), err)
		return nil, false
	}
	return s, true
}

func (h *Handlers) Health(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.controller.Sessions.Len(),
	})
}

// GetHTTPLogs returns the most recent requests, newest first.
func (h *Handlers) GetHTTPLogs(w http.ResponseWriter, req *http.Request) {
	limit := 100
	if v := req.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			h.writeError(w, req, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = n
	}
	h.write(w, req, http.StatusOK, log.GetHTTPLogBuffer().Recent(limit))
}

func (h *Handlers) CreateSession(w http.ResponseWriter, req *http.Request) {
	s := h.controller.Sessions.Create()
	w.Header().Set("Location", "/sessions/"+s.ID())
	h.write(w, req, http.StatusCreated, s.State())
}

func (h *Handlers) ListSessions(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, http.StatusOK, h.controller.Sessions.IDs())
}

func (h *Handlers) GetSession(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	h.write(w, req, http.StatusOK, s.State())
}

func (h *Handlers) DeleteSession(w http.ResponseWriter, req *http.Request) {
	if err := h.controller.Sessions.Delete(mux.Vars(req)["id"]); err != nil {
		h.writeError(w, req, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostPointer feeds one pointer event to a widget's controller.
func (h *Handlers) PostPointer(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	widget, err := session.ParseWidget(mux.Vars(req)["widget"])
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	var body PointerRequest
	if err := h.formatter.Decode(req, &body); err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	changed, cursor, err := s.Pointer(widget, session.PointerKind(body.Kind), render.Point{X: body.X, Y: body.Y})
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	h.write(w, req, http.StatusOK, PointerResponse{
		Changed: changed,
		Cursor:  cursor.String(),
		State:   s.State(),
	})
}

func (h *Handlers) ResetSession(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	var body ResetRequest
	if err := h.formatter.Decode(req, &body); err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	switch body.Target {
	case "today":
		s.ResetToToday()
	case "now":
		s.ResetToNow()
	case "":
		s.ResetToToday()
		s.ResetToNow()
	default:
		h.writeError(w, req, http.StatusBadRequest, fmt.Errorf("unknown reset target %q (want today or now)", body.Target))
		return
	}
	h.write(w, req, http.StatusOK, s.State())
}

// UpdateSettings applies a SettingsRequest.
func (h *Handlers) UpdateSettings(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	var body SettingsRequest
	if err := h.formatter.Decode(req, &body); err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	var (
		scheme  render.ColorScheme
		mode    markers.Mode
		variant daycurve.Variant
		err     error
	)
	if body.Scheme != nil {
		if scheme, err = render.SchemeByName(*body.Scheme); err != nil {
			h.writeError(w, req, http.StatusBadRequest, err)
			return
		}
	}
	if body.Mode != nil {
		if mode, err = markers.ParseMode(*body.Mode); err != nil {
			h.writeError(w, req, http.StatusBadRequest, err)
			return
		}
	}
	if body.Variant != nil {
		if variant, err = daycurve.ParseVariant(*body.Variant); err != nil {
			h.writeError(w, req, http.StatusBadRequest, err)
			return
		}
	}
	if body.Year != nil {
		if err := validYear(*body.Year); err != nil {
			h.writeError(w, req, http.StatusBadRequest, err)
			return
		}
		s.SetYear(*body.Year)
	}

	if body.Day != nil {
		s.SetDay(*body.Day)
	}
	if body.Hour != nil {
		s.SetHour(*body.Hour)
	}
	if body.Scheme != nil {
		s.SetScheme(scheme)
	}
	if body.ToggleScheme {
		s.ToggleScheme()
	}
	if body.Mode != nil {
		s.SetMode(mode)
	}
	if body.CycleMode {
		s.CycleMode()
	}
	if body.Variant != nil {
		s.SetVariant(variant)
	}
	h.write(w, req, http.StatusOK, s.State())
}

func (h *Handlers) GetInfo(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	h.write(w, req, http.StatusOK, s.Info())
}

// GetOps returns a widget's draw instructions.
func (h *Handlers) GetOps(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	widget, err := session.ParseWidget(mux.Vars(req)["widget"])
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	rec := render.NewRecorder()
	s.Render(widget, rec)
	h.write(w, req, http.StatusOK, rec)
}

// GetImage renders a widget as SVG or PNG.
func (h *Handlers) GetImage(w http.ResponseWriter, req *http.Request) {
	s, ok := h.lookup(w, req)
	if !ok {
		return
	}
	vars := mux.Vars(req)
	widget, err := session.ParseWidget(vars["widget"])
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	format, err := render.ParseFormat(vars["format"])
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	width, height := s.Size(widget)
	var buf bytes.Buffer
	err = render.Encode(&buf, format, int(width), int(height), func(r render.Renderer) {
		s.Render(widget, r)
	})
	if err != nil {
		h.writeError(w, req, http.StatusInternalServerError, fmt.Errorf("error rendering %s widget: %w", widget, err))
		return
	}
	writeImage(w, format.ContentType(), buf.Bytes())
}

// GetSummary returns the annual summary of every seasonal quantity.
func (h *Handlers) GetSummary(w http.ResponseWriter, req *http.Request) {
	year, err := h.yearParam(req)
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	total, anchor := solar.TotalDaysInYear(year), solar.AnchorDay(year)
	h.write(w, req, http.StatusOK, SummaryResponse{
		Year:       year,
		TotalDays:  total,
		AnchorDay:  anchor,
		Quantities: solar.SummarizeAll(total, anchor),
	})
}

// GetAnnualChart draws the seasonal quantities over a year.
func (h *Handlers) GetAnnualChart(w http.ResponseWriter, req *http.Request) {
	year, err := h.yearParam(req)
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	format, err := render.ParseFormat(mux.Vars(req)["format"])
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	width, err := sizeParam(req, "width", defaultChartWidth)
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	height, err := sizeParam(req, "height", defaultChartHeight)
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := charts.Annual(&buf, year, format, float64(width), float64(height)); err != nil {
		h.writeError(w, req, http.StatusInternalServerError, err)
		return
	}
	writeImage(w, format.ContentType(), buf.Bytes())
}

// GetDaylightChart draws measured daylight per month at the configured location.
func (h *Handlers) GetDaylightChart(w http.ResponseWriter, req *http.Request) {
	year, err := h.yearParam(req)
	if err != nil {
		h.writeError(w, req, http.StatusBadRequest, err)
		return
	}
	scheme := h.controller.Sessions.Options().Scheme
	if name := req.URL.Query().Get("scheme"); name != "" {
		if scheme, err = render.SchemeByName(name); err != nil {
			h.writeError(w, req, http.StatusBadRequest, err)
			return
		}
	}

	loc := h.controller.location
	var buf bytes.Buffer
	if err := charts.DaylightChart(&buf, year, loc.Latitude, loc.Longitude, scheme); err != nil {
		h.writeError(w, req, http.StatusInternalServerError, err)
		return
	}
	writeImage(w, render.FormatPNG.ContentType(), buf.Bytes())
}

func writeImage(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Errorf("error writing image: %v", err)
	}
}

// yearParam reads ?year=, defaulting to the current year.
func (h *Handlers) yearParam(req *http.Request) (int, error) {
	v := req.URL.Query().Get("year")
	if v == "" {
		return h.controller.Sessions.Clock().Now().UTC().Year(), nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", v)
	}
	return year, validYear(year)
}

func validYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("year %d out of range 1-9999", year)
	}
	return nil
}

func sizeParam(req *http.Request, name string, def int) (int, error) {
	v := req.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 16 || n > maxChartSide {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}
