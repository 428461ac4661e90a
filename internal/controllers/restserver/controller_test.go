package restserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/config"
	"github.com/vmihailenco/msgpack/v5"
)

var testNow = time.Date(2025, time.June, 21, 14, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.UseNop()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	manager := session.NewManager(session.DefaultOptions(), session.FixedClock{T: testNow})
	ctrl, err := NewController(ctx, &sync.WaitGroup{}, config.NewStaticProvider(nil), manager, log.GetSugaredLogger())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	srv := httptest.NewServer(ctrl.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// Helper function to make HTTP requests against the test server
func makeRequest(t *testing.T, srv *httptest.Server, method, endpoint string, body interface{}) *http.Response {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, srv.URL+endpoint, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, endpoint, err)
	}
	return resp
}

// Helper function to parse JSON response
func parseResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func createSession(t *testing.T, srv *httptest.Server) session.State {
	t.Helper()
	resp := makeRequest(t, srv, http.MethodPost, "/sessions", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var st session.State
	parseResponse(t, resp, &st)
	return st
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp := makeRequest(t, srv, http.MethodGet, "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var result map[string]interface{}
	parseResponse(t, resp, &result)
	if result["status"] != "ok" {
		t.Errorf("status = %v", result["status"])
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)
	if st.Year != 2025 || st.Day != 172 {
		t.Errorf("new session at %d/%d, want day 172 of 2025", st.Day, st.Year)
	}

	resp := makeRequest(t, srv, http.MethodGet, "/sessions/"+st.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}
	var got session.State
	parseResponse(t, resp, &got)
	if got.ID != st.ID {
		t.Errorf("got id %s, want %s", got.ID, st.ID)
	}

	resp = makeRequest(t, srv, http.MethodDelete, "/sessions/"+st.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete: status %d", resp.StatusCode)
	}

	resp = makeRequest(t, srv, http.MethodGet, "/sessions/"+st.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete: status %d", resp.StatusCode)
	}
}

func TestUnknownSessions(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{
		"/sessions/not-a-uuid",
		"/sessions/00000000-0000-0000-0000-000000000000",
		"/sessions/00000000-0000-0000-0000-000000000000/info",
		"/sessions/00000000-0000-0000-0000-000000000000/year.svg",
	} {
		t.Run(path, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodGet, path, nil)
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("status %d, want 404", resp.StatusCode)
			}
			var body map[string]interface{}
			parseResponse(t, resp, &body)
			if msg, _ := body["error"].(string); msg == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestPointerEdgeClick(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)

	resp := makeRequest(t, srv, http.MethodPost, "/sessions/"+st.ID+"/year/pointer",
		PointerRequest{Kind: "down", X: 150, Y: 235})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pointer: status %d", resp.StatusCode)
	}
	var pr PointerResponse
	parseResponse(t, resp, &pr)
	if !pr.Changed || pr.State.Day != 355 {
		t.Errorf("edge click: changed=%v day=%d, want true 355", pr.Changed, pr.State.Day)
	}
	if pr.State.YearDrag != "idle" {
		t.Errorf("edge click started a drag: %s", pr.State.YearDrag)
	}

	resp = makeRequest(t, srv, http.MethodGet, "/sessions/"+st.ID+"/info", nil)
	var info panel.Info
	parseResponse(t, resp, &info)
	if info.Date != "21st of December 2025" {
		t.Errorf("info date = %q", info.Date)
	}
}

func TestPointerBadInput(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"unknown kind", "/sessions/" + st.ID + "/day/pointer", PointerRequest{Kind: "hover"}, http.StatusBadRequest},
		{"bad body", "/sessions/" + st.ID + "/day/pointer", "not an object", http.StatusBadRequest},
		{"unknown widget", "/sessions/" + st.ID + "/month/pointer", PointerRequest{Kind: "down"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodPost, tt.path, tt.body)
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)
	path := "/sessions/" + st.ID + "/settings"

	day, hour := 355, 12.0
	scheme, mode, variant := "dark", "temperature", "intensity"
	resp := makeRequest(t, srv, http.MethodPut, path, SettingsRequest{
		Day: &day, Hour: &hour, Scheme: &scheme, Mode: &mode, Variant: &variant,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("settings: status %d", resp.StatusCode)
	}
	var got session.State
	parseResponse(t, resp, &got)
	if got.Day != 355 || got.Hour != 12 || got.Scheme != "dark" || got.Mode != "temperature" || got.Variant != "intensity" {
		t.Errorf("settings not applied: %+v", got)
	}

	bad := "sepia"
	resp = makeRequest(t, srv, http.MethodPut, path, SettingsRequest{Day: &day, Scheme: &bad})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad scheme: status %d", resp.StatusCode)
	}

	year := 0
	resp = makeRequest(t, srv, http.MethodPut, path, SettingsRequest{Year: &year})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad year: status %d", resp.StatusCode)
	}
}

func TestResetSession(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)

	day, hour := 10, 3.0
	resp := makeRequest(t, srv, http.MethodPut, "/sessions/"+st.ID+"/settings", SettingsRequest{Day: &day, Hour: &hour})
	resp.Body.Close()

	resp = makeRequest(t, srv, http.MethodPost, "/sessions/"+st.ID+"/reset", ResetRequest{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset: status %d", resp.StatusCode)
	}
	var got session.State
	parseResponse(t, resp, &got)
	if got.Day != 172 || got.Hour != 14.5 {
		t.Errorf("after reset day=%d hour=%v, want 172 14.5", got.Day, got.Hour)
	}

	resp = makeRequest(t, srv, http.MethodPost, "/sessions/"+st.ID+"/reset", ResetRequest{Target: "yesterday"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad target: status %d", resp.StatusCode)
	}
}

func TestGetImage(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)

	tests := []struct {
		path        string
		contentType string
		prefix      []byte
	}{
		{"/sessions/" + st.ID + "/year.svg", "image/svg+xml", []byte("<")},
		{"/sessions/" + st.ID + "/day.svg", "image/svg+xml", []byte("<")},
		{"/sessions/" + st.ID + "/year.png", "image/png", []byte("\x89PNG")},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodGet, tt.path, nil)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("content type %q, want %q", ct, tt.contentType)
			}
			body, _ := io.ReadAll(resp.Body)
			if !bytes.HasPrefix(body, tt.prefix) {
				t.Errorf("body starts %q", body[:min(len(body), 8)])
			}
		})
	}
}

func TestGetOpsMsgPack(t *testing.T) {
	srv := newTestServer(t)
	st := createSession(t, srv)

	resp := makeRequest(t, srv, http.MethodGet, "/sessions/"+st.ID+"/year/ops?format=msgpack", nil)
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/x-msgpack" {
		t.Fatalf("content type %q", ct)
	}
	var rec render.Recorder
	dec := msgpack.NewDecoder(resp.Body)
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rec.Ops) == 0 || rec.Ops[0].Kind != render.OpClear {
		t.Errorf("ops do not start with clear: %d ops", len(rec.Ops))
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t)

	resp := makeRequest(t, srv, http.MethodGet, "/summary", nil)
	var sum SummaryResponse
	parseResponse(t, resp, &sum)
	if sum.Year != 2025 || sum.TotalDays != 365 || sum.AnchorDay != 172 {
		t.Errorf("summary header = %d %d %d", sum.Year, sum.TotalDays, sum.AnchorDay)
	}
	if len(sum.Quantities) == 0 {
		t.Fatal("no quantities")
	}

	resp = makeRequest(t, srv, http.MethodGet, "/summary?year=2024", nil)
	parseResponse(t, resp, &sum)
	if sum.TotalDays != 366 {
		t.Errorf("2024 has %d days", sum.TotalDays)
	}

	resp = makeRequest(t, srv, http.MethodGet, "/summary?year=abc", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad year: status %d", resp.StatusCode)
	}
}

func TestCharts(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/charts/annual.png", "/charts/annual.svg?width=400&height=300", "/charts/daylight.png?scheme=dark"} {
		t.Run(path, func(t *testing.T) {
			resp := makeRequest(t, srv, http.MethodGet, path, nil)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status %d", resp.StatusCode)
			}
			if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
				t.Errorf("content type %q", resp.Header.Get("Content-Type"))
			}
		})
	}

	resp := makeRequest(t, srv, http.MethodGet, "/charts/annual.png?width=1", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("tiny chart: status %d", resp.StatusCode)
	}
}

func TestRequestsAreLogged(t *testing.T) {
	srv := newTestServer(t)
	resp := makeRequest(t, srv, http.MethodGet, "/healthz", nil)
	resp.Body.Close()

	resp = makeRequest(t, srv, http.MethodGet, "/logs/http?limit=5", nil)
	var entries []log.HTTPLogEntry
	parseResponse(t, resp, &entries)
	found := false
	for _, e := range entries {
		if e.Path == "/healthz" && e.Status == http.StatusOK {
			found = true
		}
	}
	if !found {
		t.Errorf("healthz request missing from %d log entries", len(entries))
	}
}
