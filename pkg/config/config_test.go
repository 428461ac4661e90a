package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Location.Name != "London" || c.Location.Latitude != 51.5074 || c.Location.Longitude != -0.1278 {
		t.Errorf("default location = %+v", c.Location)
	}
	if c.YearView.Sectors != 64 || c.YearView.Radius != 100 || c.DayView.GraphWidth != 380 {
		t.Errorf("default geometry = %+v %+v", c.YearView, c.DayView)
	}
	if c.Server.Addr() != ":8080" {
		t.Errorf("addr = %q", c.Server.Addr())
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
location:
  preset: tokyo
display:
  scheme: dark
  mode: temperature
  variant: intensity
year-view:
  radius: 120
  sectors: 32
server:
  listen-addr: 127.0.0.1
  port: 9090
`)
	c, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if c.Location.Name != "Tokyo" || c.Location.Latitude != 35.6762 {
		t.Errorf("location = %+v", c.Location)
	}
	if c.Display.Scheme != "dark" || c.Display.Mode != "temperature" || c.Display.Variant != "intensity" {
		t.Errorf("display = %+v", c.Display)
	}
	if c.YearView.Radius != 120 || c.YearView.Sectors != 32 || c.YearView.Width != 300 {
		t.Errorf("year view = %+v", c.YearView)
	}
	if c.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("addr = %q", c.Server.Addr())
	}
}

func TestExplicitCoordinatesBeatPreset(t *testing.T) {
	c, err := ParseYAML([]byte("location:\n  preset: london\n  latitude: 60\n  longitude: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Location.Latitude != 60 || c.Location.Longitude != 10 || c.Location.Name != "London" {
		t.Errorf("location = %+v", c.Location)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigData)
	}{
		{"latitude", func(c *ConfigData) { c.Location.Latitude = 91 }},
		{"longitude", func(c *ConfigData) { c.Location.Longitude = -181 }},
		{"preset", func(c *ConfigData) { c.Location.Preset = "atlantis" }},
		{"timezone", func(c *ConfigData) { c.Location.Timezone = "Mars/Olympus" }},
		{"scheme", func(c *ConfigData) { c.Display.Scheme = "sepia" }},
		{"mode", func(c *ConfigData) { c.Display.Mode = "lunar" }},
		{"variant", func(c *ConfigData) { c.Display.Variant = "azimuth" }},
		{"sectors", func(c *ConfigData) { c.YearView.Sectors = 2 }},
		{"radius", func(c *ConfigData) { c.YearView.Radius = -1 }},
		{"step", func(c *ConfigData) { c.DayView.Step = 2 }},
		{"port", func(c *ConfigData) { c.Server.Port = 70000 }},
		{"tls", func(c *ConfigData) { c.Server.Cert = "cert.pem" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestYAMLProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("location:\n  preset: tokyo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var p ConfigProvider = NewYAMLProvider(path)
	loc, err := p.GetLocation()
	if err != nil {
		t.Fatalf("GetLocation: %v", err)
	}
	if loc.Name != "Tokyo" {
		t.Errorf("location = %+v", loc)
	}
	srv, err := p.GetServer()
	if err != nil || srv.Port != DefaultPort {
		t.Errorf("server = %+v, %v", srv, err)
	}
	if !p.IsReadOnly() || p.Close() != nil {
		t.Error("yaml provider should be read-only and close cleanly")
	}

	if _, err := NewYAMLProvider(filepath.Join(t.TempDir(), "missing.yaml")).LoadConfig(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestYAMLProviderRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  scheme: sepia\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewYAMLProvider(path).LoadConfig(); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadConfig = %v, want ErrInvalid", err)
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(nil)
	c, err := p.LoadConfig()
	if err != nil || c.Location.Name != "London" {
		t.Errorf("static config = %+v, %v", c, err)
	}
}

func mapLookup(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	c := Default()
	err := c.ApplyEnv(mapLookup(map[string]string{
		"SEASONS_LOCATION": "tokyo",
		"SEASONS_ALTITUDE": "55",
		"SEASONS_SCHEME":   "dark",
		"SEASONS_MODE":     "combined",
		"SEASONS_PORT":     "9000",
		"SEASONS_TIMEZONE": "UTC",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if c.Location.Name != "Tokyo" || c.Location.Altitude != 55 || c.Location.Timezone != "UTC" {
		t.Errorf("location = %+v", c.Location)
	}
	if c.Display.Scheme != "dark" || c.Display.Mode != "combined" || c.Server.Port != 9000 {
		t.Errorf("display %+v server %+v", c.Display, c.Server)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := map[string]string{
		"SEASONS_LATITUDE": "north",
		"SEASONS_PORT":     "eighty",
		"SEASONS_MODE":     "lunar",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			err := Default().ApplyEnv(mapLookup(map[string]string{k: v}))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ApplyEnv = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEnvLookup(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	if err := os.WriteFile(first, []byte("SEASONS_TEST_A=first\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("SEASONS_TEST_A=second\nSEASONS_TEST_B=second\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SEASONS_TEST_B", "process")

	lookup, err := EnvLookup(first, filepath.Join(dir, "missing.env"), second)
	if err != nil {
		t.Fatalf("EnvLookup: %v", err)
	}
	if v, _ := lookup("SEASONS_TEST_A"); v != "first" {
		t.Errorf("A = %q, want first", v)
	}
	if v, _ := lookup("SEASONS_TEST_B"); v != "process" {
		t.Errorf("B = %q, want process", v)
	}
	if _, ok := lookup("SEASONS_TEST_C"); ok {
		t.Error("C should be unset")
	}
}

func TestTimeLocation(t *testing.T) {
	if loc := (LocationData{}).TimeLocation(); loc.String() != "UTC" {
		t.Errorf("empty timezone = %v", loc)
	}
	if loc := (LocationData{Timezone: "Asia/Tokyo"}).TimeLocation(); loc.String() != "Asia/Tokyo" {
		t.Errorf("tokyo = %v", loc)
	}
}
