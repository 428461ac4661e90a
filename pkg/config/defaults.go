package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const DefaultPort = 8080

// Default returns the built-in configuration: London, light scheme,
// intensity markers and the stock widget geometry.
func Default() *ConfigData {
	c := &ConfigData{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills every unset field.
func (c *ConfigData) ApplyDefaults() {
	c.Location.applyDefaults()

	d := &c.Display
	if d.Scheme == "" {
		d.Scheme = "light"
	}
	if d.Mode == "" {
		d.Mode = markers.ModeIntensity.String()
	}
	if d.Variant == "" {
		d.Variant = "elevation"
	}

	y := &c.YearView
	setDefault(&y.Width, 300)
	setDefault(&y.Height, 270)
	setDefault(&y.Radius, 100)
	setDefault(&y.DashLength, 13)
	if y.Sectors == 0 {
		y.Sectors = 64
	}

	v := &c.DayView
	setDefault(&v.Width, 540)
	setDefault(&v.Height, 230)
	setDefault(&v.LeftMargin, 80)
	setDefault(&v.GraphWidth, 380)
	setDefault(&v.Baseline, 180)
	setDefault(&v.GraphHeight, 160)
	setDefault(&v.AxisTop, 20)
	setDefault(&v.DotRadius, 6)
	setDefault(&v.Step, 0.01)

	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

func setDefault(f *float64, v float64) {
	if *f == 0 {
		*f = v
	}
}

func (l *LocationData) applyDefaults() {
	preset := strings.ToLower(strings.TrimSpace(l.Preset))
	if preset == "" && l.Latitude == 0 && l.Longitude == 0 && l.Name == "" {
		preset = "london"
	}
	p, ok := Presets[preset]
	if !ok {
		return
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		l.Latitude, l.Longitude = p.Latitude, p.Longitude
		if l.Altitude == 0 {
			l.Altitude = p.Altitude
		}
	}
	if l.Name == "" {
		l.Name = p.Name
	}
	if l.Timezone == "" {
		l.Timezone = p.Timezone
	}
}

// Validate reports every problem found, each wrapping ErrInvalid.
func (c *ConfigData) Validate() error {
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	l := c.Location
	if l.Preset != "" {
		if _, ok := Presets[strings.ToLower(strings.TrimSpace(l.Preset))]; !ok {
			invalid("unknown location preset %q", l.Preset)
		}
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		invalid("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		invalid("longitude %v out of range [-180, 180]", l.Longitude)
	}
	if l.Timezone != "" {
		if _, err := time.LoadLocation(l.Timezone); err != nil {
			invalid("timezone %q: %v", l.Timezone, err)
		}
	}

	switch strings.ToLower(c.Display.Scheme) {
	case "light", "dark":
	default:
		invalid("unknown scheme %q", c.Display.Scheme)
	}
	if _, err := markers.ParseMode(c.Display.Mode); err != nil {
		invalid("%v", err)
	}
	switch strings.ToLower(c.Display.Variant) {
	case "elevation", "intensity":
	default:
		invalid("unknown day curve variant %q", c.Display.Variant)
	}

	y := c.YearView
	if y.Width <= 0 || y.Height <= 0 || y.Radius <= 0 || y.DashLength <= 0 {
		invalid("year view dimensions must be positive")
	}
	if y.Sectors < 4 {
		invalid("year view needs at least 4 sectors, got %d", y.Sectors)
	}

	v := c.DayView
	if v.Width <= 0 || v.Height <= 0 || v.GraphWidth <= 0 || v.GraphHeight <= 0 {
		invalid("day view dimensions must be positive")
	}
	if v.Step <= 0 || v.Step > 1 {
		invalid("day view step %v out of range (0, 1]", v.Step)
	}

	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		invalid("port %d out of range", s.Port)
	}
	if (s.Cert == "") != (s.Key == "") {
		invalid("cert and key must be set together")
	}

	return errors.Join(errs...)
}

// TimeLocation resolves Timezone, falling back to UTC.
func (l LocationData) TimeLocation() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr is the host:port the server listens on.
func (s ServerData) Addr() string {
	return fmt.Sprintf("%s:%d", s.ListenAddr, s.Port)
}
