// Package config loads the viewer's settings: the modeled location, display
// defaults, widget geometry and the HTTP listener.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetLocation() (*LocationData, error)
	GetServer() (*ServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Location LocationData `json:"location"`
	Display  DisplayData  `json:"display"`
	YearView YearViewData `json:"year_view"`
	DayView  DayViewData  `json:"day_view"`
	Server   ServerData   `json:"server"`
}

// LocationData is the single reference location the model is evaluated at.
type LocationData struct {
	// Preset names a built-in location; explicit coordinates override it.
	Preset    string  `json:"preset,omitempty"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	// Timezone is an IANA zone used to display sunrise and sunset.
	Timezone string `json:"timezone,omitempty"`
}

// DisplayData holds the initial display settings of new sessions.
type DisplayData struct {
	Scheme  string `json:"scheme"`
	Mode    string `json:"mode"`
	Variant string `json:"variant"`
}

// YearViewData is the year circle's geometry in pixels.
type YearViewData struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Radius     float64 `json:"radius"`
	Sectors    int     `json:"sectors"`
	DashLength float64 `json:"dash_length"`
}

// DayViewData is the day curve's geometry in pixels.
type DayViewData struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	LeftMargin  float64 `json:"left_margin"`
	GraphWidth  float64 `json:"graph_width"`
	Baseline    float64 `json:"baseline"`
	GraphHeight float64 `json:"graph_height"`
	AxisTop     float64 `json:"axis_top"`
	DotRadius   float64 `json:"dot_radius"`
	Step        float64 `json:"step"`
}

// ServerData configures the REST listener.
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
}

// Presets are the built-in reference locations.
var Presets = map[string]LocationData{
	"london": {Name: "London", Latitude: 51.5074, Longitude: -0.1278, Altitude: 11, Timezone: "Europe/London"},
	"tokyo":  {Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Altitude: 40, Timezone: "Asia/Tokyo"},
}

// StaticProvider serves an in-memory configuration.
type StaticProvider struct {
	config *ConfigData
}

// NewStaticProvider serves cfg, or the defaults when cfg is nil.
func NewStaticProvider(cfg *ConfigData) *StaticProvider {
	if cfg == nil {
		cfg = Default()
	}
	return &StaticProvider{config: cfg}
}

func (s *StaticProvider) LoadConfig() (*ConfigData, error)    { return s.config, nil }
func (s *StaticProvider) GetLocation() (*LocationData, error) { return &s.config.Location, nil }
func (s *StaticProvider) GetServer() (*ServerData, error)     { return &s.config.Server, nil }
func (s *StaticProvider) IsReadOnly() bool                    { return true }
func (s *StaticProvider) Close() error                        { return nil }
