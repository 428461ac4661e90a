package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig reads the file, fills defaults for anything left out and
// validates the result.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseYAML(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

// ParseYAML decodes a YAML document into a defaulted, validated ConfigData.
func ParseYAML(data []byte) (*ConfigData, error) {
	var yamlConfig ConfigYAML
	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Location: LocationData{
			Preset:    yamlConfig.Location.Preset,
			Name:      yamlConfig.Location.Name,
			Latitude:  yamlConfig.Location.Latitude,
			Longitude: yamlConfig.Location.Longitude,
			Altitude:  yamlConfig.Location.Altitude,
			Timezone:  yamlConfig.Location.Timezone,
		},
		Display: DisplayData{
			Scheme:  yamlConfig.Display.Scheme,
			Mode:    yamlConfig.Display.Mode,
			Variant: yamlConfig.Display.Variant,
		},
		YearView: YearViewData{
			Width:      yamlConfig.YearView.Width,
			Height:     yamlConfig.YearView.Height,
			Radius:     yamlConfig.YearView.Radius,
			Sectors:    yamlConfig.YearView.Sectors,
			DashLength: yamlConfig.YearView.DashLength,
		},
		DayView: DayViewData{
			Width:       yamlConfig.DayView.Width,
			Height:      yamlConfig.DayView.Height,
			LeftMargin:  yamlConfig.DayView.LeftMargin,
			GraphWidth:  yamlConfig.DayView.GraphWidth,
			Baseline:    yamlConfig.DayView.Baseline,
			GraphHeight: yamlConfig.DayView.GraphHeight,
			AxisTop:     yamlConfig.DayView.AxisTop,
			DotRadius:   yamlConfig.DayView.DotRadius,
			Step:        yamlConfig.DayView.Step,
		},
		Server: ServerData{
			ListenAddr: yamlConfig.Server.ListenAddr,
			Port:       yamlConfig.Server.Port,
			Cert:       yamlConfig.Server.Cert,
			Key:        yamlConfig.Server.Key,
		},
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetLocation returns the location section
func (y *YAMLProvider) GetLocation() (*LocationData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Location, nil
}

// GetServer returns the server section
func (y *YAMLProvider) GetServer() (*ServerData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Server, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing the file format
type ConfigYAML struct {
	Location LocationYAML `yaml:"location,omitempty"`
	Display  DisplayYAML  `yaml:"display,omitempty"`
	YearView YearViewYAML `yaml:"year-view,omitempty"`
	DayView  DayViewYAML  `yaml:"day-view,omitempty"`
	Server   ServerYAML   `yaml:"server,omitempty"`
}

type LocationYAML struct {
	Preset    string  `yaml:"preset,omitempty"`
	Name      string  `yaml:"name,omitempty"`
	Latitude  float64 `yaml:"latitude,omitempty"`
	Longitude float64 `yaml:"longitude,omitempty"`
	Altitude  float64 `yaml:"altitude,omitempty"`
	Timezone  string  `yaml:"timezone,omitempty"`
}

type DisplayYAML struct {
	Scheme  string `yaml:"scheme,omitempty"`
	Mode    string `yaml:"mode,omitempty"`
	Variant string `yaml:"variant,omitempty"`
}

type YearViewYAML struct {
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Radius     float64 `yaml:"radius,omitempty"`
	Sectors    int     `yaml:"sectors,omitempty"`
	DashLength float64 `yaml:"dash-length,omitempty"`
}

type DayViewYAML struct {
	Width       float64 `yaml:"width,omitempty"`
	Height      float64 `yaml:"height,omitempty"`
	LeftMargin  float64 `yaml:"left-margin,omitempty"`
	GraphWidth  float64 `yaml:"graph-width,omitempty"`
	Baseline    float64 `yaml:"baseline,omitempty"`
	GraphHeight float64 `yaml:"graph-height,omitempty"`
	AxisTop     float64 `yaml:"axis-top,omitempty"`
	DotRadius   float64 `yaml:"dot-radius,omitempty"`
	Step        float64 `yaml:"step,omitempty"`
}

type ServerYAML struct {
	ListenAddr string `yaml:"listen-addr,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
}
