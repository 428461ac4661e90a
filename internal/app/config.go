package app

import (
	"fmt"
	"path/filepath"

	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/yearcircle"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/config"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
)

// LoadConfig reads cfgFile, or the built-in defaults when it is empty, and
// applies SEASONS_* overrides from the environment and envFiles. The result
// is served from memory so later reads see the overrides.
func LoadConfig(cfgFile string, envFiles ...string) (config.ConfigProvider, error) {
	var cfgData *config.ConfigData
	if cfgFile == "" {
		cfgData = config.Default()
	} else {
		filename, _ := filepath.Abs(cfgFile)
		var err error
		cfgData, err = config.NewYAMLProvider(filename).LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
		}
	}

	lookup, err := config.EnvLookup(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := cfgData.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return config.NewStaticProvider(cfgData), nil
}

// SessionOptions translates a validated configuration into the options new
// sessions start from.
func SessionOptions(cfg *config.ConfigData) (session.Options, error) {
	scheme, err := render.SchemeByName(cfg.Display.Scheme)
	if err != nil {
		return session.Options{}, err
	}
	mode, err := markers.ParseMode(cfg.Display.Mode)
	if err != nil {
		return session.Options{}, err
	}
	variant, err := daycurve.ParseVariant(cfg.Display.Variant)
	if err != nil {
		return session.Options{}, err
	}

	y, d := cfg.YearView, cfg.DayView
	return session.Options{
		YearView: yearcircle.Config{
			Width:      y.Width,
			Height:     y.Height,
			Radius:     y.Radius,
			Sectors:    y.Sectors,
			DashLength: y.DashLength,
		},
		DayView: daycurve.Config{
			Width:       d.Width,
			Height:      d.Height,
			LeftMargin:  d.LeftMargin,
			GraphWidth:  d.GraphWidth,
			Baseline:    d.Baseline,
			GraphHeight: d.GraphHeight,
			AxisTop:     d.AxisTop,
			DotRadius:   d.DotRadius,
			Step:        d.Step,
		},
		Variant:   variant,
		Mode:      mode,
		Scheme:    scheme,
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Altitude:  cfg.Location.Altitude,
		Location:  cfg.Location.TimeLocation(),
	}, nil
}
