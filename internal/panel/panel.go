// Package panel derives the statistics shown next to the widgets after every
// change of the selected day or hour.
package panel

import (
	"fmt"
	"math"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/pkg/solar"
)

// Input is everything the panel depends on.
type Input struct {
	Year      int
	Day       int
	Hour      float64
	Latitude  float64
	Longitude float64
	Altitude  float64
	// Location is used to display sunrise and sunset; nil means UTC.
	Location *time.Location
}

// Reading is one named, rounded figure.
type Reading struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

func (r Reading) String() string {
	switch r.Unit {
	case "°", "%":
		return fmt.Sprintf("%s: %s%s", r.Name, formatNumber(r.Value), r.Unit)
	case "":
		return fmt.Sprintf("%s: %s", r.Name, formatNumber(r.Value))
	}
	return fmt.Sprintf("%s: %s %s", r.Name, formatNumber(r.Value), r.Unit)
}

// Info is the derived panel.
type Info struct {
	Date         string    `json:"date"`
	Day          int       `json:"day"`
	Year         int       `json:"year"`
	Coefficient  float64   `json:"coefficient"`
	Seasonal     []Reading `json:"seasonal"`
	Measured     []Reading `json:"measured"`
	Sunrise      string    `json:"sunrise,omitempty"`
	Sunset       string    `json:"sunset,omitempty"`
	TimeSelected string    `json:"time_selected"`
	Hour         float64   `json:"hour"`
	Current      []Reading `json:"current"`
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", Round(v, 1))
}

func reading(name, unit string, v float64) Reading {
	return Reading{Name: name, Unit: unit, Value: Round(v, 1)}
}

// Compute derives the panel for in.
func Compute(in Input) Info {
	total := solar.TotalDaysInYear(in.Year)
	anchor := solar.AnchorDay(in.Year)
	day := solar.NormalizeDay(in.Day, total)
	date := solar.DateForDay(day, in.Year)

	info := Info{
		Date:         solar.FormatDate(day, in.Year),
		Day:          day,
		Year:         date.Year(),
		Coefficient:  solar.SeasonalCoefficient(float64(day), total, anchor),
		TimeSelected: solar.FormatHour(in.Hour),
		Hour:         in.Hour,
	}

	for _, q := range solar.Quantities {
		info.Seasonal = append(info.Seasonal, reading(q.Name, q.Unit, q.ForDay(day, total, anchor)))
	}

	st := solar.CalculateSunTimes(date, in.Latitude, in.Longitude)
	info.Sunrise = solar.FormatSunTime(st.Rise, in.Location)
	info.Sunset = solar.FormatSunTime(st.Set, in.Location)
	noon := date.Add(12 * time.Hour)
	info.Measured = []Reading{
		reading("Measured Daylight Time", "Hours", solar.MeasuredDaylightHours(date, in.Latitude, in.Longitude)),
		reading("Noon Sun Elevation", "°", solar.NoonElevation(day, in.Latitude)),
		reading("Ephemeris Noon Elevation", "°", solar.EphemerisNoonElevation(noon, in.Latitude)),
		reading("Model Declination", "°", solar.Declination(day)),
		reading("Declination Error", "°", solar.DeclinationError(noon)),
		reading("Peak Clear-Sky Irradiance", "W/m²", solar.PeakClearSkyIrradiance(date, in.Latitude, in.Longitude, in.Altitude)),
	}

	at := date.Add(time.Duration(in.Hour * float64(time.Hour)))
	info.Current = []Reading{
		reading("Current sun angle", "°", solar.SolarElevationAngle(at, in.Latitude, in.Longitude)),
		reading("Current sun intensity", "%", solar.SolarIntensity(at, in.Latitude, in.Longitude)*100),
		reading("Clear-sky irradiance", "W/m²", solar.ClearSkyIrradiance(at, in.Latitude, in.Longitude, in.Altitude)),
	}
	return info
}

// Lines renders the panel as display text, one figure per line.
func (i Info) Lines() []string {
	out := []string{"Day Selected: " + i.Date}
	for _, r := range i.Seasonal {
		out = append(out, r.String())
	}
	if i.Sunrise != "" {
		out = append(out, fmt.Sprintf("Sunrise: %s, Sunset: %s", i.Sunrise, i.Sunset))
	}
	for _, r := range i.Measured {
		out = append(out, r.String())
	}
	out = append(out, "Time Selected: "+i.TimeSelected)
	for _, r := range i.Current {
		out = append(out, r.String())
	}
	return out
}

// Find returns the reading with the given name from any group.
func (i Info) Find(name string) (Reading, bool) {
	for _, group := range [][]Reading{i.Seasonal, i.Measured, i.Current} {
		for _, r := range group {
			if r.Name == name {
				return r, true
			}
		}
	}
	return Reading{}, false
}
