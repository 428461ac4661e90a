package solar

import (
	"math"
	"time"
)

const (
	// MaxDeclination is the axial tilt used by the declination approximation.
	MaxDeclination = 23.44

	// Extinction model constants for SolarIntensity.
	intensityI0 = 1000.0
	intensityK  = 0.18
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Declination approximates the sun's declination in degrees for a day of the
// year with a pure sine, zero at the March equinox (day 81).
func Declination(dayOfYear int) float64 {
	return MaxDeclination * math.Sin(2*math.Pi/365*float64(dayOfYear-81))
}

// SolarElevationAngle returns the sun's elevation above the horizon in degrees.
// Local solar time is the UTC clock shifted by longitude; no equation-of-time
// correction is applied, so solar noon can be off by up to ~16 minutes.
func SolarElevationAngle(t time.Time, lat, lon float64) float64 {
	u := t.UTC()
	decl := Declination(DayOfYear(u))
	solarTime := HourOfDay(u) + lon/15
	hourAngle := (solarTime - 12) * 15

	return elevation(lat, decl, hourAngle)
}

func elevation(lat, decl, hourAngle float64) float64 {
	latRad := degToRad(lat)
	declRad := degToRad(decl)
	sinElev := math.Sin(latRad)*math.Sin(declRad) +
		math.Cos(latRad)*math.Cos(declRad)*math.Cos(degToRad(hourAngle))
	// Rounding can push the argument a hair outside asin's domain.
	sinElev = math.Max(-1, math.Min(1, sinElev))
	return radToDeg(math.Asin(sinElev))
}

// SolarIntensity is the normalized clear-sky intensity at t: 0 whenever the
// sun is at or below the horizon, otherwise I0·sin(e)·exp(-k/sin(e)) divided
// by the same expression at the location's summer-solstice solar noon. The
// result is clamped to [0,1] and only reaches 1 at the annual maximum.
func SolarIntensity(t time.Time, lat, lon float64) float64 {
	elev := SolarElevationAngle(t, lat, lon)
	if elev <= 0 {
		return 0
	}
	peak := extinction(PeakElevationAt(lat))
	if peak <= 0 {
		return 0
	}
	return clamp01(extinction(elev) / peak)
}

// PeakElevationAt is the solar-noon elevation on the summer solstice of the
// hemisphere containing lat, under the same declination model.
func PeakElevationAt(lat float64) float64 {
	decl := MaxDeclination
	if lat < 0 {
		decl = -MaxDeclination
	}
	return elevation(lat, decl, 0)
}

func extinction(elevDeg float64) float64 {
	if elevDeg <= 0 {
		return 0
	}
	s := math.Sin(degToRad(elevDeg))
	return intensityI0 * s * math.Exp(-intensityK/s)
}

// NoonElevation is the highest elevation the model reaches on a day of the year.
func NoonElevation(dayOfYear int, lat float64) float64 {
	return elevation(lat, Declination(dayOfYear), 0)
}
