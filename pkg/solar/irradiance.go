package solar

import (
	"math"
	"time"
)

const (
	solarConstant  = 1361.0 // W/m² at the top of the atmosphere
	linkeTurbidity = 2.0    // typical clear sky, range 2-6
)

// ClearSkyIrradiance estimates global horizontal irradiance in W/m² at t with
// the Ineichen-Perez clear-sky model, driven by the same simplified elevation
// as the rest of the package. altitude is in metres.
func ClearSkyIrradiance(t time.Time, latitude, longitude, altitude float64) float64 {
	elev := SolarElevationAngle(t, latitude, longitude)
	if elev <= 0 {
		return 0
	}
	n := float64(DayOfYear(t.UTC()))
	zenith := 90 - elev

	// Extraterrestrial radiation, corrected for the Earth-Sun distance.
	g0 := solarConstant * (1 + 0.033*math.Cos(degToRad(360.0*(n-3)/365.0)))

	// Kasten-Young air mass.
	airMass := 1.0 / (math.Cos(degToRad(zenith)) + 0.50572*math.Pow(96.07995-zenith, -1.6364))

	dni := g0 * 0.7 * math.Exp(-0.027*airMass*linkeTurbidity*math.Exp(-altitude/8000.0))
	diffuseFraction := 0.1 + 0.05*math.Sin(math.Pi*(n-100)/365.0)
	dhi := diffuseFraction * g0 * math.Sin(degToRad(zenith))

	return math.Max(0, dni*math.Cos(degToRad(zenith))+dhi)
}

// PeakClearSkyIrradiance is ClearSkyIrradiance at the modelled solar noon of date.
func PeakClearSkyIrradiance(date time.Time, latitude, longitude, altitude float64) float64 {
	noonUTC := 12 - longitude/15
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return ClearSkyIrradiance(d.Add(time.Duration(noonUTC*float64(time.Hour))), latitude, longitude, altitude)
}
