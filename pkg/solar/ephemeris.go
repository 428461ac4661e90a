package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	msolar "github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

func apparentDeclination(t time.Time) unit.Angle {
	jde := julian.TimeToJD(t.UTC())
	_, dec := msolar.ApparentEquatorial(jde)
	return dec
}

// EphemerisDeclination returns the sun's apparent declination in degrees at t
// from Meeus' low-precision solar theory. It is the reference the sine
// approximation in Declination is compared against.
func EphemerisDeclination(t time.Time) float64 {
	return apparentDeclination(t).Deg()
}

// DeclinationError is how far the simplified model strays from the reference
// declination at t, in degrees.
func DeclinationError(t time.Time) float64 {
	return Declination(DayOfYear(t.UTC())) - EphemerisDeclination(t)
}

// EphemerisNoonElevation is the solar-noon elevation for t's date using the
// reference declination.
func EphemerisNoonElevation(t time.Time, lat float64) float64 {
	u := t.UTC()
	dec := apparentDeclination(time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC))
	φ := unit.AngleFromDeg(lat)
	sinElev := φ.Sin()*dec.Sin() + φ.Cos()*dec.Cos()
	return radToDeg(math.Asin(math.Max(-1, math.Min(1, sinElev))))
}
