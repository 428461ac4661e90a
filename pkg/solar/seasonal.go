package solar

import "math"

// SeasonalCoefficient is the 0..1 cyclic value that peaks on anchorDay and
// bottoms out half a year later. Every displayed statistic of the year view is
// derived from it with Lerp. Fractional days are accepted so lagged quantities
// can be evaluated between calendar days.
func SeasonalCoefficient(day float64, totalDays, anchorDay int) float64 {
	if totalDays <= 0 {
		return 0
	}
	offset := normalizeDayFloat(day-float64(anchorDay)+float64(totalDays), totalDays)
	coeff := (math.Cos(offset/float64(totalDays)*2*math.Pi) + 1) / 2
	return clamp01(coeff)
}

// Lerp interpolates linearly between low and high.
func Lerp(low, high, coeff float64) float64 {
	return low + (high-low)*coeff
}

// Bounds is the (low, high) pair a named quantity takes at coefficient 0 and 1.
type Bounds struct {
	Name string
	Unit string
	Low  float64
	High float64
	// LagWeeks delays the quantity behind the solar input, e.g. temperature.
	LagWeeks float64
}

// At returns the quantity at the given coefficient.
func (b Bounds) At(coeff float64) float64 {
	return Lerp(b.Low, b.High, coeff)
}

// Inverse maps a quantity value back to its coefficient, clamped to [0,1].
func (b Bounds) Inverse(value float64) float64 {
	if b.High == b.Low {
		return 0
	}
	return clamp01((value - b.Low) / (b.High - b.Low))
}

// ForDay evaluates the quantity on a day of the year, honoring LagWeeks.
func (b Bounds) ForDay(day, totalDays, anchorDay int) float64 {
	lagDays := float64(totalDays) * b.LagWeeks / 52
	return b.At(SeasonalCoefficient(float64(day)-lagDays, totalDays, anchorDay))
}

// Named quantities shown by the info panel, calibrated for the reference
// location (London).
var (
	PeakIntensity       = Bounds{Name: "Daily Peak Sun Intensity", Unit: "%", Low: 19.7, High: 100}
	AverageIntensity    = Bounds{Name: "24hr Average Sun Intensity", Unit: "%", Low: 15.8, High: 100}
	PeakElevation       = Bounds{Name: "Highest Sun Elevation", Unit: "°", Low: 15.5, High: 61.5}
	DaylightHours       = Bounds{Name: "Daylight Time", Unit: "Hours", Low: 6.5, High: 16.5}
	DaylightPercentage  = Bounds{Name: "Daylight Percentage", Unit: "%", Low: 0, High: 100}
	RelativeTemperature = Bounds{Name: "24hr Relative Temperature", Unit: "%", Low: 15.8, High: 100, LagWeeks: 5.5}
)

// Quantities lists the named bounds in display order.
var Quantities = []Bounds{
	PeakIntensity,
	AverageIntensity,
	PeakElevation,
	DaylightPercentage,
	RelativeTemperature,
	DaylightHours,
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
