package solar

import "math"

// TopAngle is where the anchor day sits on the year circle (12 o'clock).
// Angles are in radians, 0 at 3 o'clock, increasing clockwise on screen.
const TopAngle = -math.Pi / 2

// AngleForDay places a (possibly fractional) day-of-year on the year circle.
func AngleForDay(day float64, totalDays, anchorDay int) float64 {
	if totalDays <= 0 {
		return TopAngle
	}
	offset := normalizeDayFloat(day-float64(anchorDay)+float64(totalDays), totalDays)
	return TopAngle + offset*(2*math.Pi/float64(totalDays))
}

// DayForAngle is the inverse of AngleForDay, rounded to the nearest whole day.
func DayForAngle(angle float64, totalDays, anchorDay int) int {
	if totalDays <= 0 {
		return 0
	}
	rel := NormalizeAngle(angle - TopAngle)
	day := int(math.Round(float64(anchorDay) + rel/(2*math.Pi)*float64(totalDays)))
	return NormalizeDay(day, totalDays)
}

// NormalizeAngle folds an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
