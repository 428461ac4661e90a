// Package solar holds the simplified seasonal model behind the year and day
// views: calendar arithmetic, the seasonal cosine coefficient, linear
// interpolation of named quantities and an approximate solar elevation and
// intensity model. None of it is meant for precise ephemeris work.
package solar

import (
	"fmt"
	"math"
	"time"
)

// TotalDaysInYear returns 366 when December 31 is the 366th day of year, 365 otherwise.
func TotalDaysInYear(year int) int {
	if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}

// DayOfYear returns the integer number of days between "January 0" (the last
// day of the previous year) and t, so January 1 is day 1. The calendar date
// is taken in t's own location.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// AnchorDay is the day-of-year of June 21, the top of the year circle.
func AnchorDay(year int) int {
	return DayOfYear(time.Date(year, time.June, 21, 0, 0, 0, 0, time.UTC))
}

// WinterSolsticeDay is the day-of-year of December 21, the bottom of the circle.
func WinterSolsticeDay(year int) int {
	return DayOfYear(time.Date(year, time.December, 21, 0, 0, 0, 0, time.UTC))
}

// DateForDay converts a day-of-year back to a calendar date in UTC. Day 0 is
// the normalized form of December 31 and stays in year.
func DateForDay(day, year int) time.Time {
	if day == 0 {
		day = TotalDaysInYear(year)
	}
	return time.Date(year, time.January, 0, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
}

// NormalizeDay folds any integer day into [0, totalDays).
func NormalizeDay(day, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	return ((day % totalDays) + totalDays) % totalDays
}

// normalizeDayFloat folds a fractional day into [0, totalDays).
func normalizeDayFloat(day float64, totalDays int) float64 {
	t := float64(totalDays)
	d := math.Mod(day, t)
	if d < 0 {
		d += t
	}
	return d
}

// FormatDate renders a day-of-year as "21st of June 2025".
func FormatDate(day, year int) string {
	d := DateForDay(day, year)
	return fmt.Sprintf("%d%s of %s %d", d.Day(), ordinalSuffix(d.Day()), d.Month(), d.Year())
}

func ordinalSuffix(day int) string {
	switch {
	case day%10 == 1 && day != 11:
		return "st"
	case day%10 == 2 && day != 12:
		return "nd"
	case day%10 == 3 && day != 13:
		return "rd"
	}
	return "th"
}

// FormatHour renders a fractional hour as zero-padded "HH:MM".
func FormatHour(hour float64) string {
	h := int(math.Floor(hour))
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// HourOfDay returns t's UTC time as fractional hours in [0,24).
func HourOfDay(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Hour()) + float64(u.Minute())/60.0 + float64(u.Second())/3600.0
}
