package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes holds the sunrise and sunset of a calendar date. Polar is set when
// the sun does not cross the horizon that day; Rise and Set are then zero.
type SunTimes struct {
	Rise  time.Time
	Set   time.Time
	Polar bool
}

// CalculateSunTimes returns sunrise and sunset (UTC) for date at the given location.
func CalculateSunTimes(date time.Time, latitude, longitude float64) SunTimes {
	rise, set := sunrise.SunriseSunset(latitude, longitude, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return SunTimes{Polar: true}
	}
	return SunTimes{Rise: rise.UTC(), Set: set.UTC()}
}

// MeasuredDaylightHours is the sunrise-to-sunset length of date in hours. For
// polar days it is 24 when the modelled noon sun is above the horizon and 0
// otherwise.
func MeasuredDaylightHours(date time.Time, latitude, longitude float64) float64 {
	st := CalculateSunTimes(date, latitude, longitude)
	if st.Polar {
		if NoonElevation(DayOfYear(date), latitude) > 0 {
			return 24
		}
		return 0
	}
	return st.Set.Sub(st.Rise).Hours()
}

// FormatSunTime renders t in loc as "3:04 PM", or "" for the zero time.
func FormatSunTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("3:04 PM")
}
