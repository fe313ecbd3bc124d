package timeutil

import (
	"time"

	"github.com/jinzhu/now"
)

// DayBounds returns the first and last millisecond of t's calendar day in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := now.With(t).BeginningOfDay()
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// LoadLocation resolves a zone name; "" and "Local" mean the server zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// ClockIn returns a clock reporting the current time in loc.
func ClockIn(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
