// Package dates parses the month/year tokens found in resume date ranges and supplies
// the injected notion of "now" used for open-ended ranges.
package dates

import "time"

// Clock supplies the present time for open-ended ("Present") ranges
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now returns f()
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a clock backed by time.Now
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// Fixed returns a clock that always reports t
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// MonthsBetween returns the calendar month difference end - start, ignoring days
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
