package utils

import (
	"time"

	"cloud.google.com/go/civil"
)

// AddMonthsClamped moves d forward by n calendar months. When the target month
// is shorter than d's day, the result is clamped to its last day, so
// Jan 31 + 1 month is Feb 28 (or 29).
func AddMonthsClamped(d civil.Date, n int) civil.Date {
	total := int(d.Month) - 1 + n
	year := d.Year + total/12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	target := time.Month(month + 1)

	day := d.Day
	if last := daysIn(year, target); day > last {
		day = last
	}
	return civil.Date{Year: year, Month: target, Day: day}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today returns the calendar date of t in its own location.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t)
}
