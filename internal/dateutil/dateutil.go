// Package dateutil provides civil date and time-of-day parsing and day/week math.
package dateutil

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
)

// DateLayout is the civil date layout used across the application.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day layout used across the application.
const TimeLayout = "15:04"

// ParseDate parses a date string in YYYY-MM-DD format. The result lives
// in the local location, like every instant derived from time.Now, so
// midnights from both sources compare equal.
// If the string is empty, returns today's date truncated to midnight.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseTime validates a time-of-day string in HH:MM format and returns
// its hour and minute components.
func ParseTime(s string) (hour, minute int, err error) {
	if len(s) != 5 {
		return 0, 0, ErrInvalidTimeFormat
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	return t.Hour(), t.Minute(), nil
}

// Combine merges a civil date and a time-of-day string into a single
// naive local instant.
func Combine(date, clock string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	h, m, err := ParseTime(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, d.Location()), nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the first instant of the day after t's day.
func NextMidnight(t time.Time) time.Time {
	return TruncateToDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return CompareDay(a, b) == 0
}

// CompareDay orders a and b by their calendar day components, ignoring
// time of day and location. Returns -1, 0 or 1. Instants carrying
// different locations still compare by the civil day they display as.
func CompareDay(a, b time.Time) int {
	ak := a.Year()*10000 + int(a.Month())*100 + a.Day()
	bk := b.Year()*10000 + int(b.Month())*100 + b.Day()
	switch {
	case ak < bk:
		return -1
	case ak > bk:
		return 1
	}
	return 0
}

// StartOfWeek returns the Monday of the week containing t, truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	monday = StartOfWeek(t)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// MondayIndex returns the Monday-based weekday index of t (Monday=0 .. Sunday=6).
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfMonth returns the first day of t's month, truncated to midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month, truncated to midnight.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfYear returns January 1st of t's year, truncated to midnight.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return EndOfMonth(t).Day()
}

// AddMonthsClamped advances t by n calendar months, clamping the day of
// month to the last valid day when the target month is shorter. Callers
// advancing a series must always step from the original anchor so the
// phase day never degrades across short months.
func AddMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	day := t.Day()
	if max := DaysIn(target); day > max {
		day = max
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYearsClamped advances t by n calendar years, clamping Feb 29 to Feb 28
// in non-leap target years.
func AddYearsClamped(t time.Time, n int) time.Time {
	return AddMonthsClamped(t, n*12)
}
