// Package view derives date windows for each calendar granularity and
// computes the render-ready data for the day, week, month and year views.
package view

import (
	"errors"
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
)

// ErrInvalidGranularity rejects unknown granularity names at input boundaries.
var ErrInvalidGranularity = errors.New("granularity must be 'day', 'week', 'work-week', 'month' or 'year'")

// Granularity is the zoom level of the calendar.
type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityWeek
	GranularityWorkWeek
	GranularityMonth
	GranularityYear
)

func (g Granularity) String() string {
	switch g {
	case GranularityDay:
		return "day"
	case GranularityWeek:
		return "week"
	case GranularityWorkWeek:
		return "work-week"
	case GranularityMonth:
		return "month"
	case GranularityYear:
		return "year"
	default:
		return "unknown"
	}
}

// ParseGranularity maps a name onto a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day":
		return GranularityDay, nil
	case "week":
		return GranularityWeek, nil
	case "work-week", "workweek":
		return GranularityWorkWeek, nil
	case "month":
		return GranularityMonth, nil
	case "year":
		return GranularityYear, nil
	default:
		return 0, ErrInvalidGranularity
	}
}

// Window is an inclusive civil date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor computes the date window a granularity covers around anchor.
// The work-week window is the full Monday-based 7-day span: occurrences on
// the hidden weekend days still need bucketing so switching between week
// and work-week views stays consistent.
func WindowFor(g Granularity, anchor time.Time) Window {
	anchor = dateutil.TruncateToDay(anchor)
	switch g {
	case GranularityWeek, GranularityWorkWeek:
		monday, sunday := dateutil.WeekRange(anchor)
		return Window{Start: monday, End: sunday}
	case GranularityMonth:
		return Window{Start: dateutil.StartOfMonth(anchor), End: dateutil.EndOfMonth(anchor)}
	case GranularityYear:
		start := dateutil.StartOfYear(anchor)
		return Window{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		return Window{Start: anchor, End: anchor}
	}
}

// Step moves the anchor one granularity unit forward (direction > 0) or
// backward (direction < 0).
func Step(g Granularity, anchor time.Time, direction int) time.Time {
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	anchor = dateutil.TruncateToDay(anchor)
	switch g {
	case GranularityWeek, GranularityWorkWeek:
		return anchor.AddDate(0, 0, 7*direction)
	case GranularityMonth:
		return dateutil.AddMonthsClamped(anchor, direction)
	case GranularityYear:
		return anchor.AddDate(direction, 0, 0)
	default:
		return anchor.AddDate(0, 0, direction)
	}
}

// SelectDay is the cross-view transition: picking a day from a coarser view
// resets the anchor to that day and drops to day granularity.
func SelectDay(clicked time.Time) (Granularity, time.Time) {
	return GranularityDay, dateutil.TruncateToDay(clicked)
}

// LeadingBlanks returns how many empty cells precede the first day of
// anchor's month in a Monday-started grid.
func LeadingBlanks(anchor time.Time) int {
	return dateutil.MondayIndex(dateutil.StartOfMonth(anchor))
}
