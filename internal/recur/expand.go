// Package recur materializes concrete occurrences of recurring events
// within a bounded date window.
package recur

import (
	"errors"
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
)

// ErrIterationCap signals that expansion stopped early because the
// defensive iteration limit was reached. The occurrences produced up to
// that point are still returned.
var ErrIterationCap = errors.New("recurrence expansion hit iteration cap")

// defaultMaxIterations bounds the number of steps taken for a single
// series. Termination is always guaranteed by the window/final-date bound;
// the cap only defends against windows large enough to make full iteration
// pathological.
const defaultMaxIterations = 1000

// OverflowPolicy decides what happens when a monthly or yearly step lands
// on a day of month that does not exist in the target month (e.g. the 31st).
type OverflowPolicy int

const (
	// OverflowClamp moves the occurrence to the last valid day of the
	// target month. A series anchored on Jan 31 lands on Feb 28, then back
	// on Mar 31.
	OverflowClamp OverflowPolicy = iota

	// OverflowSkip drops the occurrence for months that lack the anchor
	// day entirely. A series anchored on Jan 31 has no February occurrence.
	OverflowSkip
)

// Options configures expansion. The zero value uses OverflowClamp and the
// default iteration cap.
type Options struct {
	Overflow      OverflowPolicy
	MaxIterations int
}

func (o Options) maxIterations() int {
	if o.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return o.MaxIterations
}

// Expand produces every occurrence of e whose day span intersects
// [windowStart, windowEnd] (both inclusive, civil days).
//
// A non-recurring event yields itself if it intersects the window.
// A recurring event is stepped from its own start instant (7 days, 1 month
// or 1 year per step, preserving time of day and duration) until the
// occurrence's start day exceeds the final date or the window end,
// whichever comes first; the final date bound is skipped for indefinite
// series. Every step is computed from the original anchor so the series'
// phase (day of week / month / year) is never lost to clamping.
//
// Occurrences that fall before the window are skipped but still advance
// the iteration. A malformed event surfaces its parse error; an expansion
// that hits the iteration cap returns the partial result together with
// ErrIterationCap.
func Expand(e *event.Event, windowStart, windowEnd time.Time, opts Options) ([]event.Occurrence, error) {
	start, end, err := e.Interval()
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, event.ErrEndBeforeStart
	}

	windowStart = dateutil.TruncateToDay(windowStart)
	windowEnd = dateutil.TruncateToDay(windowEnd)

	if e.Recurrence.None() {
		if intersectsWindow(start, end, windowStart, windowEnd) {
			return []event.Occurrence{event.FromEvent(e, start, end)}, nil
		}
		return nil, nil
	}

	bound := windowEnd
	if e.Recurrence.Bounded() {
		final, err := dateutil.ParseDate(e.Recurrence.Until)
		if err != nil {
			return nil, err
		}
		if final.Before(bound) {
			bound = final
		}
	}

	duration := end.Sub(start)
	var out []event.Occurrence

	for k := 0; ; k++ {
		if k >= opts.maxIterations() {
			return out, ErrIterationCap
		}

		occStart, ok := step(start, e.Recurrence.Freq, k, opts.Overflow)
		if !ok {
			continue // skipped by OverflowSkip; later months may still fit
		}
		if dateutil.CompareDay(occStart, bound) > 0 {
			return out, nil
		}

		occEnd := occStart.Add(duration)
		if intersectsWindow(occStart, occEnd, windowStart, windowEnd) {
			out = append(out, event.FromEvent(e, occStart, occEnd))
		}
	}
}

// step returns the k-th occurrence start of a series anchored at start.
// The bool result is false when the overflow policy drops this step.
func step(start time.Time, freq event.Frequency, k int, policy OverflowPolicy) (time.Time, bool) {
	if k == 0 {
		return start, true
	}
	switch freq {
	case event.FreqWeekly:
		return start.AddDate(0, 0, 7*k), true
	case event.FreqMonthly:
		stepped := dateutil.AddMonthsClamped(start, k)
		if policy == OverflowSkip && stepped.Day() != start.Day() {
			return time.Time{}, false
		}
		return stepped, true
	case event.FreqYearly:
		stepped := dateutil.AddYearsClamped(start, k)
		if policy == OverflowSkip && stepped.Day() != start.Day() {
			return time.Time{}, false
		}
		return stepped, true
	default:
		return start, true
	}
}

// intersectsWindow reports whether the occurrence's day span touches the
// inclusive civil-day window. The end instant is taken day-inclusive, so a
// multi-day occurrence ending at 00:30 inside the window still counts.
// Civil day comparison keeps the check independent of the locations the
// window and occurrence instants were built in.
func intersectsWindow(start, end, windowStart, windowEnd time.Time) bool {
	return dateutil.CompareDay(end, windowStart) >= 0 && dateutil.CompareDay(start, windowEnd) <= 0
}
