// Package layout computes the per-day geometry of calendar occurrences:
// which occurrences belong to a day, how overlapping occurrences share
// columns, and where each occurrence sits on the vertical hour axis.
// Everything here is a pure function of its inputs.
package layout

import (
	"errors"
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/recur"
)

// Mode selects how events are matched to a day.
type Mode int

const (
	// ModeSpanning selects every occurrence whose interval touches the
	// day, including multi-day occurrences that start earlier or end
	// later. Used by the day and week grids.
	ModeSpanning Mode = iota

	// ModeExactDay selects only occurrences that start on the day. Used
	// by the compact month and year indicators.
	ModeExactDay
)

// Diagnostic reports an event excluded or truncated during bucketing.
// One bad event never blanks a view; it is skipped and surfaced here.
type Diagnostic struct {
	EventID string
	Err     error
}

// EventsOnDay selects, from raw events plus expanded recurring occurrences,
// those matching day under the given mode.
//
// The returned order is non-recurring events in input order followed by
// recurring occurrences in input order. Callers re-sort as needed; only
// the stability of this order matters, as the packer's tie-break.
func EventsOnDay(events []*event.Event, day time.Time, mode Mode, opts recur.Options) ([]event.Occurrence, []Diagnostic) {
	day = dateutil.TruncateToDay(day)

	var out []event.Occurrence
	var diags []Diagnostic

	for _, e := range events {
		if e.Recurring() {
			continue
		}
		start, end, err := e.Interval()
		if err != nil || end.Before(start) {
			diags = append(diags, Diagnostic{EventID: e.ID, Err: intervalErr(err)})
			continue
		}
		if matchesDay(start, end, day, mode) {
			out = append(out, event.FromEvent(e, start, end))
		}
	}

	for _, e := range events {
		if !e.Recurring() {
			continue
		}
		occs, err := recur.Expand(e, day, day, opts)
		if err != nil {
			// A capped expansion still yields usable occurrences; anything
			// else means the event itself is malformed.
			diags = append(diags, Diagnostic{EventID: e.ID, Err: err})
			if !errors.Is(err, recur.ErrIterationCap) {
				continue
			}
		}
		for _, o := range occs {
			if matchesDay(o.Start, o.End, day, mode) {
				out = append(out, o)
			}
		}
	}

	return out, diags
}

// matchesDay compares civil day components so a day anchor carrying a
// different location than the parsed event instants still matches.
func matchesDay(start, end, day time.Time, mode Mode) bool {
	if mode == ModeExactDay {
		return dateutil.SameDay(start, day)
	}
	return dateutil.CompareDay(end, day) >= 0 && dateutil.CompareDay(start, day) <= 0
}

func intervalErr(err error) error {
	if err != nil {
		return err
	}
	return event.ErrEndBeforeStart
}
