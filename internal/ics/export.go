// Package ics serializes events to the iCalendar format for sharing
// with other calendar applications.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
)

const prodID = "-//planpal//calendar//EN"

// Export serializes the given events into a single iCalendar document.
// Events with malformed dates are skipped and reported back so callers
// can surface them without aborting the export.
func Export(events []*event.Event, now time.Time) (string, []error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	var skipped []error
	for _, e := range events {
		if err := addEvent(cal, e, now); err != nil {
			skipped = append(skipped, fmt.Errorf("event %s: %w", e.ID, err))
		}
	}

	return cal.Serialize(), skipped
}

func addEvent(cal *ical.Calendar, e *event.Event, now time.Time) error {
	start, end, err := e.Interval()
	if err != nil {
		return err
	}

	ve := cal.AddEvent(e.ID)
	ve.SetDtStampTime(now.UTC())
	ve.SetCreatedTime(e.CreatedAt.UTC())
	ve.SetStartAt(start.UTC())
	ve.SetEndAt(end.UTC())
	ve.SetSummary(e.Title)
	if e.Description != "" {
		ve.SetDescription(e.Description)
	}
	if e.Location != "" {
		ve.SetLocation(e.Location)
	}
	ve.SetProperty(ical.ComponentPropertyCategories, e.Category.Label())
	if e.Creator != "" {
		ve.SetOrganizer(e.Creator)
	}

	if rule, err := rrule(e.Recurrence); err != nil {
		return err
	} else if rule != "" {
		ve.AddRrule(rule)
	}

	return nil
}

// rrule renders a recurrence as an RRULE value, or "" for one-off events.
// Only a bounded series gets an UNTIL; indefinite and open series emit the
// bare frequency.
func rrule(r event.Recurrence) (string, error) {
	if r.None() {
		return "", nil
	}

	var freq string
	switch r.Freq {
	case event.FreqWeekly:
		freq = "WEEKLY"
	case event.FreqMonthly:
		freq = "MONTHLY"
	case event.FreqYearly:
		freq = "YEARLY"
	default:
		return "", fmt.Errorf("%w: %q", event.ErrInvalidFrequency, r.Freq)
	}

	parts := []string{"FREQ=" + freq}
	if r.Bounded() {
		until, err := dateutil.ParseDate(r.Until)
		if err != nil {
			return "", err
		}
		// UNTIL bounds the last day inclusively, so push it to the end
		// of that day before converting to UTC.
		last := dateutil.NextMidnight(until).Add(-time.Second)
		parts = append(parts, "UNTIL="+last.UTC().Format("20060102T150405Z"))
	}

	return strings.Join(parts, ";"), nil
}
