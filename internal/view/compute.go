package view

import (
	"fmt"
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/layout"
	"github.com/JordanDim/planpal/internal/recur"
)

// Options carries the layout configuration shared by all compute functions.
// The zero value uses the default units-per-hour and expansion settings.
type Options struct {
	UnitsPerHour float64
	Expand       recur.Options
}

func (o Options) unitsPerHour() float64 {
	if o.UnitsPerHour <= 0 {
		return layout.DefaultUnitsPerHour
	}
	return o.UnitsPerHour
}

// HourLabels returns the 24 hour-axis labels shared by the day and week grids.
func HourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = fmt.Sprintf("%02d:00", h)
	}
	return labels
}

// DayView is the computed single-day detail view. Entries are packed with
// the cluster policy. NowMarker is nil unless the displayed day is today.
type DayView struct {
	Date        time.Time
	HourLabels  []string
	Entries     []layout.Positioned
	NowMarker   *float64
	Diagnostics []layout.Diagnostic
}

// ComputeDayView lays out one day of events. It is a pure function: the
// same events, day and now always produce the same view.
func ComputeDayView(events []*event.Event, day, now time.Time, opts Options) DayView {
	occs, diags := layout.EventsOnDay(events, day, layout.ModeSpanning, opts.Expand)
	entries := layout.ClusterPolicy{}.Pack(occs)

	v := DayView{
		Date:        dateutil.TruncateToDay(day),
		HourLabels:  HourLabels(),
		Entries:     layout.PositionEntries(entries, day, now, opts.unitsPerHour()),
		Diagnostics: diags,
	}
	if dateutil.SameDay(day, now) {
		offset := layout.NowOffset(now, opts.unitsPerHour())
		v.NowMarker = &offset
	}
	return v
}

// DayColumn is one rendered day inside the week view.
type DayColumn struct {
	Date      time.Time
	Entries   []layout.Positioned
	NowMarker *float64
}

// WeekView is the computed week (or work-week) view. Entries are packed
// per day with the greedy column policy.
type WeekView struct {
	Start       time.Time // Monday
	Days        []DayColumn
	HourLabels  []string
	Diagnostics []layout.Diagnostic
}

// ComputeWeekView lays out the Monday-based week containing anchor. When
// restrictToWorkdays is set only Monday through Friday are rendered; the
// underlying window stays the full week.
func ComputeWeekView(events []*event.Event, anchor, now time.Time, restrictToWorkdays bool, opts Options) WeekView {
	monday := dateutil.StartOfWeek(anchor)
	renderedDays := 7
	if restrictToWorkdays {
		renderedDays = 5
	}

	v := WeekView{
		Start:      monday,
		Days:       make([]DayColumn, 0, renderedDays),
		HourLabels: HourLabels(),
	}

	seen := make(map[string]bool)
	for i := 0; i < renderedDays; i++ {
		day := monday.AddDate(0, 0, i)
		occs, diags := layout.EventsOnDay(events, day, layout.ModeSpanning, opts.Expand)
		for _, d := range diags {
			if !seen[d.EventID] {
				seen[d.EventID] = true
				v.Diagnostics = append(v.Diagnostics, d)
			}
		}

		entries := layout.GreedyPolicy{}.Pack(occs)
		col := DayColumn{
			Date:    day,
			Entries: layout.PositionEntries(entries, day, now, opts.unitsPerHour()),
		}
		if dateutil.SameDay(day, now) {
			offset := layout.NowOffset(now, opts.unitsPerHour())
			col.NowMarker = &offset
		}
		v.Days = append(v.Days, col)
	}
	return v
}

// MonthDay is one cell of the month grid: the date plus one category
// indicator per occurrence starting that day.
type MonthDay struct {
	Date       time.Time
	Categories []event.Category
}

// MonthView is the computed month grid. LeadingBlanks empty cells precede
// Days in a Monday-started layout.
type MonthView struct {
	Anchor        time.Time // first of the month
	LeadingBlanks int
	Days          []MonthDay
	Diagnostics   []layout.Diagnostic
}

// ComputeMonthView builds the month grid for the month containing anchor,
// using exact-day bucketing for the per-day indicators.
func ComputeMonthView(events []*event.Event, anchor time.Time, opts Options) MonthView {
	first := dateutil.StartOfMonth(anchor)
	v := MonthView{
		Anchor:        first,
		LeadingBlanks: LeadingBlanks(anchor),
		Days:          make([]MonthDay, 0, dateutil.DaysIn(first)),
	}

	seen := make(map[string]bool)
	for d := 0; d < dateutil.DaysIn(first); d++ {
		day := first.AddDate(0, 0, d)
		occs, diags := layout.EventsOnDay(events, day, layout.ModeExactDay, opts.Expand)
		for _, diag := range diags {
			if !seen[diag.EventID] {
				seen[diag.EventID] = true
				v.Diagnostics = append(v.Diagnostics, diag)
			}
		}

		md := MonthDay{Date: day}
		for _, o := range occs {
			md.Categories = append(md.Categories, o.Category)
		}
		v.Days = append(v.Days, md)
	}
	return v
}

// YearMonth is one month of the year view: a Monday-started grid of
// has-events flags, one per day.
type YearMonth struct {
	Month         time.Time // first of the month
	LeadingBlanks int
	HasEvents     []bool
}

// YearView is the computed twelve-month overview.
type YearView struct {
	Year        int
	Months      [12]YearMonth
	Diagnostics []layout.Diagnostic
}

// ComputeYearView builds the year overview for the year containing anchor
// by iterating its twelve month sub-windows.
func ComputeYearView(events []*event.Event, anchor time.Time, opts Options) YearView {
	start := dateutil.StartOfYear(anchor)
	v := YearView{Year: start.Year()}

	seen := make(map[string]bool)
	for m := 0; m < 12; m++ {
		first := start.AddDate(0, m, 0)
		ym := YearMonth{
			Month:         first,
			LeadingBlanks: LeadingBlanks(first),
			HasEvents:     make([]bool, dateutil.DaysIn(first)),
		}
		for d := range ym.HasEvents {
			day := first.AddDate(0, 0, d)
			occs, diags := layout.EventsOnDay(events, day, layout.ModeExactDay, opts.Expand)
			for _, diag := range diags {
				if !seen[diag.EventID] {
					seen[diag.EventID] = true
					v.Diagnostics = append(v.Diagnostics, diag)
				}
			}
			ym.HasEvents[d] = len(occs) > 0
		}
		v.Months[m] = ym
	}
	return v
}
