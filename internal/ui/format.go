package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/layout"
	"github.com/JordanDim/planpal/internal/view"
)

// categoryTag returns the short colored tag for a category.
func categoryTag(c event.Category) string {
	switch c {
	case event.CategorySports:
		return formatCategory(c, "[S]")
	case event.CategoryCultureScience:
		return formatCategory(c, "[C]")
	case event.CategoryEntertainment:
		return formatCategory(c, "[E]")
	default:
		return formatCategory(c, "[O]")
	}
}

// categoryDot returns the colored grid indicator for a category.
func categoryDot(c event.Category) string {
	return formatCategory(c, "●")
}

// recurrenceSuffix describes an event's recurrence for list output, or ""
// for one-off events.
func recurrenceSuffix(r event.Recurrence) string {
	if r.None() {
		return ""
	}
	if r.Bounded() {
		return fmt.Sprintf("(%s until %s)", r.Freq, r.Until)
	}
	return fmt.Sprintf("(%s)", r.Freq)
}

// eventRow formats a single event for the list command.
func eventRow(e *event.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s-%s  %s  %s", e.StartTime, e.EndTime, categoryTag(e.Category), e.Title)
	if e.Location != "" {
		b.WriteString(formatMuted(" @ " + e.Location))
	}
	if suffix := recurrenceSuffix(e.Recurrence); suffix != "" {
		b.WriteString("  " + formatMuted(suffix))
	}
	if e.Public {
		b.WriteString("  " + formatMuted("[public]"))
	}
	return b.String()
}

// occurrenceSpan formats an occurrence's time range. Occurrences that end
// on a later day carry the end date so the span is unambiguous.
func occurrenceSpan(start, end time.Time) string {
	if dateutil.SameDay(start, end) || end.Equal(dateutil.NextMidnight(start)) {
		return fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s-%s %s", start.Format("15:04"), end.Format("Jan 2"), end.Format("15:04"))
}

// entryRow formats one positioned entry of a day or week column.
func entryRow(p layout.Positioned) string {
	span := occurrenceSpan(p.Start, p.End)
	row := fmt.Sprintf("  %s  %s  %s", span, categoryTag(p.Category), p.Title)
	if p.TotalColumns > 1 {
		row += "  " + formatMuted(fmt.Sprintf("(%d/%d)", p.Column+1, p.TotalColumns))
	}
	if p.IsPast {
		return formatMuted(row)
	}
	return row
}

// RenderDayView renders the single-day detail view.
func RenderDayView(v view.DayView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", formatHeader(v.Date.Format("Monday, January 2, 2006")))

	if v.NowMarker != nil {
		fmt.Fprintf(&b, "%s\n", formatNow(fmt.Sprintf("now ▸ %.1f units into the day", *v.NowMarker)))
	}

	if len(v.Entries) == 0 {
		b.WriteString("No events on this day.\n")
	}
	for _, p := range v.Entries {
		b.WriteString(entryRow(p) + "\n")
	}

	writeDiagnostics(&b, v.Diagnostics)
	return b.String()
}

// RenderWeekView renders the week (or work-week) view as a day-by-day list.
func RenderWeekView(v view.WeekView) string {
	var b strings.Builder
	last := v.Days[len(v.Days)-1].Date
	header := fmt.Sprintf("WEEK: %s - %s", v.Start.Format("Mon Jan 2"), last.Format("Mon Jan 2, 2006"))
	fmt.Fprintf(&b, "  %s\n", formatHeader(header))
	width := termWidth()
	if width > 60 {
		width = 60
	}
	b.WriteString(strings.Repeat("─", width) + "\n")

	for _, day := range v.Days {
		fmt.Fprintf(&b, "  %s\n", formatHeader(day.Date.Format("Mon Jan 2")))
		if len(day.Entries) == 0 {
			b.WriteString(formatMuted("    —") + "\n")
		}
		for _, p := range day.Entries {
			b.WriteString("  " + entryRow(p) + "\n")
		}
	}

	writeDiagnostics(&b, v.Diagnostics)
	return b.String()
}

// RenderMonthView renders the month grid with one indicator dot per day
// that has events.
func RenderMonthView(v view.MonthView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "      %s\n", formatHeader(v.Anchor.Format("January 2006")))
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")

	col := v.LeadingBlanks
	b.WriteString(strings.Repeat("    ", col))
	for _, day := range v.Days {
		marker := " "
		if len(day.Categories) > 0 {
			marker = categoryDot(day.Categories[0])
		}
		fmt.Fprintf(&b, "%3d%s", day.Date.Day(), marker)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	writeDiagnostics(&b, v.Diagnostics)
	return b.String()
}

// RenderYearView renders the twelve-month overview, one line per month.
func RenderYearView(v view.YearView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", formatHeader(fmt.Sprintf("YEAR %d", v.Year)))

	for _, m := range v.Months {
		busy := 0
		for _, has := range m.HasEvents {
			if has {
				busy++
			}
		}
		line := fmt.Sprintf("  %-10s %s", m.Month.Format("January"), strings.Repeat("▪", busy))
		if busy > 0 {
			line += formatMuted(fmt.Sprintf(" %d day(s)", busy))
		}
		b.WriteString(line + "\n")
	}

	writeDiagnostics(&b, v.Diagnostics)
	return b.String()
}

// writeDiagnostics appends a muted note about events skipped for bad data.
func writeDiagnostics(b *strings.Builder, diags []layout.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", formatMuted(fmt.Sprintf("  %d event(s) skipped because of malformed data", len(diags))))
}
