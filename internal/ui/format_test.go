package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/view"
)

func init() {
	// Render plain strings so assertions do not depend on ANSI escapes.
	DisableColor()
}

func TestRecurrenceSuffix(t *testing.T) {
	tests := []struct {
		name string
		rec  event.Recurrence
		want string
	}{
		{"one-off", event.Recurrence{}, ""},
		{"bounded weekly", event.Recurrence{Freq: event.FreqWeekly, Until: "2025-06-30"}, "(weekly until 2025-06-30)"},
		{"indefinite monthly", event.Recurrence{Freq: event.FreqMonthly, Indefinite: true}, "(monthly)"},
		{"open yearly", event.Recurrence{Freq: event.FreqYearly}, "(yearly)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := recurrenceSuffix(tc.rec)
			if got != tc.want {
				t.Errorf("recurrenceSuffix(%+v) = %q, want %q", tc.rec, got, tc.want)
			}
		})
	}
}

func TestOccurrenceSpan(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"same day", day.Add(18 * time.Hour), day.Add(19*time.Hour + 30*time.Minute), "18:00-19:30"},
		{"ends at midnight", day.Add(22 * time.Hour), day.Add(24 * time.Hour), "22:00-00:00"},
		{"spans midnight", day.Add(22 * time.Hour), day.Add(26 * time.Hour), "22:00-Mar 11 02:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := occurrenceSpan(tc.start, tc.end)
			if got != tc.want {
				t.Errorf("occurrenceSpan = %q, want %q", got, tc.want)
			}
		})
	}
}

func viewEvent(t *testing.T, title, startDate, startTime, endTime string, rec event.Recurrence) *event.Event {
	t.Helper()
	e, err := event.New(title, "sports", "frosti", startDate, startTime, "", endTime, rec)
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	return e
}

func TestRenderDayView(t *testing.T) {
	events := []*event.Event{
		viewEvent(t, "Football", "2025-03-10", "18:00", "19:30", event.Recurrence{}),
		viewEvent(t, "Lecture", "2025-03-10", "18:30", "20:00", event.Recurrence{}),
	}
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	out := RenderDayView(view.ComputeDayView(events, day, now, view.Options{}))

	if !strings.Contains(out, "Monday, March 10, 2025") {
		t.Error("output missing day header")
	}
	if !strings.Contains(out, "Football") || !strings.Contains(out, "Lecture") {
		t.Error("output missing event titles")
	}
	// Both events overlap, so each row names its column.
	if !strings.Contains(out, "(1/2)") || !strings.Contains(out, "(2/2)") {
		t.Errorf("overlapping events should show columns, got:\n%s", out)
	}
	if strings.Contains(out, "now ▸") {
		t.Error("now marker should only show on the current day")
	}
}

func TestRenderDayViewEmpty(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	out := RenderDayView(view.ComputeDayView(nil, day, day, view.Options{}))

	if !strings.Contains(out, "No events on this day.") {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}

func TestRenderWeekView(t *testing.T) {
	events := []*event.Event{
		viewEvent(t, "Standup", "2025-03-10", "09:00", "09:15",
			event.Recurrence{Freq: event.FreqWeekly, Indefinite: true}),
	}
	anchor := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	out := RenderWeekView(view.ComputeWeekView(events, anchor, now, false, view.Options{}))

	if !strings.Contains(out, "WEEK: Mon Mar 10 - Sun Mar 16, 2025") {
		t.Errorf("output missing week header, got:\n%s", out)
	}
	if !strings.Contains(out, "Standup") {
		t.Error("output missing event title")
	}

	// Work-week rendering stops at Friday.
	work := RenderWeekView(view.ComputeWeekView(events, anchor, now, true, view.Options{}))
	if !strings.Contains(work, "WEEK: Mon Mar 10 - Fri Mar 14, 2025") {
		t.Errorf("work week header should end on Friday, got:\n%s", work)
	}
}

func TestRenderMonthView(t *testing.T) {
	events := []*event.Event{
		viewEvent(t, "Football", "2025-01-15", "18:00", "19:30", event.Recurrence{}),
	}
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	out := RenderMonthView(view.ComputeMonthView(events, anchor, view.Options{}))

	if !strings.Contains(out, "January 2025") {
		t.Error("output missing month header")
	}
	if !strings.Contains(out, " Mo  Tu  We  Th  Fr  Sa  Su") {
		t.Error("output missing weekday header")
	}
	if !strings.Contains(out, "15●") {
		t.Errorf("day with events should carry an indicator, got:\n%s", out)
	}
}

func TestRenderYearView(t *testing.T) {
	events := []*event.Event{
		viewEvent(t, "Football", "2025-01-15", "18:00", "19:30", event.Recurrence{}),
		viewEvent(t, "Concert", "2025-06-01", "20:00", "22:00", event.Recurrence{}),
	}
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	out := RenderYearView(view.ComputeYearView(events, anchor, view.Options{}))

	if !strings.Contains(out, "YEAR 2025") {
		t.Error("output missing year header")
	}
	if !strings.Contains(out, "January    ▪") {
		t.Errorf("January should show one busy day, got:\n%s", out)
	}
	if !strings.Contains(out, "February") {
		t.Error("every month should be listed")
	}
}
