package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JordanDim/planpal/internal/config"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/tui/commands"
	"github.com/JordanDim/planpal/internal/view"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.User.Handle = "frosti"
	cfg.Calendar.DefaultView = "week"
	return cfg
}

func testModelEvent(t *testing.T, title, date string) *event.Event {
	t.Helper()
	e, err := event.New(title, "sports", "frosti", date, "18:00", "", "19:00", event.Recurrence{})
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	return e
}

func TestNewModelDefaults(t *testing.T) {
	m := New(nil, testConfig())

	if m.granularity != view.GranularityWeek {
		t.Errorf("granularity = %v, want week", m.granularity)
	}
	if !m.loading {
		t.Error("model should start in loading state")
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
}

func TestEventsLoadedAppliesLatestGeneration(t *testing.T) {
	m := New(nil, testConfig())
	m.gen = 2

	fresh := []*event.Event{testModelEvent(t, "Fresh", "2025-03-10")}
	updated, _ := m.Update(commands.EventsLoadedMsg{Events: fresh, Gen: 2})
	model := updated.(Model)

	if model.loading {
		t.Error("loading should clear after the matching generation arrives")
	}
	if len(model.events) != 1 || model.events[0].Title != "Fresh" {
		t.Errorf("events = %v, want the fresh load", model.events)
	}
}

func TestEventsLoadedDropsStaleGeneration(t *testing.T) {
	m := New(nil, testConfig())
	m.gen = 3
	m.events = []*event.Event{testModelEvent(t, "Current", "2025-03-10")}

	stale := []*event.Event{testModelEvent(t, "Stale", "2025-01-01")}
	updated, _ := m.Update(commands.EventsLoadedMsg{Events: stale, Gen: 2})
	model := updated.(Model)

	if !model.loading {
		t.Error("a stale response must not clear the loading state")
	}
	if model.events[0].Title != "Current" {
		t.Errorf("stale response overwrote events: got %q", model.events[0].Title)
	}
}

func TestErrorAppliesLatestGeneration(t *testing.T) {
	m := New(nil, testConfig())
	m.gen = 2

	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("db closed"), Gen: 2})
	model := updated.(Model)

	if model.err == nil {
		t.Error("matching-generation error should flip the error state")
	}
	if model.loading {
		t.Error("loading should clear when the matching generation fails")
	}
}

func TestErrorDropsStaleGeneration(t *testing.T) {
	m := New(nil, testConfig())
	m.gen = 3
	m.loading = false

	updated, _ := m.Update(commands.ErrMsg{Err: errors.New("db closed"), Gen: 2})
	model := updated.(Model)

	if model.err != nil {
		t.Error("a stale failure must not flip the view into the error state")
	}
	if model.statusMsg != "" {
		t.Errorf("a stale failure must not surface a status message, got %q", model.statusMsg)
	}
}

func TestTickAdvancesNow(t *testing.T) {
	m := New(nil, testConfig())
	later := m.now.Add(time.Minute)

	updated, cmd := m.Update(commands.TickMsg{Now: later})
	model := updated.(Model)

	if !model.now.Equal(later) {
		t.Errorf("now = %v, want %v", model.now, later)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestGranularityKeys(t *testing.T) {
	tests := []struct {
		key  string
		want view.Granularity
	}{
		{"d", view.GranularityDay},
		{"w", view.GranularityWeek},
		{"x", view.GranularityWorkWeek},
		{"m", view.GranularityMonth},
		{"y", view.GranularityYear},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			m := New(nil, testConfig())
			updated, _ := m.Update(key(tc.key))
			model := updated.(Model)
			if model.granularity != tc.want {
				t.Errorf("after %q granularity = %v, want %v", tc.key, model.granularity, tc.want)
			}
		})
	}
}

func TestWindowNavigationKeys(t *testing.T) {
	m := New(nil, testConfig())
	m.granularity = view.GranularityWeek
	start := m.anchor

	updated, _ := m.Update(key("l"))
	model := updated.(Model)
	if got := model.anchor; !got.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("after l anchor = %v, want one week later", got)
	}

	updated, _ = model.Update(key("h"))
	model = updated.(Model)
	if !model.anchor.Equal(start) {
		t.Errorf("after h anchor = %v, want %v", model.anchor, start)
	}
}

func TestEnterDrillsDownFromMonth(t *testing.T) {
	m := New(nil, testConfig())
	m.granularity = view.GranularityMonth
	m.selected = time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)

	updated, _ := m.Update(key("enter"))
	model := updated.(Model)

	if model.granularity != view.GranularityDay {
		t.Errorf("granularity = %v, want day", model.granularity)
	}
	if !model.anchor.Equal(m.selected) {
		t.Errorf("anchor = %v, want selected day %v", model.anchor, m.selected)
	}
}

func TestDaySummaryText(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	occs := []event.Occurrence{
		{Title: "Football", Location: "Laugardalur", Start: day.Add(18 * time.Hour), End: day.Add(19 * time.Hour)},
		{Title: "Dinner", Start: day.Add(20 * time.Hour), End: day.Add(22 * time.Hour)},
	}

	got := daySummaryText(day, occs)
	want := "Monday, March 10, 2025\n18:00-19:00 Football @ Laugardalur\n20:00-22:00 Dinner\n"
	if got != want {
		t.Errorf("daySummaryText = %q, want %q", got, want)
	}
}

func TestSearchRoundTrip(t *testing.T) {
	m := New(nil, testConfig())

	updated, _ := m.Update(key("/"))
	model := updated.(Model)
	if model.mode != ModeSearch {
		t.Fatalf("mode = %v, want ModeSearch", model.mode)
	}

	// Escape leaves search mode without applying a filter.
	updated, _ = model.Update(key("esc"))
	model = updated.(Model)
	if model.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", model.mode)
	}
	if model.query != "" {
		t.Errorf("query = %q, want empty", model.query)
	}
}
