package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/view"
)

func TestViewRendersEachGranularity(t *testing.T) {
	m := New(nil, testConfig())
	m.width = 120
	m.height = 40
	m.loading = false
	m.now = time.Date(2025, 3, 12, 14, 30, 0, 0, time.Local)
	m.anchor = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	m.selected = m.anchor
	m.events = []*event.Event{
		testModelEvent(t, "Football", "2025-03-10"),
	}

	tests := []struct {
		name string
		g    view.Granularity
		want string
	}{
		{"day", view.GranularityDay, "Football"},
		{"week", view.GranularityWeek, "Football"},
		{"work-week", view.GranularityWorkWeek, "Football"},
		{"month", view.GranularityMonth, "March 2025"},
		{"year", view.GranularityYear, "January"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m.granularity = tc.g
			out := m.View()
			if out == "" {
				t.Fatal("empty render")
			}
			if !strings.Contains(out, tc.want) {
				t.Errorf("%s render missing %q:\n%s", tc.name, tc.want, out)
			}
		})
	}
}

func TestViewShowsHelpAndQuery(t *testing.T) {
	m := New(nil, testConfig())
	m.width = 100
	m.height = 30
	m.loading = false
	m.query = "ball"

	out := m.View()
	if !strings.Contains(out, "q: quit") {
		t.Error("render missing help line")
	}
	if !strings.Contains(out, `search: "ball"`) {
		t.Error("render missing active search filter")
	}
}
