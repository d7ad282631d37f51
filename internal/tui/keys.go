package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/layout"
	"github.com/JordanDim/planpal/internal/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModeSearch {
		return m.handleSearchKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Window navigation
	case "h", "left":
		m.anchor = view.Step(m.granularity, m.anchor, -1)
		m.selected = m.clampSelected(m.anchor)
	case "l", "right":
		m.anchor = view.Step(m.granularity, m.anchor, 1)
		m.selected = m.clampSelected(m.anchor)

	// Day cursor inside the month grid
	case "j", "down":
		switch m.granularity {
		case view.GranularityMonth:
			m.moveSelected(7)
		case view.GranularityYear:
			m.anchor = dateutil.AddMonthsClamped(m.anchor, 1)
		}
	case "k", "up":
		switch m.granularity {
		case view.GranularityMonth:
			m.moveSelected(-7)
		case view.GranularityYear:
			m.anchor = dateutil.AddMonthsClamped(m.anchor, -1)
		}
	case "J":
		if m.granularity == view.GranularityMonth {
			m.moveSelected(1)
		}
	case "K":
		if m.granularity == view.GranularityMonth {
			m.moveSelected(-1)
		}

	// Granularity switches
	case "d":
		m.granularity = view.GranularityDay
	case "w":
		m.granularity = view.GranularityWeek
	case "x":
		m.granularity = view.GranularityWorkWeek
	case "m":
		m.granularity = view.GranularityMonth
		m.selected = m.clampSelected(m.anchor)
	case "y":
		m.granularity = view.GranularityYear

	// Jump back to today
	case "t":
		m.anchor = dateutil.TruncateToDay(m.now)
		m.selected = m.anchor

	// Drill down from a coarser view
	case "enter":
		switch m.granularity {
		case view.GranularityMonth:
			m.granularity, m.anchor = view.SelectDay(m.selected)
		case view.GranularityYear:
			m.granularity = view.GranularityMonth
			m.selected = m.clampSelected(m.anchor)
		}

	case "r":
		cmd := m.reload()
		return m, cmd

	// Copy the shown day's events to the clipboard
	case "c":
		day := m.anchor
		if m.granularity == view.GranularityMonth {
			day = m.selected
		}
		occs, _ := layout.EventsOnDay(m.events, day, layout.ModeSpanning, m.viewOptions().Expand)
		if len(occs) == 0 {
			cmd := m.setStatus("No events to copy")
			return m, cmd
		}
		if err := clipboard.WriteAll(daySummaryText(day, occs)); err != nil {
			cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", err))
			return m, cmd
		}
		cmd := m.setStatus("Copied " + day.Format("Jan 2"))
		return m, cmd

	case "/":
		m.mode = ModeSearch
		m.search.SetValue(m.query)
		m.search.Focus()

	case "esc":
		if m.query != "" {
			m.query = ""
			cmd := m.reload()
			return m, cmd
		}
	}

	return m, nil
}

// handleSearchKeys handles keys while the search prompt is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.search.Blur()
		m.query = m.search.Value()
		cmd := m.reload()
		return m, cmd
	case "esc":
		m.mode = ModeNormal
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// moveSelected shifts the month-view cursor, keeping it inside the
// anchor's month. Crossing the month edge steps the window instead.
func (m *Model) moveSelected(days int) {
	next := m.selected.AddDate(0, 0, days)
	if next.Month() != dateutil.StartOfMonth(m.anchor).Month() {
		m.anchor = view.Step(view.GranularityMonth, m.anchor, sign(days))
	}
	m.selected = next
}

// clampSelected snaps the cursor into the anchor's month.
func (m Model) clampSelected(anchor time.Time) time.Time {
	first := dateutil.StartOfMonth(anchor)
	if m.selected.Before(first) || m.selected.After(dateutil.EndOfMonth(anchor)) {
		return first
	}
	return m.selected
}

// daySummaryText builds the plain-text day listing placed on the clipboard.
func daySummaryText(day time.Time, occs []event.Occurrence) string {
	var b strings.Builder
	b.WriteString(day.Format("Monday, January 2, 2006") + "\n")
	for _, o := range occs {
		fmt.Fprintf(&b, "%s-%s %s", o.Start.Format("15:04"), o.End.Format("15:04"), o.Title)
		if o.Location != "" {
			b.WriteString(" @ " + o.Location)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
