package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/layout"
	"github.com/JordanDim/planpal/internal/view"
)

const minColWidth = 14

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.granularity {
	case view.GranularityDay:
		body = m.renderDay()
	case view.GranularityMonth:
		body = m.renderMonth()
	case view.GranularityYear:
		body = m.renderYear()
	default:
		body = m.renderWeek()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	var title string
	switch m.granularity {
	case view.GranularityDay:
		title = m.anchor.Format("Monday, January 2, 2006")
	case view.GranularityMonth:
		title = m.anchor.Format("January 2006")
	case view.GranularityYear:
		title = m.anchor.Format("2006")
	default:
		monday, sunday := dateutil.WeekRange(m.anchor)
		title = fmt.Sprintf("%s - %s", monday.Format("Jan 2"), sunday.Format("Jan 2, 2006"))
	}

	line := m.styles.TitleStyle.Render("planpal") + "  " +
		m.styles.DayHeaderStyle.Render(title) + "  " +
		m.styles.MutedStyle.Render("["+m.granularity.String()+"]")
	if m.query != "" {
		line += "  " + m.styles.StatusStyle.Render(fmt.Sprintf("search: %q", m.query))
	}
	if m.loading {
		line += "  " + m.styles.MutedStyle.Render("loading…")
	}
	return line + "\n"
}

func (m Model) renderFooter() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.mode == ModeSearch {
		b.WriteString(m.styles.PromptStyle.Render("/"+m.search.View()) + "\n")
	}
	if m.statusMsg != "" {
		b.WriteString(m.styles.ErrorStyle.Render(m.statusMsg) + "\n")
	}

	help := "h/l: prev/next  d/w/x/m/y: view  t: today  enter: open  c: copy  /: search  r: reload  q: quit"
	b.WriteString(m.styles.HelpStyle.Render(help))
	return b.String()
}

// entryLine renders one positioned entry for the day and week bodies.
func (m Model) entryLine(p layout.Positioned, width int) string {
	text := fmt.Sprintf("%s %s", p.Start.Format("15:04"), p.Title)
	if p.TotalColumns > 1 {
		text += fmt.Sprintf(" (%d/%d)", p.Column+1, p.TotalColumns)
	}
	text = truncate(text, width)
	if p.IsPast {
		return m.styles.PastStyle.Render(text)
	}
	return m.styles.Category(p.Category).Render(text)
}

func (m Model) renderDay() string {
	v := view.ComputeDayView(m.events, m.anchor, m.now, m.viewOptions())

	var b strings.Builder
	markerDone := v.NowMarker == nil
	for _, p := range v.Entries {
		if !markerDone && p.Start.After(m.now) {
			b.WriteString(m.nowLine() + "\n")
			markerDone = true
		}
		span := fmt.Sprintf("%s-%s  %s", p.Start.Format("15:04"), p.End.Format("15:04"), p.Title)
		if p.TotalColumns > 1 {
			span += fmt.Sprintf("  (%d/%d)", p.Column+1, p.TotalColumns)
		}
		if p.IsPast {
			b.WriteString(m.styles.PastStyle.Render("  "+span) + "\n")
		} else {
			b.WriteString(m.styles.Category(p.Category).Render("  "+span) + "\n")
		}
	}
	if !markerDone {
		b.WriteString(m.nowLine() + "\n")
	}
	if len(v.Entries) == 0 {
		b.WriteString(m.styles.MutedStyle.Render("  no events") + "\n")
	}
	m.writeDiagnostics(&b, len(v.Diagnostics))
	return b.String()
}

func (m Model) nowLine() string {
	return m.styles.NowStyle.Render(fmt.Sprintf("  ── now %s ──", m.now.Format("15:04")))
}

func (m Model) renderWeek() string {
	restrict := m.granularity == view.GranularityWorkWeek
	v := view.ComputeWeekView(m.events, m.anchor, m.now, restrict, m.viewOptions())

	colWidth := (m.width - 1) / len(v.Days)
	if colWidth < minColWidth {
		colWidth = minColWidth
	}

	cols := make([]string, 0, len(v.Days))
	for _, day := range v.Days {
		header := day.Date.Format("Mon 2")
		if dateutil.SameDay(day.Date, m.now) {
			header = m.styles.TodayStyle.Render(header)
		} else {
			header = m.styles.DayHeaderStyle.Render(header)
		}

		lines := []string{header}
		if day.NowMarker != nil {
			lines = append(lines, m.styles.NowStyle.Render(truncate("─ "+m.now.Format("15:04"), colWidth-1)))
		}
		for _, p := range day.Entries {
			lines = append(lines, m.entryLine(p, colWidth-1))
		}
		if len(day.Entries) == 0 {
			lines = append(lines, m.styles.MutedStyle.Render("·"))
		}

		col := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n"))
		cols = append(cols, col)
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")
	m.writeDiagnostics(&b, len(v.Diagnostics))
	return b.String()
}

func (m Model) renderMonth() string {
	v := view.ComputeMonthView(m.events, m.anchor, m.viewOptions())

	var b strings.Builder
	b.WriteString(m.styles.MutedStyle.Render(" Mo   Tu   We   Th   Fr   Sa   Su") + "\n")

	col := v.LeadingBlanks
	b.WriteString(strings.Repeat("     ", col))
	for _, day := range v.Days {
		cell := fmt.Sprintf("%3d", day.Date.Day())
		switch {
		case dateutil.SameDay(day.Date, m.selected):
			cell = m.styles.SelectedStyle.Render(cell)
		case dateutil.SameDay(day.Date, m.now):
			cell = m.styles.TodayStyle.Render(cell)
		}

		marker := " "
		if len(day.Categories) > 0 {
			marker = m.styles.Category(day.Categories[0]).Render("●")
		}
		b.WriteString(cell + marker + " ")

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.selectedDaySummary())
	m.writeDiagnostics(&b, len(v.Diagnostics))
	return b.String()
}

// selectedDaySummary lists the events on the cursor day below the grid.
func (m Model) selectedDaySummary() string {
	occs, _ := layout.EventsOnDay(m.events, m.selected, layout.ModeExactDay, m.viewOptions().Expand)
	if len(occs) == 0 {
		return m.styles.MutedStyle.Render(m.selected.Format("Jan 2") + ": no events") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.DayHeaderStyle.Render(m.selected.Format("Jan 2")) + "\n")
	for _, o := range occs {
		line := fmt.Sprintf("  %s %s", o.Start.Format("15:04"), o.Title)
		b.WriteString(m.styles.Category(o.Category).Render(line) + "\n")
	}
	return b.String()
}

func (m Model) renderYear() string {
	v := view.ComputeYearView(m.events, m.anchor, m.viewOptions())

	var b strings.Builder
	for _, ym := range v.Months {
		busy := 0
		for _, has := range ym.HasEvents {
			if has {
				busy++
			}
		}

		name := ym.Month.Format("January")
		if ym.Month.Month() == m.anchor.Month() {
			name = m.styles.SelectedStyle.Render(fmt.Sprintf("%-10s", name))
		} else {
			name = m.styles.DayHeaderStyle.Render(fmt.Sprintf("%-10s", name))
		}

		line := " " + name + " " + m.styles.StatusStyle.Render(strings.Repeat("▪", busy))
		if busy > 0 {
			line += m.styles.MutedStyle.Render(fmt.Sprintf(" %d", busy))
		}
		b.WriteString(line + "\n")
	}
	m.writeDiagnostics(&b, len(v.Diagnostics))
	return b.String()
}

func (m Model) writeDiagnostics(b *strings.Builder, n int) {
	if n == 0 {
		return
	}
	b.WriteString(m.styles.MutedStyle.Render(fmt.Sprintf("  %d event(s) skipped (malformed data)", n)) + "\n")
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
