package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JordanDim/planpal/internal/event"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme name.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	colorSports        lipgloss.Color
	colorCulture       lipgloss.Color
	colorEntertainment lipgloss.Color
	colorOther         lipgloss.Color
	colorNow           lipgloss.Color

	TitleStyle     lipgloss.Style
	DayHeaderStyle lipgloss.Style
	TodayStyle     lipgloss.Style
	SelectedStyle  lipgloss.Style
	MutedStyle     lipgloss.Style
	PastStyle      lipgloss.Style
	NowStyle       lipgloss.Style
	HelpStyle      lipgloss.Style
	StatusStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	PromptStyle    lipgloss.Style

	category map[event.Category]lipgloss.Style
}

// NewStyles builds the style set for a theme. Unknown names fall back to
// the dark theme.
func NewStyles(theme string) *Styles {
	s := &Styles{}

	switch theme {
	case "light":
		s.colorBg = lipgloss.Color("#fafafa")
		s.colorFg = lipgloss.Color("#2e3440")
		s.colorFgMuted = lipgloss.Color("#9099a8")
		s.colorAccent = lipgloss.Color("#5e81ac")
	default:
		s.colorBg = lipgloss.Color("#1e1e2e")
		s.colorFg = lipgloss.Color("#cdd6f4")
		s.colorFgMuted = lipgloss.Color("#6c7086")
		s.colorAccent = lipgloss.Color("#89b4fa")
	}

	s.colorSports = lipgloss.Color("#a6e3a1")
	s.colorCulture = lipgloss.Color("#cba6f7")
	s.colorEntertainment = lipgloss.Color("#f9e2af")
	s.colorOther = s.colorFg
	s.colorNow = lipgloss.Color("#f38ba8")

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.DayHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg)
	s.TodayStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent).Underline(true)
	s.SelectedStyle = lipgloss.NewStyle().Reverse(true)
	s.MutedStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.PastStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Faint(true)
	s.NowStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorNow)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.colorNow)
	s.PromptStyle = lipgloss.NewStyle().Foreground(s.colorFg)

	s.category = map[event.Category]lipgloss.Style{
		event.CategorySports:         lipgloss.NewStyle().Foreground(s.colorSports),
		event.CategoryCultureScience: lipgloss.NewStyle().Foreground(s.colorCulture),
		event.CategoryEntertainment:  lipgloss.NewStyle().Foreground(s.colorEntertainment),
		event.CategoryOther:          lipgloss.NewStyle().Foreground(s.colorOther),
	}

	return s
}

// Category returns the style for a category.
func (s *Styles) Category(c event.Category) lipgloss.Style {
	if st, ok := s.category[c]; ok {
		return st
	}
	return s.category[event.CategoryOther]
}
