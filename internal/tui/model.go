// Package tui provides the interactive terminal calendar.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JordanDim/planpal/internal/config"
	"github.com/JordanDim/planpal/internal/dateutil"
	"github.com/JordanDim/planpal/internal/event"
	"github.com/JordanDim/planpal/internal/recur"
	"github.com/JordanDim/planpal/internal/tui/commands"
	"github.com/JordanDim/planpal/internal/view"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // Typing in the search prompt
)

// statusTTL is how long transient footer messages stay visible.
const statusTTL = 5 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	config *config.Config

	styles *Styles

	// State
	granularity view.Granularity
	anchor      time.Time // Day the current window is built around
	selected    time.Time // Cursor day inside month/year views
	now         time.Time
	mode        Mode
	loading     bool

	// Loaded data
	events []*event.Event
	query  string // Active search filter, "" for none

	// Request generation. Only a response carrying the latest generation
	// is applied; anything older lost the race and is dropped.
	gen int

	// Components
	search textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "search events"
	ti.CharLimit = 80
	ti.Width = 32

	g, err := view.ParseGranularity(cfg.Calendar.DefaultView)
	if err != nil {
		g = view.GranularityWeek
	}

	now := time.Now()
	today := dateutil.TruncateToDay(now)

	return Model{
		repo:        repo,
		config:      cfg,
		styles:      NewStyles(cfg.UI.Theme),
		granularity: g,
		anchor:      today,
		selected:    today,
		now:         now,
		loading:     true,
		search:      ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadEvents(m.repo, m.config.User.Handle, "", m.gen),
		commands.Tick(),
	)
}

// viewOptions maps the config onto layout options.
func (m Model) viewOptions() view.Options {
	opts := view.Options{UnitsPerHour: m.config.Calendar.UnitsPerHour}
	if m.config.Calendar.MonthOverflow == "skip" {
		opts.Expand = recur.Options{Overflow: recur.OverflowSkip}
	}
	return opts
}

// setStatus shows a transient footer message and schedules its removal.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// reload bumps the generation and fetches events with the active filter.
func (m *Model) reload() tea.Cmd {
	m.gen++
	m.loading = true
	return commands.LoadEvents(m.repo, m.config.User.Handle, m.query, m.gen)
}

// Run starts the TUI.
func Run(repo event.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
