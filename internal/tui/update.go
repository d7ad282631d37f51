package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JordanDim/planpal/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.EventsLoadedMsg:
		// A response for an older request lost the race; the latest
		// request decides what is shown.
		if msg.Gen != m.gen {
			return m, nil
		}
		m.events = msg.Events
		m.loading = false
		m.err = nil
		return m, nil

	case commands.TickMsg:
		m.now = msg.Now
		return m, commands.Tick()

	case commands.ErrMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.err = msg.Err
		m.loading = false
		cmd := m.setStatus(fmt.Sprintf("Error: %v", msg.Err))
		return m, cmd

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward everything else to the search input while it is focused.
	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}
