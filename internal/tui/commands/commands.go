// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JordanDim/planpal/internal/event"
)

// EventsLoadedMsg is sent when event data is loaded. Gen echoes the
// request generation so stale responses can be discarded.
type EventsLoadedMsg struct {
	Events []*event.Event
	Gen    int
}

// ErrMsg is sent when a load fails. Gen echoes the request generation so
// stale failures are dropped just like stale successes.
type ErrMsg struct {
	Err error
	Gen int
}

// TickMsg is sent once a minute to advance the now marker.
type TickMsg struct {
	Now time.Time
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadEvents fetches the events visible to owner. When query is non-empty
// only matching events are returned.
func LoadEvents(repo event.Repository, owner, query string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var (
			events []*event.Event
			err    error
		)
		if query != "" {
			events, err = repo.SearchEvents(ctx, owner, query)
		} else {
			events, err = repo.ListEventsForOwner(ctx, owner)
		}
		if err != nil {
			return ErrMsg{Err: err, Gen: gen}
		}
		return EventsLoadedMsg{Events: events, Gen: gen}
	}
}

// Tick schedules the next minute tick.
func Tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg{Now: t}
	})
}
