package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JordanDim/planpal/internal/event"
)

// fakeRepo implements event.Repository in memory.
type fakeRepo struct {
	events []*event.Event
	err    error
}

func (f *fakeRepo) CreateEvent(_ context.Context, e *event.Event) error { f.events = append(f.events, e); return nil }
func (f *fakeRepo) GetEvent(_ context.Context, id string) (*event.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, event.ErrEventNotFound
}
func (f *fakeRepo) UpdateEvent(_ context.Context, _ *event.Event) error { return nil }
func (f *fakeRepo) DeleteEvent(_ context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return event.ErrEventNotFound
}
func (f *fakeRepo) ListEventsForOwner(_ context.Context, _ string) ([]*event.Event, error) {
	return f.events, f.err
}
func (f *fakeRepo) ListAllEvents(_ context.Context) ([]*event.Event, error) {
	return f.events, f.err
}
func (f *fakeRepo) SearchEvents(_ context.Context, _, query string) ([]*event.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*event.Event
	for _, e := range f.events {
		if strings.Contains(strings.ToLower(e.Title), strings.ToLower(query)) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeRepo) Close() error { return nil }

func fakeEvent(t *testing.T, title string) *event.Event {
	t.Helper()
	e, err := event.New(title, "other", "frosti", "2025-03-10", "18:00", "", "19:00", event.Recurrence{})
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	return e
}

func TestLoadEvents(t *testing.T) {
	repo := &fakeRepo{events: []*event.Event{fakeEvent(t, "Football"), fakeEvent(t, "Concert")}}

	msg := LoadEvents(repo, "frosti", "", 7)()
	loaded, ok := msg.(EventsLoadedMsg)
	if !ok {
		t.Fatalf("expected EventsLoadedMsg, got %T", msg)
	}
	if loaded.Gen != 7 {
		t.Errorf("gen = %d, want 7", loaded.Gen)
	}
	if len(loaded.Events) != 2 {
		t.Errorf("len(events) = %d, want 2", len(loaded.Events))
	}
}

func TestLoadEventsWithQuery(t *testing.T) {
	repo := &fakeRepo{events: []*event.Event{fakeEvent(t, "Football"), fakeEvent(t, "Concert")}}

	msg := LoadEvents(repo, "frosti", "foot", 1)()
	loaded, ok := msg.(EventsLoadedMsg)
	if !ok {
		t.Fatalf("expected EventsLoadedMsg, got %T", msg)
	}
	if len(loaded.Events) != 1 || loaded.Events[0].Title != "Football" {
		t.Errorf("filtered events = %v, want only Football", loaded.Events)
	}
}

func TestLoadEventsError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db closed")}

	msg := LoadEvents(repo, "frosti", "", 4)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if errMsg.Gen != 4 {
		t.Errorf("gen = %d, want 4; failures must carry the request generation", errMsg.Gen)
	}
}
