package event

import "context"

// Repository defines the storage interface for events. Access rules (which
// events an owner may see) live behind this interface, never in the layout
// core.
type Repository interface {
	// CreateEvent adds a new event to the repository.
	CreateEvent(ctx context.Context, e *Event) error

	// GetEvent retrieves an event by ID. Returns ErrEventNotFound if missing.
	GetEvent(ctx context.Context, id string) (*Event, error)

	// UpdateEvent replaces the stored event with the same ID.
	UpdateEvent(ctx context.Context, e *Event) error

	// DeleteEvent removes an event by ID.
	DeleteEvent(ctx context.Context, id string) error

	// ListEventsForOwner returns every event visible to owner: events they
	// created plus public events.
	ListEventsForOwner(ctx context.Context, owner string) ([]*Event, error)

	// ListAllEvents returns every stored event.
	ListAllEvents(ctx context.Context) ([]*Event, error)

	// SearchEvents returns the subset of events visible to owner whose
	// title or description contains the query, case-insensitively.
	SearchEvents(ctx context.Context, owner, query string) ([]*Event, error)

	// Close releases any resources held by the repository.
	Close() error
}
