// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/JordanDim/planpal/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const eventColumns = `id, title, description, location, category, creator,
	       start_date, start_time, end_date, end_time, public,
	       recur_freq, recur_until, recur_indefinite, created_at`

// CreateEvent adds a new event to the repository.
func (s *SQLite) CreateEvent(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (
			id, title, description, location, category, creator,
			start_date, start_time, end_date, end_time, public,
			recur_freq, recur_until, recur_indefinite, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		string(e.Category),
		e.Creator,
		e.StartDate,
		e.StartTime,
		e.EndDate,
		e.EndTime,
		boolToInt(e.Public),
		string(freqOrNone(e.Recurrence.Freq)),
		e.Recurrence.Until,
		boolToInt(e.Recurrence.Indefinite),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLite) GetEvent(ctx context.Context, id string) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	e, err := scanEvent(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, event.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// UpdateEvent replaces the stored event with the same ID.
func (s *SQLite) UpdateEvent(ctx context.Context, e *event.Event) error {
	query := `
		UPDATE events SET
			title = ?, description = ?, location = ?, category = ?,
			start_date = ?, start_time = ?, end_date = ?, end_time = ?,
			public = ?, recur_freq = ?, recur_until = ?, recur_indefinite = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		e.Location,
		string(e.Category),
		e.StartDate,
		e.StartTime,
		e.EndDate,
		e.EndTime,
		boolToInt(e.Public),
		string(freqOrNone(e.Recurrence.Freq)),
		e.Recurrence.Until,
		boolToInt(e.Recurrence.Indefinite),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// DeleteEvent removes an event by ID.
func (s *SQLite) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if rows == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

// ListEventsForOwner returns every event visible to owner: their own events
// plus public events. This is where the access rule lives; the layout core
// never filters by visibility.
func (s *SQLite) ListEventsForOwner(ctx context.Context, owner string) ([]*event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE creator = ? OR public = 1
		ORDER BY start_date, start_time, id
	`
	return s.queryEvents(ctx, query, owner)
}

// ListAllEvents returns every stored event.
func (s *SQLite) ListAllEvents(ctx context.Context) ([]*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date, start_time, id`
	return s.queryEvents(ctx, query)
}

// SearchEvents returns events visible to owner whose title or description
// contains the query, case-insensitively.
func (s *SQLite) SearchEvents(ctx context.Context, owner, search string) ([]*event.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE (creator = ? OR public = 1)
		  AND (title LIKE '%' || ? || '%' COLLATE NOCASE
		       OR description LIKE '%' || ? || '%' COLLATE NOCASE)
		ORDER BY start_date, start_time, id
	`
	return s.queryEvents(ctx, query, owner, search, search)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) queryEvents(ctx context.Context, query string, args ...any) ([]*event.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []*event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*event.Event, error) {
	var (
		e          event.Event
		category   string
		public     int
		freq       string
		indefinite int
		createdAt  string
	)

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&category,
		&e.Creator,
		&e.StartDate,
		&e.StartTime,
		&e.EndDate,
		&e.EndTime,
		&public,
		&freq,
		&e.Recurrence.Until,
		&indefinite,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	e.Category = event.ParseCategory(category)
	e.Public = public != 0
	e.Recurrence.Freq = event.Frequency(freq)
	e.Recurrence.Indefinite = indefinite != 0

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// Rows created by SQLite's CURRENT_TIMESTAMP default use a
		// space-separated layout.
		e.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	}

	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func freqOrNone(f event.Frequency) event.Frequency {
	if f == "" {
		return event.FreqNone
	}
	return f
}
