package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			description      TEXT NOT NULL DEFAULT '',
			location         TEXT NOT NULL DEFAULT '',
			category         TEXT CHECK(category IN ('sports', 'culture', 'entertainment', 'other')),
			creator          TEXT NOT NULL,
			start_date       DATE NOT NULL,
			start_time       TIME NOT NULL,
			end_date         DATE NOT NULL,
			end_time         TIME NOT NULL,
			public           INTEGER NOT NULL DEFAULT 0,
			recur_freq       TEXT NOT NULL DEFAULT 'none' CHECK(recur_freq IN ('none', 'weekly', 'monthly', 'yearly')),
			recur_until      TEXT NOT NULL DEFAULT '',
			recur_indefinite INTEGER NOT NULL DEFAULT 0,
			created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_events_creator ON events(creator);
		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	return nil
}
