package database

import (
	"context"

	"github.com/prasen-shakya/Schedulify/core/logger"
)

// Schema mirrors the original Schedulify layout: four tables with cascading
// deletes from parent to dependent rows. event_participants uses a composite
// primary key so membership can never be duplicated for one (event, user).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    UUID PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		email      VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		event_id     UUID PRIMARY KEY,
		organizer_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		name         VARCHAR(20) NOT NULL,
		description  VARCHAR(150) NOT NULL,
		start_date   DATE NOT NULL,
		end_date     DATE NOT NULL,
		start_time   TIME NOT NULL,
		end_time     TIME NOT NULL,
		share_code   TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS event_participants (
		event_id   UUID NOT NULL REFERENCES events(event_id) ON DELETE CASCADE,
		user_id    UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (event_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS availability (
		availability_id UUID PRIMARY KEY,
		user_id         UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		event_id        UUID NOT NULL REFERENCES events(event_id) ON DELETE CASCADE,
		date            DATE NOT NULL,
		start_time      TIME NOT NULL,
		end_time        TIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_event ON availability(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_event_user ON availability(event_id, user_id)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func (d *Database) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := d.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:EnsureSchema", err)
			return err
		}
	}
	logger.Info("Database schema ensured")
	return nil
}
