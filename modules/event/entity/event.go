package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is an organizer-defined window participants submit availability
// into: an inclusive date range plus a daily time-of-day range shared by
// every day in it. Events are immutable once created; there are no update
// or delete operations.
type Event struct {
	ID          uuid.UUID `db:"event_id"`
	OrganizerID uuid.UUID `db:"organizer_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	StartTime   string    `db:"start_time"` // HH:MM:SS
	EndTime     string    `db:"end_time"`   // HH:MM:SS
	ShareCode   string    `db:"share_code"`
	CreatedAt   time.Time `db:"created_at"`
}

// Participant is one row of the event's membership listing.
type Participant struct {
	UserID uuid.UUID `db:"user_id" json:"UserID"`
	Name   string    `db:"name" json:"Name"`
}
