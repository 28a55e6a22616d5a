package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is one contiguous [start, end) time range on one date
// that one user claims to be free for one event. Multiple slots may exist
// per (user, event, date) to represent disjoint ranges on the same day.
type AvailabilitySlot struct {
	ID        uuid.UUID `db:"availability_id"`
	UserID    uuid.UUID `db:"user_id"`
	EventID   uuid.UUID `db:"event_id"`
	Date      time.Time `db:"date"`
	StartTime string    `db:"start_time"` // HH:MM:SS
	EndTime   string    `db:"end_time"`   // HH:MM:SS
}

// EventParticipant marks that a user has submitted availability for an
// event at least once. Unique per (event, user) via the composite primary
// key; re-submissions never insert a second row.
type EventParticipant struct {
	EventID   uuid.UUID `db:"event_id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// UserAvailabilityRow is the joined row the aggregator consumes: the
// store query orders these by (date, start_time) ascending.
type UserAvailabilityRow struct {
	UserName  string    `db:"user_name"`
	UserID    uuid.UUID `db:"user_id"`
	Date      time.Time `db:"date"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
}
