package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Users are never deleted in-scope; the
// schema-level cascade exists for completeness.
type User struct {
	ID        uuid.UUID `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
