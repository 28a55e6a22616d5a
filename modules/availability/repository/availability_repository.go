package repository

import (
	"context"

	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AvailabilityRepository owns availability and membership persistence.
type AvailabilityRepository struct {
	DB database.IDatabase
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract.
type AvailabilityRepositoryInterface interface {
	ReplaceAvailability(ctx context.Context, eventID, userID uuid.UUID, slots []entity.AvailabilitySlot) error
	ClearAvailability(ctx context.Context, eventID, userID uuid.UUID) error
	GetEventAvailability(ctx context.Context, eventID uuid.UUID) ([]entity.UserAvailabilityRow, error)
	GetUserAvailability(ctx context.Context, eventID, userID uuid.UUID) ([]entity.AvailabilitySlot, error)
	CountParticipants(ctx context.Context, eventID uuid.UUID) (int, error)
}

// ReplaceAvailability swaps one user's stored slots for an event with the
// given set inside a single transaction: membership is ensured exactly once,
// prior rows are removed, and the new rows are inserted. On any failure the
// transaction rolls back and prior rows remain exactly as they were.
func (r *AvailabilityRepository) ReplaceAvailability(ctx context.Context, eventID, userID uuid.UUID, slots []entity.AvailabilitySlot) error {
	err := r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		var isMember bool
		err := tx.GetContext(ctx, &isMember,
			`SELECT EXISTS (SELECT 1 FROM event_participants WHERE event_id = $1 AND user_id = $2)`,
			eventID, userID)
		if err != nil {
			return err
		}

		if !isMember {
			// A concurrent double-submit by the same user can race here;
			// the composite primary key turns that into a visible error
			// rather than a silent merge.
			_, err = tx.ExecContext(ctx,
				`INSERT INTO event_participants (event_id, user_id) VALUES ($1, $2)`,
				eventID, userID)
			if err != nil {
				return err
			}
		} else {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM availability WHERE event_id = $1 AND user_id = $2`,
				eventID, userID)
			if err != nil {
				return err
			}
		}

		for _, slot := range slots {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO availability (availability_id, user_id, event_id, date, start_time, end_time)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				slot.ID, slot.UserID, slot.EventID, slot.Date, slot.StartTime, slot.EndTime)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceAvailability", err)
		return err
	}
	return nil
}

// ClearAvailability removes all of one user's slots for an event along with
// their membership row. Idempotent: deleting zero rows is success.
func (r *AvailabilityRepository) ClearAvailability(ctx context.Context, eventID, userID uuid.UUID) error {
	err := r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM availability WHERE event_id = $1 AND user_id = $2`,
			eventID, userID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`,
			eventID, userID)
		return err
	})
	if err != nil {
		logger.Error("AvailabilityRepository:ClearAvailability", err)
		return err
	}
	return nil
}

// GetEventAvailability returns all stored slots for an event joined with
// user names, ordered by (date, start_time) ascending. The aggregator
// depends on that ordering and only partitions, never reorders.
func (r *AvailabilityRepository) GetEventAvailability(ctx context.Context, eventID uuid.UUID) ([]entity.UserAvailabilityRow, error) {
	query := `
		SELECT u.name AS user_name, u.user_id, a.date, a.start_time, a.end_time
		FROM users u
		JOIN availability a ON u.user_id = a.user_id
		WHERE a.event_id = $1
		ORDER BY a.date, a.start_time
	`

	var rows []entity.UserAvailabilityRow
	err := r.DB.SelectContext(ctx, &rows, query, eventID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetEventAvailability", err)
		return nil, err
	}
	return rows, nil
}

func (r *AvailabilityRepository) GetUserAvailability(ctx context.Context, eventID, userID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT availability_id, user_id, event_id, date, start_time, end_time
		FROM availability
		WHERE event_id = $1 AND user_id = $2
		ORDER BY date, start_time
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, eventID, userID)
	if err != nil {
		logger.Error("AvailabilityRepository:GetUserAvailability", err)
		return nil, err
	}
	return slots, nil
}

func (r *AvailabilityRepository) CountParticipants(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("AvailabilityRepository:CountParticipants", err)
		return 0, err
	}
	return count, nil
}
