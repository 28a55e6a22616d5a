package repository

import (
	"context"
	"database/sql"

	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event persistence.
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetParticipantsByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, error)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (event_id, organizer_id, name, description, start_date, end_date, start_time, end_time, share_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.OrganizerID, event.Name, event.Description,
		event.StartDate, event.EndDate, event.StartTime, event.EndTime, event.ShareCode)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT event_id, organizer_id, name, description, start_date, end_date, start_time, end_time, share_code, created_at
		FROM events WHERE event_id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetParticipantsByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT u.user_id, u.name
		FROM users u
		JOIN event_participants ep ON u.user_id = ep.user_id
		WHERE ep.event_id = $1
		ORDER BY ep.created_at
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, eventID)
	if err != nil {
		logger.Error("EventRepository:GetParticipantsByEventID", err)
		return nil, err
	}
	return participants, nil
}
