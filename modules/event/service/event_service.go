package service

import (
	"context"

	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/event/dto"
	"github.com/prasen-shakya/Schedulify/modules/event/entity"
	"github.com/prasen-shakya/Schedulify/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventService handles event business logic.
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract.
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventParticipants(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, *errors.AppError)
	ExportICS(ctx context.Context, eventID uuid.UUID) (string, string, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// CreateEvent inserts a new event. Requests are validated before this is
// called; the share code pairs a slug of the name with a short random id so
// copied links stay readable.
func (s *EventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.CreateEventResponse, *errors.AppError) {
	startDate, _ := utils.ParseDate(req.StartDate)
	endDate, _ := utils.ParseDate(req.EndDate)
	startTime, err := utils.NormalizeTimeOfDay(req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Start time must be a valid time of day.", err)
	}
	endTime, err := utils.NormalizeTimeOfDay(req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End time must be a valid time of day.", err)
	}

	event := &entity.Event{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		ShareCode:   slug.Make(req.Name) + "-" + utils.GenerateID(),
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event.", err)
	}

	return &dto.CreateEventResponse{
		EventID:   event.ID.String(),
		ShareCode: event.ShareCode,
	}, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found.", nil)
	}
	return dto.ToEventResponse(event), nil
}

func (s *EventService) GetEventParticipants(ctx context.Context, eventID uuid.UUID) ([]entity.Participant, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found.", nil)
	}

	participants, err := s.repo.GetParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event participants.", err)
	}
	if participants == nil {
		participants = []entity.Participant{}
	}
	return participants, nil
}
