package service

import (
	"context"

	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/availability/entity"
	"github.com/prasen-shakya/Schedulify/modules/availability/repository"
	"github.com/prasen-shakya/Schedulify/modules/availability/validator"
	eventrepo "github.com/prasen-shakya/Schedulify/modules/event/repository"

	"github.com/google/uuid"
)

// AvailabilityService handles availability business logic.
type AvailabilityService struct {
	repo      repository.AvailabilityRepositoryInterface
	eventRepo eventrepo.EventRepositoryInterface
}

// HeatmapResponse is the aggregate view the heatmap renders from: the hour
// coverage buckets plus the participant count that shading is scaled by.
type HeatmapResponse struct {
	Buckets           *CoverageMap `json:"buckets"`
	TotalParticipants int          `json:"totalParticipants"`
}

// AvailabilityServiceInterface defines the service contract.
type AvailabilityServiceInterface interface {
	ReplaceAvailability(ctx context.Context, userID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.UpdateAvailabilityResponse, *errors.AppError)
	ClearAvailability(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError
	GetEventAvailability(ctx context.Context, eventID uuid.UUID) ([]dto.UserAvailability, *errors.AppError)
	GetUserAvailability(ctx context.Context, eventID, userID uuid.UUID) ([]dto.UserSlot, *errors.AppError)
	GetHeatmap(ctx context.Context, eventID uuid.UUID) (*HeatmapResponse, *errors.AppError)
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface, eventRepo eventrepo.EventRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo, eventRepo: eventRepo}
}

// ReplaceAvailability validates the submission against the event window and
// swaps the caller's stored slots for it atomically. Either every slot is
// stored or none are; a failed submission leaves the previous one intact.
// An empty submission is success: it clears prior slots and inserts nothing,
// and membership is kept either way.
func (s *AvailabilityService) ReplaceAvailability(ctx context.Context, userID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.UpdateAvailabilityResponse, *errors.AppError) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID.", err)
	}

	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found.", nil)
	}

	inputs := validator.Flatten(req.Availability)

	if result := validator.ValidateSlots(inputs, event); result.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, result.First(), nil)
	}

	slots := make([]entity.AvailabilitySlot, 0, len(inputs))
	for _, in := range inputs {
		date, _ := utils.ParseDate(in.Date)
		start, _ := utils.NormalizeTimeOfDay(in.Start)
		end, _ := utils.NormalizeTimeOfDay(in.End)
		slots = append(slots, entity.AvailabilitySlot{
			ID:        uuid.New(),
			UserID:    userID,
			EventID:   eventID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
	}

	if err := s.repo.ReplaceAvailability(ctx, eventID, userID, slots); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update availability.", err)
	}

	message := "All availabilities successfully inserted."
	if len(slots) == 0 {
		message = "No slots provided, inserted nothing."
	}
	return &dto.UpdateAvailabilityResponse{Message: message, Inserted: len(slots)}, nil
}

// ClearAvailability removes the caller's slots for an event along with their
// membership. Clearing when nothing is stored is success.
func (s *AvailabilityService) ClearAvailability(ctx context.Context, eventID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.ClearAvailability(ctx, eventID, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete availability.", err)
	}
	return nil
}

// GetEventAvailability returns every participant's submissions grouped by
// user, then by date. An event nobody has submitted to yields an empty list.
func (s *AvailabilityService) GetEventAvailability(ctx context.Context, eventID uuid.UUID) ([]dto.UserAvailability, *errors.AppError) {
	rows, err := s.repo.GetEventAvailability(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability.", err)
	}
	return GroupByUser(rows), nil
}

func (s *AvailabilityService) GetUserAvailability(ctx context.Context, eventID, userID uuid.UUID) ([]dto.UserSlot, *errors.AppError) {
	slots, err := s.repo.GetUserAvailability(ctx, eventID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability.", err)
	}

	result := make([]dto.UserSlot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, dto.UserSlot{
			Date:      slot.Date.Format(utils.DateLayout),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return result, nil
}

// GetHeatmap builds the hour coverage map for an event, bounded by the
// event's date range and daily time window, together with the participant
// count the client scales cell shading by.
func (s *AvailabilityService) GetHeatmap(ctx context.Context, eventID uuid.UUID) (*HeatmapResponse, *errors.AppError) {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found.", nil)
	}

	rows, err := s.repo.GetEventAvailability(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability.", err)
	}

	total, err := s.repo.CountParticipants(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participants.", err)
	}

	grouped := GroupByUser(rows)
	coverage := BuildHourCoverageMap(grouped,
		event.StartDate.Format(utils.DateLayout),
		event.EndDate.Format(utils.DateLayout),
		utils.HourOf(event.StartTime),
		lastBucketHour(event.EndTime))

	return &HeatmapResponse{Buckets: coverage, TotalParticipants: total}, nil
}

// lastBucketHour is the latest hour bucket an event's daily window can
// cover. A window ending on the hour does not reach into that hour: an
// event ending at 17:00 has 16 as its last bucket.
func lastBucketHour(endTime string) int {
	h := utils.HourOf(endTime)
	if h < 0 {
		return 23
	}
	t, err := utils.ParseTimeOfDay(endTime)
	if err == nil && t.Minute() == 0 && t.Second() == 0 {
		h--
	}
	return h
}
