package dto

import (
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/event/entity"
)

// ===================== Request DTOs =====================

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`   // YYYY-MM-DD
	StartTime   string `json:"startTime"` // HH:MM or HH:MM:SS
	EndTime     string `json:"endTime"`
}

// ===================== Response DTOs =====================

type CreateEventResponse struct {
	EventID   string `json:"eventID"`
	ShareCode string `json:"shareCode"`
}

// EventResponse keeps the legacy PascalCase keys the original API exposed
// from its column names; the client reads them as-is.
type EventResponse struct {
	EventID     string `json:"EventID"`
	OrganizerID string `json:"OrganizerID"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	StartDate   string `json:"StartDate"`
	EndDate     string `json:"EndDate"`
	StartTime   string `json:"StartTime"`
	EndTime     string `json:"EndTime"`
	ShareCode   string `json:"ShareCode"`
}

// ===================== Mapper Functions =====================

func ToEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		EventID:     e.ID.String(),
		OrganizerID: e.OrganizerID.String(),
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate.Format(utils.DateLayout),
		EndDate:     e.EndDate.Format(utils.DateLayout),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		ShareCode:   e.ShareCode,
	}
}
