package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/utils"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ExportICS renders the event window as an iCalendar payload: one VEVENT
// per day in [StartDate, EndDate], each spanning the shared daily
// [StartTime, EndTime]. Returns the serialized calendar and a suggested
// filename.
func (s *EventService) ExportICS(ctx context.Context, eventID uuid.UUID) (string, string, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return "", "", errors.NewAppError(errors.ErrInternalServer, "Failed to get event.", err)
	}
	if event == nil {
		return "", "", errors.NewAppError(errors.ErrNotFound, "Event not found.", nil)
	}

	startTod, todErr := utils.ParseTimeOfDay(event.StartTime)
	if todErr != nil {
		return "", "", errors.NewAppError(errors.ErrInternalServer, "Event has an invalid start time.", todErr)
	}
	endTod, todErr := utils.ParseTimeOfDay(event.EndTime)
	if todErr != nil {
		return "", "", errors.NewAppError(errors.ErrInternalServer, "Event has an invalid end time.", todErr)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Schedulify//EN")

	day := 0
	for d := event.StartDate; !d.After(event.EndDate); d = d.AddDate(0, 0, 1) {
		ev := cal.AddEvent(fmt.Sprintf("%s-%d@schedulify", event.ID, day))
		ev.SetCreatedTime(event.CreatedAt)
		ev.SetDtStampTime(time.Now().UTC())
		ev.SetStartAt(withTimeOfDay(d, startTod))
		ev.SetEndAt(withTimeOfDay(d, endTod))
		ev.SetSummary(event.Name)
		if event.Description != "" {
			ev.SetDescription(event.Description)
		}
		day++
	}

	filename := slug.Make(event.Name) + ".ics"
	return cal.Serialize(), filename, nil
}

func withTimeOfDay(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
}
