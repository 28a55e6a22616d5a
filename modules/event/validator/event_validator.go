package validator

import (
	"strings"
	"time"

	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/event/dto"
)

const (
	maxNameLength        = 20
	maxDescriptionLength = 150
)

// ValidateCreateEventRequest enforces the event invariants: name and
// description length caps and a chronological [start, end] window.
func ValidateCreateEventRequest(req *dto.CreateEventRequest) controller.ValidationResult {
	var result controller.ValidationResult

	if strings.TrimSpace(req.Name) == "" {
		result.Add("name", "Name is required.")
	} else if len(req.Name) > maxNameLength {
		result.Add("name", "Name must be less than 20 characters.")
	}

	if len(req.Description) > maxDescriptionLength {
		result.Add("description", "Description must be less than 150 characters!")
	}

	startDate, errSD := utils.ParseDate(req.StartDate)
	if errSD != nil {
		result.Add("startDate", "Start date must be in YYYY-MM-DD format.")
	}
	endDate, errED := utils.ParseDate(req.EndDate)
	if errED != nil {
		result.Add("endDate", "End date must be in YYYY-MM-DD format.")
	}

	startTime, errST := utils.ParseTimeOfDay(req.StartTime)
	if errST != nil {
		result.Add("startTime", "Start time must be a valid time of day.")
	}
	endTime, errET := utils.ParseTimeOfDay(req.EndTime)
	if errET != nil {
		result.Add("endTime", "End time must be a valid time of day.")
	}

	if errSD == nil && errED == nil && errST == nil && errET == nil {
		start := combine(startDate, startTime)
		end := combine(endDate, endTime)
		if end.Before(start) {
			result.Add("endTime", "End time cannot be before start time!")
		}
	}

	return result
}

func combine(date, tod time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC)
}
