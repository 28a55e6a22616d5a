package validator

import (
	"strings"
	"testing"

	"github.com/prasen-shakya/Schedulify/modules/event/dto"

	"github.com/stretchr/testify/assert"
)

func validRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Name:        "Team offsite",
		Description: "Quarterly planning",
		StartDate:   "2025-01-01",
		EndDate:     "2025-01-07",
		StartTime:   "09:00",
		EndTime:     "17:00",
	}
}

func TestValidateCreateEventRequestAcceptsValidInput(t *testing.T) {
	result := ValidateCreateEventRequest(validRequest())
	assert.False(t, result.HasError())
}

func TestValidateCreateEventRequestRequiresName(t *testing.T) {
	req := validRequest()
	req.Name = "   "

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "Name is required.", result.First())
}

func TestValidateCreateEventRequestCapsLengths(t *testing.T) {
	req := validRequest()
	req.Name = strings.Repeat("x", 21)
	req.Description = strings.Repeat("y", 151)

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, "Name must be less than 20 characters.", result.Errors[0].Message)
	assert.Equal(t, "Description must be less than 150 characters!", result.Errors[1].Message)
}

func TestValidateCreateEventRequestRejectsReversedWindow(t *testing.T) {
	req := validRequest()
	req.StartDate = "2025-01-07"
	req.EndDate = "2025-01-01"

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "End time cannot be before start time!", result.First())
}

func TestValidateCreateEventRequestSameDayReversedTimes(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	req.StartTime = "17:00"
	req.EndTime = "09:00"

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
}

func TestValidateCreateEventRequestRejectsMalformedDates(t *testing.T) {
	req := validRequest()
	req.StartDate = "01/01/2025"

	result := ValidateCreateEventRequest(req)

	assert.True(t, result.HasError())
	assert.Equal(t, "Start date must be in YYYY-MM-DD format.", result.First())
}
