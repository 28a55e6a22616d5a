package validator

import (
	"testing"
	"time"

	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/event/entity"

	"github.com/stretchr/testify/assert"
)

func testEvent() *entity.Event {
	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-07")
	return &entity.Event{StartDate: start, EndDate: end}
}

func TestFlattenPreservesSubmissionOrder(t *testing.T) {
	entries := []dto.AvailabilityEntry{
		{
			SelectedDate: "2025-01-02",
			Times: []dto.TimeRange{
				{StartTime: "09:00", EndTime: "10:00"},
				{StartTime: "14:00", EndTime: "15:00"},
			},
		},
		{
			SelectedDate: "2025-01-03",
			Times:        []dto.TimeRange{{StartTime: "11:00", EndTime: "12:00"}},
		},
	}

	slots := Flatten(entries)

	assert.Equal(t, []dto.SlotInput{
		{Date: "2025-01-02", Start: "09:00", End: "10:00"},
		{Date: "2025-01-02", Start: "14:00", End: "15:00"},
		{Date: "2025-01-03", Start: "11:00", End: "12:00"},
	}, slots)
}

func TestFlattenEmptyInput(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]dto.AvailabilityEntry{{SelectedDate: "2025-01-02"}}))
}

func TestValidateSlotsAcceptsWellFormedSlots(t *testing.T) {
	slots := []dto.SlotInput{
		{Date: "2025-01-02", Start: "09:00", End: "10:00"},
		{Date: "2025-01-07", Start: "16:00", End: "17:30"},
	}

	result := ValidateSlots(slots, testEvent())

	assert.False(t, result.HasError())
}

// A range with equal endpoints passes: only end-before-start is rejected.
// Zero-length ranges store fine and mark no heatmap hours.
func TestValidateSlotsToleratesZeroLengthRange(t *testing.T) {
	result := ValidateSlots([]dto.SlotInput{
		{Date: "2025-01-02", Start: "16:00", End: "16:00"},
	}, testEvent())

	assert.False(t, result.HasError())
}

func TestValidateSlotsReportsOneBasedPositions(t *testing.T) {
	slots := []dto.SlotInput{
		{Date: "2025-01-02", Start: "09:00", End: "10:00"},
		{Date: "2025-01-02", Start: "12:00", End: "11:00"},
		{Date: "bogus", Start: "09:00", End: "10:00"},
	}

	result := ValidateSlots(slots, testEvent())

	assert.True(t, result.HasError())
	assert.Equal(t, "Availability 2: End time cannot be before start time!", result.First())
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, "Availability 3: Date must be in YYYY-MM-DD format.", result.Errors[1].Message)
}

func TestValidateSlotsRejectsDatesOutsideEventWindow(t *testing.T) {
	for _, date := range []string{"2024-12-31", "2025-01-08"} {
		result := ValidateSlots([]dto.SlotInput{
			{Date: date, Start: "09:00", End: "10:00"},
		}, testEvent())

		assert.True(t, result.HasError())
		assert.Equal(t, "Availability 1: Date is outside the event's date range.", result.First())
	}
}

func TestValidateSlotsAcceptsEventBoundaryDates(t *testing.T) {
	result := ValidateSlots([]dto.SlotInput{
		{Date: "2025-01-01", Start: "09:00", End: "10:00"},
		{Date: "2025-01-07", Start: "09:00", End: "10:00"},
	}, testEvent())

	assert.False(t, result.HasError())
}

func TestValidateSlotsRejectsMalformedTimes(t *testing.T) {
	result := ValidateSlots([]dto.SlotInput{
		{Date: "2025-01-02", Start: "soon", End: "10:00"},
	}, testEvent())

	assert.True(t, result.HasError())
	assert.Equal(t, "Availability 1: Start time must be a valid time of day.", result.First())
}
