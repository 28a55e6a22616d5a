package validator

import (
	"fmt"

	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/event/entity"
)

// Flatten expands the nested request payload into (date, start, end) triples
// in submission order. Positions in validation messages are 1-based and
// refer to this flattened order.
func Flatten(entries []dto.AvailabilityEntry) []dto.SlotInput {
	slots := make([]dto.SlotInput, 0)
	for _, entry := range entries {
		for _, tr := range entry.Times {
			slots = append(slots, dto.SlotInput{
				Date:  entry.SelectedDate,
				Start: tr.StartTime,
				End:   tr.EndTime,
			})
		}
	}
	return slots
}

// ValidateSlots checks every flattened slot against the event window: dates
// must parse and fall within [StartDate, EndDate], times must parse, and
// each range must be chronological. All slots are checked even after a
// failure so the caller can report every problem at once; the whole
// submission is rejected if any slot fails.
func ValidateSlots(slots []dto.SlotInput, event *entity.Event) controller.ValidationResult {
	var result controller.ValidationResult

	for i, slot := range slots {
		pos := i + 1

		date, err := utils.ParseDate(slot.Date)
		if err != nil {
			result.Add("availability", fmt.Sprintf("Availability %d: Date must be in YYYY-MM-DD format.", pos))
		} else if date.Before(event.StartDate) || date.After(event.EndDate) {
			result.Add("availability", fmt.Sprintf("Availability %d: Date is outside the event's date range.", pos))
		}

		start, errS := utils.ParseTimeOfDay(slot.Start)
		if errS != nil {
			result.Add("availability", fmt.Sprintf("Availability %d: Start time must be a valid time of day.", pos))
		}
		end, errE := utils.ParseTimeOfDay(slot.End)
		if errE != nil {
			result.Add("availability", fmt.Sprintf("Availability %d: End time must be a valid time of day.", pos))
		}

		if errS == nil && errE == nil && end.Before(start) {
			result.Add("availability", fmt.Sprintf("Availability %d: End time cannot be before start time!", pos))
		}
	}

	return result
}
