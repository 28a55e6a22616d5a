package dto

// ===================== Request DTOs =====================

type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AvailabilityEntry struct {
	SelectedDate string      `json:"selectedDate"` // YYYY-MM-DD
	Times        []TimeRange `json:"times"`
}

// UpdateAvailabilityRequest carries a full replacement set for the caller:
// whatever was stored before for (caller, event) is superseded as a whole.
type UpdateAvailabilityRequest struct {
	EventID      string              `json:"eventID"`
	Availability []AvailabilityEntry `json:"availability"`
}

// SlotInput is one flattened (date, start, end) triple in submission order.
// Validation failures are reported against its 1-based position.
type SlotInput struct {
	Date  string
	Start string
	End   string
}

// ===================== Response DTOs =====================

type UpdateAvailabilityResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}

type DateAvailability struct {
	Date  string      `json:"date"`
	Times []TimeRange `json:"times"`
}

// UserAvailability is one element of the grouped view: one user's
// submissions partitioned by date, ranges preserved verbatim.
type UserAvailability struct {
	User         string             `json:"user"`
	UserID       string             `json:"userId"`
	Availability []DateAvailability `json:"availability"`
}

// UserSlot is the caller-only flat view.
type UserSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
