package model

// EventRiskQueryDTO is the caller-supplied description of an event to assess.
// AttendeeCount defaults to 100 when absent.
type EventRiskQueryDTO struct {
	Location      string `json:"location" validate:"required"`
	EventDate     string `json:"event_date" validate:"required"`
	EventType     string `json:"event_type" validate:"required"`
	AttendeeCount int    `json:"attendee_count"`
}
