package attendance

import (
	"time"
)

type EventType string

const (
	EventCheckIn  EventType = "checkin"
	EventCheckOut EventType = "checkout"
)

// Event is one attendance action. A check-in and the check-out that closes
// it are two separate rows; a checkout row carries a copy of the
// check-in time it closes. Events are immutable once created.
type Event struct {
	ID     string
	UserID string
	Date   string // yyyy-MM-dd, local
	Day    string // weekday name, derived from Date, stored for queries
	Type   EventType

	// Local wall-clock times, "HH:MM:SS". Only the one matching Type is
	// meaningful; a checkout also carries the CheckInTime it closes.
	CheckInTime  string
	CheckOutTime string

	// Timestamp orders events that share a date.
	Timestamp time.Time

	IsLate     bool
	LateReason *string

	// Nominal slot times copied onto the event at creation for audit/display.
	ScheduledCheckIn  *string
	ScheduledCheckOut *string

	// SlotIndex points into the day's schedule slot list. It re-associates a
	// check-out with the check-in that opened it and marks slots as used up.
	SlotIndex *int

	// Stored at check-out time, not recomputed on read. History views
	// independently recompute via the pairer.
	WorkingHours        *int // minutes
	WorkingHoursDisplay *string

	CreatedAt time.Time

	// DTO / Join
	EmployeeName *string
}

// EventTime returns the wall-clock time this event was recorded at,
// according to its type.
func (e Event) EventTime() string {
	if e.Type == EventCheckOut {
		return e.CheckOutTime
	}
	return e.CheckInTime
}

// ScheduledTime returns the nominal slot time matching the event type.
func (e Event) ScheduledTime() string {
	if e.Type == EventCheckOut {
		if e.ScheduledCheckOut != nil {
			return *e.ScheduledCheckOut
		}
		return ""
	}
	if e.ScheduledCheckIn != nil {
		return *e.ScheduledCheckIn
	}
	return ""
}
