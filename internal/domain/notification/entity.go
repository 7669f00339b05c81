package notification

import "time"

type Kind string

const (
	KindLateCheckIn           Kind = "late_checkin"
	KindHolidayDecision       Kind = "holiday_decision"
	KindCompensationDecision  Kind = "compensation_decision"
	KindTaskAssigned          Kind = "task_assigned"
	KindHolidayRequested      Kind = "holiday_requested"
	KindCompensationRequested Kind = "compensation_requested"
)

type Notification struct {
	ID      string
	UserID  string
	Kind    Kind
	Title   string
	Message string
	// RefID points at the record the notification is about (event, request,
	// task), when there is one.
	RefID     *string
	Read      bool
	CreatedAt time.Time
}
