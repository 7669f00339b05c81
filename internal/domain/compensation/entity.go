package compensation

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request asks to convert extra worked time into compensation hours. The
// date names the day the extra time was worked.
type Request struct {
	ID           string
	UserID       string
	Date         string
	Hours        float64
	Reason       string
	Status       Status
	DecisionNote *string
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	EmployeeName *string
}

func (r Request) Pending() bool {
	return r.Status == StatusPending
}
