package holiday

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's time-off request for an inclusive date range.
type Request struct {
	ID        string
	UserID    string
	StartDate string
	EndDate   string
	Reason    string
	Status    Status
	// DecisionNote carries the admin's approval or rejection note.
	DecisionNote *string
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	EmployeeName *string
}

func (r Request) Pending() bool {
	return r.Status == StatusPending
}
