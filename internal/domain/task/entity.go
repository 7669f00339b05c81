package task

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// Task is work an admin assigns to one employee. DueDate is a yyyy-mm-dd
// string like every other date in the system; the sweep job marks tasks
// overdue once the due date has passed without completion.
type Task struct {
	ID           string
	Title        string
	Description  *string
	AssignedTo   string
	AssignedBy   string
	DueDate      *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	EmployeeName *string
}

func (t Task) Open() bool {
	return t.Status == StatusPending || t.Status == StatusInProgress || t.Status == StatusOverdue
}

// CanTransition reports whether an employee may move the task to next.
// Admins bypass this check.
func (t Task) CanTransition(next Status) bool {
	switch next {
	case StatusInProgress:
		return t.Status == StatusPending || t.Status == StatusOverdue
	case StatusCompleted:
		return t.Status != StatusCompleted
	default:
		return false
	}
}
