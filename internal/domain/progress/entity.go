package progress

import "time"

// Report is one employee's progress note for one day, optionally tied to a
// task. HoursWorked is self-reported and independent of the attendance
// calculator's totals.
type Report struct {
	ID           string
	UserID       string
	Date         string
	TaskID       *string
	Description  string
	HoursWorked  float64
	CreatedAt    time.Time
	EmployeeName *string
	TaskTitle    *string
}
