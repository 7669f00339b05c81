package attendance

import (
	"strings"

	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	// Late marks the request as taking the late path; a reason is then
	// required before the event is persisted.
	Late       bool   `json:"late"`
	LateReason string `json:"late_reason"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Late && validator.IsEmpty(r.LateReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "late_reason",
			Message: "late_reason is required for a late check-in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Late       bool   `json:"late"`
	LateReason string `json:"late_reason"` // optional even on the late path
}

type EventResponse struct {
	ID                  string  `json:"id"`
	UserID              string  `json:"user_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	Date                string  `json:"date"`
	Day                 string  `json:"day"`
	Type                string  `json:"type"`
	CheckInTime         string  `json:"check_in_time,omitempty"`
	CheckOutTime        string  `json:"check_out_time,omitempty"`
	Timestamp           string  `json:"timestamp"`
	IsLate              bool    `json:"is_late"`
	LateReason          *string `json:"late_reason,omitempty"`
	ScheduledCheckIn    *string `json:"scheduled_check_in,omitempty"`
	ScheduledCheckOut   *string `json:"scheduled_check_out,omitempty"`
	SlotIndex           *int    `json:"slot_index,omitempty"`
	WorkingHours        *int    `json:"working_hours,omitempty"`
	WorkingHoursDisplay *string `json:"working_hours_display,omitempty"`
}

// StatusResponse reports every gate decision evaluated against one snapshot
// of today's schedule and events, so the client can choose which actions to
// offer without a race between separate checks.
type StatusResponse struct {
	Date            string          `json:"date"`
	Day             string          `json:"day"`
	HasSchedule     bool            `json:"has_schedule"`
	CheckedIn       bool            `json:"checked_in"`
	RegularCheckIn  Decision        `json:"regular_check_in"`
	LateCheckIn     Decision        `json:"late_check_in"`
	RegularCheckOut Decision        `json:"regular_check_out"`
	LateCheckOut    Decision        `json:"late_check_out"`
	TodayEvents     []EventResponse `json:"today_events"`
	TodaySummary    DailySummary    `json:"today_summary"`
}

type HistoryFilter struct {
	UserID    *string `json:"user_id,omitempty"` // admin listing only
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 31 // Default: about a month of days
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.UserID != nil && strings.TrimSpace(*f.UserID) != "" && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HistoryResponse struct {
	TotalEvents int64          `json:"total_events"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
	Days        []DailySummary `json:"days"`
}

type ExportFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (f *ExportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != nil && strings.TrimSpace(*f.UserID) != "" && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
