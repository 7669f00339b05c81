package progress

import "github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"

type CreateReportRequest struct {
	Date        string  `json:"date"`
	TaskID      *string `json:"task_id"`
	Description string  `json:"description"`
	HoursWorked float64 `json:"hours_worked"`
}

func (r CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be yyyy-mm-dd"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.HoursWorked < 0 || r.HoursWorked > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours_worked must be between 0 and 24"})
	}
	if r.TaskID != nil && !validator.IsValidUUID(*r.TaskID) {
		errs = append(errs, validator.ValidationError{Field: "task_id", Message: "task_id must be a valid id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the admin listing; all fields optional.
type ListFilter struct {
	UserID   *string
	DateFrom *string
	DateTo   *string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != nil && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid id"})
	}
	if f.DateFrom != nil {
		if _, ok := validator.IsValidDate(*f.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_from", Message: "date_from must be yyyy-mm-dd"})
		}
	}
	if f.DateTo != nil {
		if _, ok := validator.IsValidDate(*f.DateTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_to", Message: "date_to must be yyyy-mm-dd"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	TaskID       *string `json:"task_id,omitempty"`
	TaskTitle    *string `json:"task_title,omitempty"`
	Description  string  `json:"description"`
	HoursWorked  float64 `json:"hours_worked"`
	CreatedAt    string  `json:"created_at"`
}

type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int64            `json:"total"`
}
