package compensation

import "github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"

type CreateRequestRequest struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be yyyy-mm-dd"})
	}
	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequestRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

func (r DecideRequestRequest) Validate() error {
	if !r.Approve && validator.IsEmpty(r.Note) {
		return validator.ValidationErrors{{Field: "note", Message: "a note is required when rejecting"}}
	}
	return nil
}

type RequestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Hours        float64 `json:"hours"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	DecisionNote *string `json:"decision_note,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
}
