package holiday

import "github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"

type CreateRequestRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be yyyy-mm-dd"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be yyyy-mm-dd"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
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
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
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
