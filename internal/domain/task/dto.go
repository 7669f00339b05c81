package task

import "github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !validator.IsValidUUID(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to must be a valid employee id"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be yyyy-mm-dd"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
}

func (r UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be yyyy-mm-dd"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusInProgress), string(StatusCompleted), string(StatusOverdue),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	if !validator.IsInSlice(r.Status, []string{string(StatusInProgress), string(StatusCompleted)}) {
		return validator.ValidationErrors{{Field: "status", Message: "status must be in_progress or completed"}}
	}
	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	AssignedTo   string  `json:"assigned_to"`
	EmployeeName *string `json:"employee_name,omitempty"`
	AssignedBy   string  `json:"assigned_by"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
}
