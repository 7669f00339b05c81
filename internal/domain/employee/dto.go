package employee

import (
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	JoinDate   *string `json:"join_date"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if r.Role != "" && r.Role != string(user.RoleAdmin) && r.Role != string(user.RoleEmployee) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin or employee"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be yyyy-mm-dd"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	JoinDate   *string `json:"join_date"`
	Active     *bool   `json:"active"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be yyyy-mm-dd"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	JoinDate   *string `json:"join_date,omitempty"`
	Active     bool    `json:"active"`
	CreatedAt  string  `json:"created_at"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
}
