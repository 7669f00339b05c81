package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/MHamza118/EMSFSPro-sub000/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService. The user account and the
// profile row are created in one transaction; a failure leaves neither.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if err != pgx.ErrNoRows {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	role := user.RoleEmployee
	if req.Role == string(user.RoleAdmin) {
		role = user.RoleAdmin
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newUser, err := s.UserRepository.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         role,
			Active:       true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			ID:         uuid.NewString(),
			UserID:     newUser.ID,
			Name:       req.Name,
			Email:      req.Email,
			Role:       role,
			Position:   req.Position,
			Department: req.Department,
			Phone:      req.Phone,
			JoinDate:   req.JoinDate,
			Active:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapToResponse(emp), nil
}

// GetSelf implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetSelf(ctx context.Context) (employee.EmployeeResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		Total:     int64(len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, mapToResponse(emp))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.JoinDate != nil {
		emp.JoinDate = req.JoinDate
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	// Deactivation must also shut the account out of login.
	if req.Active != nil {
		if u, uerr := s.UserRepository.GetByID(ctx, emp.UserID); uerr == nil && u.Active != *req.Active {
			u.Active = *req.Active
			if uerr := s.UserRepository.Update(ctx, u); uerr != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to update user: %w", uerr)
			}
		}
	}

	return mapToResponse(updated), nil
}

// Delete implements employee.EmployeeService. Removes the profile and the
// user account together.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.EmployeeRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if err := s.UserRepository.Delete(txCtx, emp.UserID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       string(e.Role),
		Position:   e.Position,
		Department: e.Department,
		Phone:      e.Phone,
		JoinDate:   e.JoinDate,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim missing")
	}
	return userID, nil
}
