package task

import (
	"context"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/user"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employeeRepo employee.EmployeeRepository
	notifier     notification.Publisher
	clock        clock.Clock
}

func NewTaskService(taskRepository task.TaskRepository, employeeRepository employee.EmployeeRepository, notifier notification.Publisher, clk clock.Clock) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		employeeRepo:   employeeRepository,
		notifier:       notifier,
		clock:          clk,
	}
}

// Create implements task.TaskService. AssignedTo is an employee id; the
// task row stores the employee's user id so ownership checks line up with
// token claims.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	adminID, _, err := callerFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.AssignedTo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskResponse{}, employee.ErrEmployeeNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  emp.UserID,
		AssignedBy:  adminID,
		DueDate:     req.DueDate,
		Status:      task.StatusPending,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.notifier.Notify(ctx, emp.UserID, notification.KindTaskAssigned,
		"New task assigned",
		fmt.Sprintf("You were assigned the task %q.", created.Title),
		&created.ID)

	return mapToResponse(created), nil
}

// Get implements task.TaskService. Admins see any task; employees only
// their own.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	userID, role, err := callerFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	if role != user.RoleAdmin && t.AssignedTo != userID {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}
	return mapToResponse(t), nil
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context) (task.ListTasksResponse, error) {
	userID, _, err := callerFromContext(ctx)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	tasks, err := s.TaskRepository.ListForUser(ctx, userID)
	if err != nil {
		return task.ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return mapToListResponse(tasks), nil
}

// ListAll implements task.TaskService.
func (s *TaskServiceImpl) ListAll(ctx context.Context, status *task.Status, assignedTo *string) (task.ListTasksResponse, error) {
	tasks, err := s.TaskRepository.List(ctx, status, assignedTo)
	if err != nil {
		return task.ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return mapToListResponse(tasks), nil
}

// Update implements task.TaskService (admin edits, any field).
func (s *TaskServiceImpl) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.Status != nil {
		t.Status = task.Status(*req.Status)
	}

	updated, err := s.TaskRepository.Update(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}
	return mapToResponse(updated), nil
}

// UpdateStatus implements task.TaskService (employee transition on an own
// task).
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	userID, role, err := callerFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}
	if role != user.RoleAdmin && t.AssignedTo != userID {
		return task.TaskResponse{}, task.ErrTaskNotFound
	}

	next := task.Status(req.Status)
	if role != user.RoleAdmin && !t.CanTransition(next) {
		return task.TaskResponse{}, task.ErrInvalidTransition
	}
	t.Status = next

	updated, err := s.TaskRepository.Update(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}
	return mapToResponse(updated), nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.TaskRepository.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// SweepOverdue implements task.TaskService. Tasks due strictly before
// today that are not completed become overdue.
func (s *TaskServiceImpl) SweepOverdue(ctx context.Context) (int64, error) {
	today := timeutil.DateString(s.clock.Now())
	marked, err := s.TaskRepository.MarkOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue tasks: %w", err)
	}
	return marked, nil
}

func mapToResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		AssignedTo:   t.AssignedTo,
		EmployeeName: t.EmployeeName,
		AssignedBy:   t.AssignedBy,
		DueDate:      t.DueDate,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(tasks []task.Task) task.ListTasksResponse {
	resp := task.ListTasksResponse{
		Tasks: make([]task.TaskResponse, 0, len(tasks)),
		Total: int64(len(tasks)),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, mapToResponse(t))
	}
	return resp
}

func callerFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim missing")
	}
	role, _ := claims["role"].(string)
	return userID, user.Role(role), nil
}
