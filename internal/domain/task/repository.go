package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListForUser(ctx context.Context, userID string) ([]Task, error)
	List(ctx context.Context, status *Status, assignedTo *string) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
	// MarkOverdue flips uncompleted tasks whose due date is before the given
	// date to overdue and returns how many rows changed.
	MarkOverdue(ctx context.Context, before string) (int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountOpenForUser(ctx context.Context, userID string) (int64, error)
}

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	ListMine(ctx context.Context) (ListTasksResponse, error)
	ListAll(ctx context.Context, status *Status, assignedTo *string) (ListTasksResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
	SweepOverdue(ctx context.Context) (int64, error)
}
