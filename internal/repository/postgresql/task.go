package postgresql

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const taskColumns = `id, title, description, assigned_to, assigned_by, due_date, status, created_at, updated_at`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func scanTask(row interface{ Scan(...any) error }, withName bool) (task.Task, error) {
	var t task.Task

	dest := []any{
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy,
		&t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	}
	if withName {
		dest = append(dest, &t.EmployeeName)
	}

	err := row.Scan(dest...)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, description, assigned_to, assigned_by, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.DueDate, t.Status), false)
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(q.QueryRow(ctx, query, id), false)
}

// ListForUser implements task.TaskRepository.
func (r *taskRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows, false)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, status *task.Status, assignedTo *string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, emp.name
		FROM tasks t
		LEFT JOIN employees emp ON emp.user_id = t.assigned_to
		WHERE ($1::text IS NULL OR t.status = $1)
		  AND ($2::text IS NULL OR t.assigned_to = $2)
		ORDER BY t.created_at DESC
	`, prefixColumns("t", taskColumns))

	rows, err := q.Query(ctx, query, status, assignedTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows, true)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query,
		t.Title, t.Description, t.DueDate, t.Status, t.ID), false)
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MarkOverdue implements task.TaskRepository.
func (r *taskRepositoryImpl) MarkOverdue(ctx context.Context, before string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = 'overdue', updated_at = NOW()
		WHERE due_date IS NOT NULL
		  AND due_date < $1
		  AND status IN ('pending', 'in_progress')
	`
	tag, err := q.Exec(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountByStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) CountByStatus(ctx context.Context) (map[task.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[task.Status]int64)
	for rows.Next() {
		var status task.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountOpenForUser implements task.TaskRepository.
func (r *taskRepositoryImpl) CountOpenForUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status IN ('pending', 'in_progress', 'overdue')`,
		userID).Scan(&count)
	return count, err
}
