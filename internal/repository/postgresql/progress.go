package postgresql

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/progress"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const progressColumns = `id, user_id, date, task_id, description, hours_worked, created_at`

type progressRepositoryImpl struct {
	db *database.DB
}

func NewProgressRepository(db *database.DB) progress.ReportRepository {
	return &progressRepositoryImpl{db: db}
}

// Create implements progress.ReportRepository.
func (r *progressRepositoryImpl) Create(ctx context.Context, report progress.Report) (progress.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO progress_reports (id, user_id, date, task_id, description, hours_worked)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + progressColumns

	var created progress.Report
	err := q.QueryRow(ctx, query,
		report.ID, report.UserID, report.Date, report.TaskID, report.Description, report.HoursWorked).Scan(
		&created.ID, &created.UserID, &created.Date, &created.TaskID,
		&created.Description, &created.HoursWorked, &created.CreatedAt,
	)
	return created, err
}

// ListForUser implements progress.ReportRepository.
func (r *progressRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]progress.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.title
		FROM progress_reports pr
		LEFT JOIN tasks t ON t.id = pr.task_id
		WHERE pr.user_id = $1
		ORDER BY pr.date DESC, pr.created_at DESC
	`, prefixColumns("pr", progressColumns))

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []progress.Report
	for rows.Next() {
		var report progress.Report
		if err := rows.Scan(
			&report.ID, &report.UserID, &report.Date, &report.TaskID,
			&report.Description, &report.HoursWorked, &report.CreatedAt, &report.TaskTitle,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// List implements progress.ReportRepository.
func (r *progressRepositoryImpl) List(ctx context.Context, filter progress.ListFilter) ([]progress.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.title, emp.name
		FROM progress_reports pr
		LEFT JOIN tasks t ON t.id = pr.task_id
		LEFT JOIN employees emp ON emp.user_id = pr.user_id
		WHERE ($1::text IS NULL OR pr.user_id = $1)
		  AND ($2::text IS NULL OR pr.date >= $2)
		  AND ($3::text IS NULL OR pr.date <= $3)
		ORDER BY pr.date DESC, pr.created_at DESC
	`, prefixColumns("pr", progressColumns))

	rows, err := q.Query(ctx, query, filter.UserID, filter.DateFrom, filter.DateTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []progress.Report
	for rows.Next() {
		var report progress.Report
		if err := rows.Scan(
			&report.ID, &report.UserID, &report.Date, &report.TaskID,
			&report.Description, &report.HoursWorked, &report.CreatedAt,
			&report.TaskTitle, &report.EmployeeName,
		); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
