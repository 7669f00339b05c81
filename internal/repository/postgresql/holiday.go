package postgresql

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const holidayColumns = `id, user_id, start_date, end_date, reason, status, decision_note, decided_by, decided_at, created_at`

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.RequestRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanHoliday(row interface{ Scan(...any) error }, withName bool) (holiday.Request, error) {
	var h holiday.Request

	dest := []any{
		&h.ID, &h.UserID, &h.StartDate, &h.EndDate, &h.Reason, &h.Status,
		&h.DecisionNote, &h.DecidedBy, &h.DecidedAt, &h.CreatedAt,
	}
	if withName {
		dest = append(dest, &h.EmployeeName)
	}

	err := row.Scan(dest...)
	return h, err
}

// Create implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, req holiday.Request) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + holidayColumns

	return scanHoliday(q.QueryRow(ctx, query,
		req.ID, req.UserID, req.StartDate, req.EndDate, req.Reason, req.Status), false)
}

// GetByID implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + holidayColumns + ` FROM holiday_requests WHERE id = $1`
	return scanHoliday(q.QueryRow(ctx, query, id), false)
}

// ListForUser implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holiday_requests WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []holiday.Request
	for rows.Next() {
		h, err := scanHoliday(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, h)
	}
	return requests, rows.Err()
}

// List implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, status *holiday.Status) ([]holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, emp.name
		FROM holiday_requests hr
		LEFT JOIN employees emp ON emp.user_id = hr.user_id
		WHERE ($1::text IS NULL OR hr.status = $1)
		ORDER BY hr.created_at DESC
	`, prefixColumns("hr", holidayColumns))

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []holiday.Request
	for rows.Next() {
		h, err := scanHoliday(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, h)
	}
	return requests, rows.Err()
}

// Update implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, req holiday.Request) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $1, decision_note = $2, decided_by = $3, decided_at = $4
		WHERE id = $5
		RETURNING ` + holidayColumns

	return scanHoliday(q.QueryRow(ctx, query,
		req.Status, req.DecisionNote, req.DecidedBy, req.DecidedAt, req.ID), false)
}

// CountPending implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM holiday_requests WHERE status = 'pending'`).Scan(&count)
	return count, err
}

// CountPendingForUser implements holiday.RequestRepository.
func (r *holidayRepositoryImpl) CountPendingForUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM holiday_requests WHERE status = 'pending' AND user_id = $1`, userID).Scan(&count)
	return count, err
}
