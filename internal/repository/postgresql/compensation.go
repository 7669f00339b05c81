package postgresql

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/compensation"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const compensationColumns = `id, user_id, date, hours, reason, status, decision_note, decided_by, decided_at, created_at`

type compensationRepositoryImpl struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.RequestRepository {
	return &compensationRepositoryImpl{db: db}
}

func scanCompensation(row interface{ Scan(...any) error }, withName bool) (compensation.Request, error) {
	var c compensation.Request

	dest := []any{
		&c.ID, &c.UserID, &c.Date, &c.Hours, &c.Reason, &c.Status,
		&c.DecisionNote, &c.DecidedBy, &c.DecidedAt, &c.CreatedAt,
	}
	if withName {
		dest = append(dest, &c.EmployeeName)
	}

	err := row.Scan(dest...)
	return c, err
}

// Create implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) Create(ctx context.Context, req compensation.Request) (compensation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_requests (id, user_id, date, hours, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + compensationColumns

	return scanCompensation(q.QueryRow(ctx, query,
		req.ID, req.UserID, req.Date, req.Hours, req.Reason, req.Status), false)
}

// GetByID implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) GetByID(ctx context.Context, id string) (compensation.Request, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + compensationColumns + ` FROM compensation_requests WHERE id = $1`
	return scanCompensation(q.QueryRow(ctx, query, id), false)
}

// ListForUser implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]compensation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + compensationColumns + ` FROM compensation_requests WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []compensation.Request
	for rows.Next() {
		c, err := scanCompensation(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}
	return requests, rows.Err()
}

// List implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) List(ctx context.Context, status *compensation.Status) ([]compensation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, emp.name
		FROM compensation_requests cr
		LEFT JOIN employees emp ON emp.user_id = cr.user_id
		WHERE ($1::text IS NULL OR cr.status = $1)
		ORDER BY cr.created_at DESC
	`, prefixColumns("cr", compensationColumns))

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []compensation.Request
	for rows.Next() {
		c, err := scanCompensation(rows, true)
		if err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}
	return requests, rows.Err()
}

// Update implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) Update(ctx context.Context, req compensation.Request) (compensation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE compensation_requests
		SET status = $1, decision_note = $2, decided_by = $3, decided_at = $4
		WHERE id = $5
		RETURNING ` + compensationColumns

	return scanCompensation(q.QueryRow(ctx, query,
		req.Status, req.DecisionNote, req.DecidedBy, req.DecidedAt, req.ID), false)
}

// CountPending implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM compensation_requests WHERE status = 'pending'`).Scan(&count)
	return count, err
}

// CountPendingForUser implements compensation.RequestRepository.
func (r *compensationRepositoryImpl) CountPendingForUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM compensation_requests WHERE status = 'pending' AND user_id = $1`, userID).Scan(&count)
	return count, err
}
