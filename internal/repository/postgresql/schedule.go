package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// scheduleRepositoryImpl stores one row per user and week; the whole day
// map lives in a jsonb column since saves are always wholesale replaces.
type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetWeek implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetWeek(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, week_start, days, updated_at
		FROM schedules
		WHERE user_id = $1 AND week_start = $2
	`
	return r.scanWeek(q.QueryRow(ctx, query, userID, weekStart))
}

// ReplaceWeek implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ReplaceWeek(ctx context.Context, s schedule.WeekSchedule) error {
	q := GetQuerier(ctx, r.db)

	days, err := json.Marshal(s.Days)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO schedules (user_id, week_start, days, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, week_start)
		DO UPDATE SET days = EXCLUDED.days, updated_at = NOW()
	`
	_, err = q.Exec(ctx, query, s.UserID, s.WeekStart, days)
	return err
}

// GetLatestBefore implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetLatestBefore(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, week_start, days, updated_at
		FROM schedules
		WHERE user_id = $1 AND week_start < $2
		ORDER BY week_start DESC
		LIMIT 1
	`
	return r.scanWeek(q.QueryRow(ctx, query, userID, weekStart))
}

// UserIDsWithoutWeek implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) UserIDsWithoutWeek(ctx context.Context, weekStart time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT s.user_id
		FROM schedules s
		WHERE s.week_start < $1
		  AND NOT EXISTS (
			SELECT 1 FROM schedules cur
			WHERE cur.user_id = s.user_id AND cur.week_start = $1
		  )
	`
	rows, err := q.Query(ctx, query, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *scheduleRepositoryImpl) scanWeek(row interface{ Scan(...any) error }) (schedule.WeekSchedule, error) {
	var w schedule.WeekSchedule
	var days []byte

	if err := row.Scan(&w.UserID, &w.WeekStart, &days, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WeekSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WeekSchedule{}, err
	}
	if err := json.Unmarshal(days, &w.Days); err != nil {
		return schedule.WeekSchedule{}, err
	}
	return w, nil
}
