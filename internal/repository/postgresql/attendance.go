package postgresql

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/database"
)

const eventColumns = `id, user_id, date, day, type, check_in_time, check_out_time, timestamp,
		is_late, late_reason, scheduled_check_in, scheduled_check_out, slot_index,
		working_hours, working_hours_display, created_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanEvent(row interface{ Scan(...any) error }, withName bool) (attendance.Event, error) {
	var e attendance.Event
	var checkIn, checkOut *string

	dest := []any{
		&e.ID, &e.UserID, &e.Date, &e.Day, &e.Type, &checkIn, &checkOut, &e.Timestamp,
		&e.IsLate, &e.LateReason, &e.ScheduledCheckIn, &e.ScheduledCheckOut, &e.SlotIndex,
		&e.WorkingHours, &e.WorkingHoursDisplay, &e.CreatedAt,
	}
	if withName {
		dest = append(dest, &e.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return attendance.Event{}, err
	}
	if checkIn != nil {
		e.CheckInTime = *checkIn
	}
	if checkOut != nil {
		e.CheckOutTime = *checkOut
	}
	return e, nil
}

// Append implements attendance.EventRepository. Events are insert-only;
// there is no update statement in this repository on purpose.
func (r *attendanceRepositoryImpl) Append(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events
			(id, user_id, date, day, type, check_in_time, check_out_time, timestamp,
			 is_late, late_reason, scheduled_check_in, scheduled_check_out, slot_index,
			 working_hours, working_hours_display)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + eventColumns

	return scanEvent(q.QueryRow(ctx, query,
		e.ID, e.UserID, e.Date, e.Day, e.Type, e.CheckInTime, e.CheckOutTime, e.Timestamp,
		e.IsLate, e.LateReason, e.ScheduledCheckIn, e.ScheduledCheckOut, e.SlotIndex,
		e.WorkingHours, e.WorkingHoursDisplay), false)
}

// GetForUserAndDate implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) GetForUserAndDate(ctx context.Context, userID string, date string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE user_id = $1 AND date = $2
		ORDER BY timestamp ASC
	`
	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows, false)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetForUser implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) GetForUser(ctx context.Context, userID string, startDate, endDate *string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE user_id = $1
		  AND ($2::text IS NULL OR date >= $2)
		  AND ($3::text IS NULL OR date <= $3)
		ORDER BY timestamp ASC
	`
	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows, false)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// List implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ExportFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, emp.name
		FROM attendance_events ae
		LEFT JOIN employees emp ON emp.user_id = ae.user_id
		WHERE ($1::text IS NULL OR ae.user_id = $1)
		  AND ($2::text IS NULL OR ae.date >= $2)
		  AND ($3::text IS NULL OR ae.date <= $3)
		ORDER BY ae.date DESC, ae.timestamp ASC
	`, prefixColumns("ae", eventColumns))

	rows, err := q.Query(ctx, query, filter.UserID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows, true)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountForUser implements attendance.EventRepository.
func (r *attendanceRepositoryImpl) CountForUser(ctx context.Context, userID string, startDate, endDate *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_events
		WHERE user_id = $1
		  AND ($2::text IS NULL OR date >= $2)
		  AND ($3::text IS NULL OR date <= $3)
	`
	var count int64
	err := q.QueryRow(ctx, query, userID, startDate, endDate).Scan(&count)
	return count, err
}
