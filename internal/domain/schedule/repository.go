package schedule

import (
	"context"
	"time"
)

// ScheduleRepository stores weekly schedules keyed by user and week start.
type ScheduleRepository interface {
	// GetWeek retrieves the schedule for the week starting at weekStart.
	// Returns ErrScheduleNotFound when no week is saved.
	GetWeek(ctx context.Context, userID string, weekStart time.Time) (WeekSchedule, error)

	// ReplaceWeek replaces the whole week's slots for a user.
	ReplaceWeek(ctx context.Context, s WeekSchedule) error

	// GetLatestBefore retrieves the most recent saved week strictly before
	// weekStart. Used by the rollover job to carry schedules forward.
	// Returns ErrScheduleNotFound when the user has no past week at all.
	GetLatestBefore(ctx context.Context, userID string, weekStart time.Time) (WeekSchedule, error)

	// UserIDsWithoutWeek lists users who have some past schedule but none
	// for the week starting at weekStart.
	UserIDsWithoutWeek(ctx context.Context, weekStart time.Time) ([]string, error)
}

// ScheduleService defines schedule business logic
type ScheduleService interface {
	// GetMySchedule returns the caller's current-week schedule.
	GetMySchedule(ctx context.Context) (ScheduleResponse, error)

	// SaveMySchedule replaces the caller's current-week schedule.
	SaveMySchedule(ctx context.Context, req SaveScheduleRequest) (ScheduleResponse, error)

	// GetEmployeeSchedule returns an employee's current-week schedule (admin).
	GetEmployeeSchedule(ctx context.Context, userID string) (ScheduleResponse, error)

	// SaveEmployeeSchedule replaces an employee's current-week schedule (admin).
	SaveEmployeeSchedule(ctx context.Context, req SaveScheduleRequest) (ScheduleResponse, error)

	// RolloverWeek copies the most recent schedule into the current week for
	// every user who has not saved one yet. Returns how many were carried over.
	RolloverWeek(ctx context.Context, now time.Time) (int, error)
}
