package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	clock clock.Clock
}

func NewScheduleService(scheduleRepository schedule.ScheduleRepository, clk clock.Clock) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepository,
		clock:              clk,
	}
}

// GetMySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetMySchedule(ctx context.Context) (schedule.ScheduleResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return s.getWeek(ctx, userID)
}

// SaveMySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SaveMySchedule(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	req.UserID = userID
	return s.saveWeek(ctx, req)
}

// GetEmployeeSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetEmployeeSchedule(ctx context.Context, userID string) (schedule.ScheduleResponse, error) {
	return s.getWeek(ctx, userID)
}

// SaveEmployeeSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) SaveEmployeeSchedule(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	return s.saveWeek(ctx, req)
}

// RolloverWeek implements schedule.ScheduleService. For every user with no
// schedule saved for now's week, the most recent past week is copied in.
func (s *ScheduleServiceImpl) RolloverWeek(ctx context.Context, now time.Time) (int, error) {
	weekStart := timeutil.WeekStart(now)

	userIDs, err := s.ScheduleRepository.UserIDsWithoutWeek(ctx, weekStart)
	if err != nil {
		return 0, fmt.Errorf("failed to list users without current week: %w", err)
	}

	carried := 0
	for _, userID := range userIDs {
		prev, err := s.ScheduleRepository.GetLatestBefore(ctx, userID, weekStart)
		if err != nil {
			if errors.Is(err, schedule.ErrScheduleNotFound) {
				continue
			}
			return carried, fmt.Errorf("failed to get previous week for %s: %w", userID, err)
		}

		err = s.ScheduleRepository.ReplaceWeek(ctx, schedule.WeekSchedule{
			UserID:    userID,
			WeekStart: weekStart,
			Days:      prev.Days,
		})
		if err != nil {
			return carried, fmt.Errorf("failed to carry week for %s: %w", userID, err)
		}
		carried++
	}

	return carried, nil
}

func (s *ScheduleServiceImpl) getWeek(ctx context.Context, userID string) (schedule.ScheduleResponse, error) {
	weekStart := timeutil.WeekStart(s.clock.Now())

	week, err := s.ScheduleRepository.GetWeek(ctx, userID, weekStart)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			// An unsaved week is an empty schedule, not an error.
			return schedule.ScheduleResponse{
				UserID:    userID,
				WeekStart: timeutil.DateString(weekStart),
				Days:      map[string][]schedule.TimeSlot{},
			}, nil
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return mapToResponse(week), nil
}

func (s *ScheduleServiceImpl) saveWeek(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	weekStart := timeutil.WeekStart(s.clock.Now())
	week := schedule.WeekSchedule{
		UserID:    req.UserID,
		WeekStart: weekStart,
		Days:      req.Days,
	}

	if err := s.ScheduleRepository.ReplaceWeek(ctx, week); err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	return mapToResponse(week), nil
}

func mapToResponse(w schedule.WeekSchedule) schedule.ScheduleResponse {
	days := w.Days
	if days == nil {
		days = map[string][]schedule.TimeSlot{}
	}
	return schedule.ScheduleResponse{
		UserID:    w.UserID,
		WeekStart: timeutil.DateString(w.WeekStart),
		Days:      days,
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
