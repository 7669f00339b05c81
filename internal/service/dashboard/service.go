package dashboard

import (
	"context"
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/compensation"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/dashboard"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	attendancesvc "github.com/MHamza118/EMSFSPro-sub000/internal/service/attendance"
	"github.com/go-chi/jwtauth/v5"
)

// DashboardServiceImpl reads through the other domains' repositories; it
// owns no storage of its own.
type DashboardServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	eventRepo        attendance.EventRepository
	holidayRepo      holiday.RequestRepository
	compensationRepo compensation.RequestRepository
	taskRepo         task.TaskRepository
	clock            clock.Clock
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	holidayRepo holiday.RequestRepository,
	compensationRepo compensation.RequestRepository,
	taskRepo task.TaskRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:     employeeRepo,
		eventRepo:        eventRepo,
		holidayRepo:      holidayRepo,
		compensationRepo: compensationRepo,
		taskRepo:         taskRepo,
		clock:            clk,
	}
}

// Admin implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Admin(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	today := timeutil.DateString(s.clock.Now())

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	events, err := s.eventRepo.List(ctx, attendance.ExportFilter{StartDate: &today, EndDate: &today})
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list today's events: %w", err)
	}

	checkedIn := make(map[string]bool)
	late := make(map[string]bool)
	for _, e := range events {
		if e.Type != attendance.EventCheckIn {
			continue
		}
		checkedIn[e.UserID] = true
		if e.IsLate {
			late[e.UserID] = true
		}
	}

	absent := totalEmployees - int64(len(checkedIn))
	if absent < 0 {
		absent = 0
	}

	pendingHolidays, err := s.holidayRepo.CountPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count pending holidays: %w", err)
	}
	pendingCompensation, err := s.compensationRepo.CountPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count pending compensation: %w", err)
	}

	byStatus, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count tasks: %w", err)
	}
	tasksByStatus := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		tasksByStatus[string(status)] = count
	}

	return dashboard.AdminDashboardResponse{
		Date:                today,
		TotalEmployees:      totalEmployees,
		CheckedInToday:      int64(len(checkedIn)),
		LateToday:           int64(len(late)),
		AbsentToday:         absent,
		PendingHolidays:     pendingHolidays,
		PendingCompensation: pendingCompensation,
		TasksByStatus:       tasksByStatus,
	}, nil
}

// Self implements dashboard.DashboardService. Week totals are recomputed
// from events through the pairer, not read from stored values.
func (s *DashboardServiceImpl) Self(ctx context.Context) (dashboard.SelfDashboardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return dashboard.SelfDashboardResponse{}, err
	}

	now := s.clock.Now()
	today := timeutil.DateString(now)
	weekStart := timeutil.DateString(timeutil.WeekStart(now))

	events, err := s.eventRepo.GetForUser(ctx, userID, &weekStart, &today)
	if err != nil {
		return dashboard.SelfDashboardResponse{}, fmt.Errorf("failed to get week events: %w", err)
	}

	var regular, lateMin, total int
	for _, day := range attendancesvc.SummarizeHistory(events) {
		regular += day.RegularHours.TotalMinutes
		lateMin += day.LateHours.TotalMinutes
		total += day.TotalHours.TotalMinutes
	}

	openTasks, err := s.taskRepo.CountOpenForUser(ctx, userID)
	if err != nil {
		return dashboard.SelfDashboardResponse{}, fmt.Errorf("failed to count open tasks: %w", err)
	}
	pendingHolidays, err := s.holidayRepo.CountPendingForUser(ctx, userID)
	if err != nil {
		return dashboard.SelfDashboardResponse{}, fmt.Errorf("failed to count pending holidays: %w", err)
	}
	pendingCompensation, err := s.compensationRepo.CountPendingForUser(ctx, userID)
	if err != nil {
		return dashboard.SelfDashboardResponse{}, fmt.Errorf("failed to count pending compensation: %w", err)
	}

	return dashboard.SelfDashboardResponse{
		Date:      today,
		WeekStart: weekStart,
		Week: dashboard.WeekHours{
			RegularDisplay: timeutil.FormatDuration(regular),
			LateDisplay:    timeutil.FormatDuration(lateMin),
			TotalDisplay:   timeutil.FormatDuration(total),
			TotalMinutes:   total,
		},
		OpenTasks:           openTasks,
		PendingHolidays:     pendingHolidays,
		PendingCompensation: pendingCompensation,
	}, nil
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
