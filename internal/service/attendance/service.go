package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.EventRepository
	schedule.ScheduleRepository
	clock    clock.Clock
	notifier notification.Publisher
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	scheduleRepo schedule.ScheduleRepository,
	clk clock.Clock,
	notifier notification.Publisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository:    eventRepo,
		ScheduleRepository: scheduleRepo,
		clock:              clk,
		notifier:           notifier,
	}
}

// snapshot is one atomic read of everything the gates look at: the clock,
// today's slots and today's events. Both the regular and late path of a
// decision are evaluated against the same snapshot.
type snapshot struct {
	now    time.Time
	date   string
	day    string
	nowMin int
	slots  []schedule.TimeSlot
	events []attendance.Event
}

func (a *AttendanceServiceImpl) takeSnapshot(ctx context.Context, userID string) (snapshot, error) {
	now := a.clock.Now()
	snap := snapshot{
		now:    now,
		date:   timeutil.DateString(now),
		day:    timeutil.DayName(now),
		nowMin: timeutil.MinuteOfDay(now),
	}

	week, err := a.ScheduleRepository.GetWeek(ctx, userID, timeutil.WeekStart(now))
	if err != nil && !errors.Is(err, schedule.ErrScheduleNotFound) {
		return snapshot{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	snap.slots = week.DaySlots(snap.day)

	snap.events, err = a.EventRepository.GetForUserAndDate(ctx, userID, snap.date)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to get today's events: %w", err)
	}

	return snap, nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	snap, err := a.takeSnapshot(ctx, userID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	responses := make([]attendance.EventResponse, 0, len(snap.events))
	for _, e := range snap.events {
		responses = append(responses, mapEventToResponse(e))
	}

	return attendance.StatusResponse{
		Date:            snap.date,
		Day:             snap.day,
		HasSchedule:     len(snap.slots) > 0,
		CheckedIn:       isCheckedIn(snap.events),
		RegularCheckIn:  ValidateRegularCheckIn(snap.slots, snap.events, snap.nowMin),
		LateCheckIn:     ValidateLateCheckIn(snap.slots, snap.events, snap.nowMin),
		RegularCheckOut: ValidateRegularCheckOut(snap.events, snap.nowMin),
		LateCheckOut:    ValidateLateCheckOut(snap.events, snap.nowMin),
		TodayEvents:     responses,
		TodaySummary:    SummarizeDay(snap.date, snap.events),
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	snap, err := a.takeSnapshot(ctx, userID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	var decision attendance.Decision
	if req.Late {
		decision = ValidateLateCheckIn(snap.slots, snap.events, snap.nowMin)
	} else {
		decision = ValidateRegularCheckIn(snap.slots, snap.events, snap.nowMin)
	}
	if !decision.Allowed {
		return attendance.EventResponse{}, &attendance.GateError{Decision: decision}
	}

	slotIndex := decision.SlotIndex
	event := attendance.Event{
		ID:                uuid.NewString(),
		UserID:            userID,
		Date:              snap.date,
		Day:               snap.day,
		Type:              attendance.EventCheckIn,
		CheckInTime:       timeutil.TimeOfDay(snap.now),
		Timestamp:         snap.now,
		IsLate:            req.Late,
		ScheduledCheckIn:  &decision.Slot.CheckIn,
		ScheduledCheckOut: &decision.Slot.CheckOut,
		SlotIndex:         &slotIndex,
	}
	if req.Late {
		reason := req.LateReason
		event.LateReason = &reason
	}

	created, err := a.EventRepository.Append(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	if req.Late {
		a.notifier.NotifyAdmins(ctx, notification.KindLateCheckIn,
			"Late check-in",
			fmt.Sprintf("Late check-in at %s: %s", created.CheckInTime, req.LateReason),
			&created.ID)
	}

	return mapEventToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.EventResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	snap, err := a.takeSnapshot(ctx, userID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	var decision attendance.Decision
	if req.Late {
		decision = ValidateLateCheckOut(snap.events, snap.nowMin)
	} else {
		decision = ValidateRegularCheckOut(snap.events, snap.nowMin)
	}
	if !decision.Allowed {
		return attendance.EventResponse{}, &attendance.GateError{Decision: decision}
	}

	open := decision.LastCheckIn
	checkOutTime := timeutil.TimeOfDay(snap.now)

	// Stored at write time; history reads recompute independently via the
	// pairer and may diverge if the rules change in between.
	minutes, _ := CalculateWorkingMinutes(open.CheckInTime, checkOutTime)
	display := timeutil.FormatDuration(minutes)

	event := attendance.Event{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Date:                snap.date,
		Day:                 snap.day,
		Type:                attendance.EventCheckOut,
		CheckInTime:         open.CheckInTime,
		CheckOutTime:        checkOutTime,
		Timestamp:           snap.now,
		IsLate:              req.Late,
		ScheduledCheckIn:    open.ScheduledCheckIn,
		ScheduledCheckOut:   open.ScheduledCheckOut,
		SlotIndex:           open.SlotIndex,
		WorkingHours:        &minutes,
		WorkingHoursDisplay: &display,
	}
	if req.Late && req.LateReason != "" {
		reason := req.LateReason
		event.LateReason = &reason
	}

	created, err := a.EventRepository.Append(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return mapEventToResponse(created), nil
}

// MyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}
	filter.UserID = &userID
	return a.history(ctx, filter)
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if filter.UserID == nil {
		return attendance.HistoryResponse{}, fmt.Errorf("user_id filter is required")
	}
	return a.history(ctx, filter)
}

func (a *AttendanceServiceImpl) history(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	events, err := a.EventRepository.GetForUser(ctx, *filter.UserID, filter.StartDate, filter.EndDate)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to get events: %w", err)
	}
	total, err := a.EventRepository.CountForUser(ctx, *filter.UserID, filter.StartDate, filter.EndDate)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to count events: %w", err)
	}

	days := SummarizeHistory(events)

	// Pagination applies to day summaries, newest first.
	start := (filter.Page - 1) * filter.Limit
	if start > len(days) {
		start = len(days)
	}
	end := start + filter.Limit
	if end > len(days) {
		end = len(days)
	}

	return attendance.HistoryResponse{
		TotalEvents: total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Days:        days[start:end],
	}, nil
}

// ExportCSV implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ExportCSV(ctx context.Context, filter attendance.ExportFilter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := a.EventRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for export: %w", err)
	}

	return renderCSV(events), nil
}

func mapEventToResponse(e attendance.Event) attendance.EventResponse {
	var name string
	if e.EmployeeName != nil {
		name = *e.EmployeeName
	}
	return attendance.EventResponse{
		ID:                  e.ID,
		UserID:              e.UserID,
		EmployeeName:        name,
		Date:                e.Date,
		Day:                 e.Day,
		Type:                string(e.Type),
		CheckInTime:         e.CheckInTime,
		CheckOutTime:        e.CheckOutTime,
		Timestamp:           e.Timestamp.Format(time.RFC3339),
		IsLate:              e.IsLate,
		LateReason:          e.LateReason,
		ScheduledCheckIn:    e.ScheduledCheckIn,
		ScheduledCheckOut:   e.ScheduledCheckOut,
		SlotIndex:           e.SlotIndex,
		WorkingHours:        e.WorkingHours,
		WorkingHoursDisplay: e.WorkingHoursDisplay,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}
