package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/notification"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
)

type fakeScheduleRepo struct {
	week schedule.WeekSchedule
	err  error
}

func (f *fakeScheduleRepo) GetWeek(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	return f.week, f.err
}

func (f *fakeScheduleRepo) ReplaceWeek(ctx context.Context, s schedule.WeekSchedule) error {
	return nil
}

func (f *fakeScheduleRepo) GetLatestBefore(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	return schedule.WeekSchedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) UserIDsWithoutWeek(ctx context.Context, weekStart time.Time) ([]string, error) {
	return nil, nil
}

type fakeEventRepo struct {
	events []attendance.Event
}

func (f *fakeEventRepo) Append(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeEventRepo) GetForUserAndDate(ctx context.Context, userID string, date string) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetForUser(ctx context.Context, userID string, startDate, endDate *string) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter attendance.ExportFilter) ([]attendance.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) CountForUser(ctx context.Context, userID string, startDate, endDate *string) (int64, error) {
	return int64(len(f.events)), nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, userID string, kind notification.Kind, title, message string, refID *string) {
}

func (noopNotifier) NotifyAdmins(ctx context.Context, kind notification.Kind, title, message string, refID *string) {
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "role": "employee"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(sched *fakeScheduleRepo, events *fakeEventRepo, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		EventRepository:    events,
		ScheduleRepository: sched,
		clock:              clock.FixedClock{Instant: at},
		notifier:           noopNotifier{},
	}
}

// A user whose schedule repo has no row for the current week gets an empty
// snapshot, not an error. The repo signals that with ErrScheduleNotFound.
func TestTakeSnapshot_NoSavedWeek(t *testing.T) {
	svc := newTestService(
		&fakeScheduleRepo{err: schedule.ErrScheduleNotFound},
		&fakeEventRepo{},
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	)

	snap, err := svc.takeSnapshot(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, snap.slots)
	assert.Empty(t, snap.events)
	assert.Equal(t, "2025-06-02", snap.date)
	assert.Equal(t, "Monday", snap.day)
}

func TestStatus_NoSavedWeek(t *testing.T) {
	svc := newTestService(
		&fakeScheduleRepo{err: schedule.ErrScheduleNotFound},
		&fakeEventRepo{},
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	)

	resp, err := svc.Status(authedContext(t, "user-1"))
	require.NoError(t, err)
	assert.False(t, resp.HasSchedule)
	assert.False(t, resp.RegularCheckIn.Allowed)
	assert.Equal(t, attendance.ReasonNoSchedule, resp.RegularCheckIn.Reason)
	assert.Equal(t, attendance.ReasonNoSchedule, resp.LateCheckIn.Reason)
	assert.Equal(t, attendance.ReasonNotCheckedIn, resp.RegularCheckOut.Reason)
}

func TestCheckIn_NoSavedWeek(t *testing.T) {
	svc := newTestService(
		&fakeScheduleRepo{err: schedule.ErrScheduleNotFound},
		&fakeEventRepo{},
		time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	)

	_, err := svc.CheckIn(authedContext(t, "user-1"), attendance.CheckInRequest{})
	var gateErr *attendance.GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, attendance.ReasonNoSchedule, gateErr.Decision.Reason)
	assert.False(t, gateErr.Decision.Allowed)
}
