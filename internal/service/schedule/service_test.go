package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/clock"
)

type stubRepo struct {
	week        schedule.WeekSchedule
	weekErr     error
	missing     []string
	latest      schedule.WeekSchedule
	latestErr   error
	replaced    []schedule.WeekSchedule
	replacedErr error
}

func (s *stubRepo) GetWeek(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	return s.week, s.weekErr
}

func (s *stubRepo) ReplaceWeek(ctx context.Context, w schedule.WeekSchedule) error {
	s.replaced = append(s.replaced, w)
	return s.replacedErr
}

func (s *stubRepo) GetLatestBefore(ctx context.Context, userID string, weekStart time.Time) (schedule.WeekSchedule, error) {
	return s.latest, s.latestErr
}

func (s *stubRepo) UserIDsWithoutWeek(ctx context.Context, weekStart time.Time) ([]string, error) {
	return s.missing, nil
}

func TestGetEmployeeSchedule_NoSavedWeek(t *testing.T) {
	svc := &ScheduleServiceImpl{
		ScheduleRepository: &stubRepo{weekErr: schedule.ErrScheduleNotFound},
		clock:              clock.FixedClock{Instant: time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)},
	}

	resp, err := svc.GetEmployeeSchedule(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "2025-06-02", resp.WeekStart)
	assert.Empty(t, resp.Days)
	assert.NotNil(t, resp.Days)
}

func TestRolloverWeek_SkipsUsersWithNoHistory(t *testing.T) {
	repo := &stubRepo{
		missing:   []string{"user-1"},
		latestErr: schedule.ErrScheduleNotFound,
	}
	svc := &ScheduleServiceImpl{
		ScheduleRepository: repo,
		clock:              clock.SystemClock{},
	}

	carried, err := svc.RolloverWeek(context.Background(), time.Date(2025, 6, 9, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, carried)
	assert.Empty(t, repo.replaced)
}

func TestRolloverWeek_CarriesLatestWeekForward(t *testing.T) {
	days := map[string][]schedule.TimeSlot{
		"Monday": {{CheckIn: "09:00", CheckOut: "17:00"}},
	}
	repo := &stubRepo{
		missing: []string{"user-1"},
		latest: schedule.WeekSchedule{
			UserID:    "user-1",
			WeekStart: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Days:      days,
		},
	}
	svc := &ScheduleServiceImpl{
		ScheduleRepository: repo,
		clock:              clock.SystemClock{},
	}

	carried, err := svc.RolloverWeek(context.Background(), time.Date(2025, 6, 9, 0, 5, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, carried)
	require.Len(t, repo.replaced, 1)
	assert.Equal(t, "user-1", repo.replaced[0].UserID)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), repo.replaced[0].WeekStart)
	assert.Equal(t, days, repo.replaced[0].Days)
}
