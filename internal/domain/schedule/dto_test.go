package schedule

import (
	"testing"

	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveScheduleRequest_Valid(t *testing.T) {
	req := SaveScheduleRequest{
		Days: map[string][]TimeSlot{
			"Monday": {
				{CheckIn: "09:00", CheckOut: "13:00"},
				{CheckIn: "14:00", CheckOut: "18:00"},
			},
			"Friday": {
				{CheckIn: "08:30", CheckOut: "12:30"},
			},
		},
	}

	assert.NoError(t, req.Validate())
}

func TestSaveScheduleRequest_EmptyDays(t *testing.T) {
	req := SaveScheduleRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "days")
}

func TestSaveScheduleRequest_BadDayName(t *testing.T) {
	req := SaveScheduleRequest{
		Days: map[string][]TimeSlot{
			"Funday": {{CheckIn: "09:00", CheckOut: "17:00"}},
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "days.Funday")
}

func TestSaveScheduleRequest_BadClockTime(t *testing.T) {
	req := SaveScheduleRequest{
		Days: map[string][]TimeSlot{
			"Monday": {{CheckIn: "9am", CheckOut: "17:00"}},
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "days.Monday.0.checkIn")
}

func TestSaveScheduleRequest_InvertedSlot(t *testing.T) {
	req := SaveScheduleRequest{
		Days: map[string][]TimeSlot{
			"Monday": {{CheckIn: "17:00", CheckOut: "09:00"}},
		},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "days.Monday.0")
}

func TestWeekSchedule_DayAccess(t *testing.T) {
	s := WeekSchedule{
		Days: map[string][]TimeSlot{
			"Monday": {{CheckIn: "09:00", CheckOut: "17:00"}},
		},
	}

	assert.True(t, s.HasDay("Monday"))
	assert.False(t, s.HasDay("Tuesday"))
	assert.Len(t, s.DaySlots("Monday"), 1)
	assert.Empty(t, s.DaySlots("Tuesday"))
}
