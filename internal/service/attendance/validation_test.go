package attendance

import (
	"testing"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(in, out string) schedule.TimeSlot {
	return schedule.TimeSlot{CheckIn: in, CheckOut: out}
}

func minutes(s string) int {
	return timeutil.ToMinutes(s)
}

var eventSeq int

func checkInEvent(at string, slotIdx int, slot schedule.TimeSlot, late bool) attendance.Event {
	eventSeq++
	idx := slotIdx
	e := attendance.Event{
		UserID:            "user-1",
		Date:              "2025-06-02",
		Day:               "Monday",
		Type:              attendance.EventCheckIn,
		CheckInTime:       at,
		Timestamp:         time.Date(2025, 6, 2, 0, 0, eventSeq, 0, time.UTC),
		IsLate:            late,
		ScheduledCheckIn:  &slot.CheckIn,
		ScheduledCheckOut: &slot.CheckOut,
		SlotIndex:         &idx,
	}
	return e
}

func checkOutEvent(inAt, outAt string, slotIdx int) attendance.Event {
	eventSeq++
	idx := slotIdx
	return attendance.Event{
		UserID:       "user-1",
		Date:         "2025-06-02",
		Day:          "Monday",
		Type:         attendance.EventCheckOut,
		CheckInTime:  inAt,
		CheckOutTime: outAt,
		Timestamp:    time.Date(2025, 6, 2, 0, 0, eventSeq, 0, time.UTC),
		SlotIndex:    &idx,
	}
}

func TestValidateRegularCheckIn_WindowBoundaries(t *testing.T) {
	slots := []schedule.TimeSlot{slotAt("09:00", "17:00")}

	cases := []struct {
		name       string
		now        string
		wantAllow  bool
		wantReason attendance.Reason
	}{
		{"61 minutes early", "07:59", false, attendance.ReasonTooEarly},
		{"59 minutes early", "08:01", true, attendance.ReasonOK},
		{"window opens exactly", "08:00", true, attendance.ReasonOK},
		{"on time", "09:00", true, attendance.ReasonOK},
		{"29 minutes past", "09:29", true, attendance.ReasonOK},
		{"window closes exactly", "09:30", true, attendance.ReasonOK},
		{"31 minutes past", "09:31", false, attendance.ReasonTooLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := ValidateRegularCheckIn(slots, nil, minutes(c.now))
			assert.Equal(t, c.wantAllow, d.Allowed)
			assert.Equal(t, c.wantReason, d.Reason)
			if c.wantAllow {
				require.NotNil(t, d.Slot)
				assert.Equal(t, 0, d.SlotIndex)
				assert.Equal(t, "09:00", d.Slot.CheckIn)
			}
		})
	}
}

func TestValidateLateCheckIn_WindowBoundaries(t *testing.T) {
	slots := []schedule.TimeSlot{slotAt("09:00", "17:00")}

	cases := []struct {
		name       string
		now        string
		wantAllow  bool
		wantReason attendance.Reason
	}{
		{"29 minutes past", "09:29", false, attendance.ReasonUseRegular},
		{"30 minutes past", "09:30", false, attendance.ReasonUseRegular},
		{"31 minutes past", "09:31", true, attendance.ReasonOK},
		{"120 minutes past", "11:00", true, attendance.ReasonOK},
		{"121 minutes past", "11:01", false, attendance.ReasonTooLateForLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := ValidateLateCheckIn(slots, nil, minutes(c.now))
			assert.Equal(t, c.wantAllow, d.Allowed)
			assert.Equal(t, c.wantReason, d.Reason)
		})
	}
}

func TestValidateCheckIn_NoSchedule(t *testing.T) {
	d := ValidateRegularCheckIn(nil, nil, minutes("09:00"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonNoSchedule, d.Reason)

	d = ValidateLateCheckIn(nil, nil, minutes("09:00"))
	assert.Equal(t, attendance.ReasonNoSchedule, d.Reason)
}

func TestValidateCheckIn_AlreadyCheckedInRegardlessOfTime(t *testing.T) {
	slot := slotAt("09:00", "17:00")
	slots := []schedule.TimeSlot{slot}
	events := []attendance.Event{checkInEvent("09:05:00", 0, slot, false)}

	for _, now := range []string{"08:00", "09:15", "12:00", "16:59", "23:00"} {
		d := ValidateRegularCheckIn(slots, events, minutes(now))
		assert.False(t, d.Allowed, "now=%s", now)
		assert.Equal(t, attendance.ReasonAlreadyCheckedIn, d.Reason, "now=%s", now)

		d = ValidateLateCheckIn(slots, events, minutes(now))
		assert.Equal(t, attendance.ReasonAlreadyCheckedIn, d.Reason, "now=%s", now)
	}
}

func TestValidateRegularCheckIn_RecentCheckInGuard(t *testing.T) {
	slot := slotAt("09:00", "12:00")
	second := slotAt("13:00", "17:00")
	slots := []schedule.TimeSlot{slot, second}
	// Completed morning slot, check-in recorded at 12:55.
	events := []attendance.Event{
		checkInEvent("12:55:00", 0, slot, false),
		checkOutEvent("12:55:00", "12:58:00", 0),
	}

	d := ValidateRegularCheckIn(slots, events, minutes("13:02"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonRecentCheckIn, d.Reason)

	// Outside the 10-minute window the guard no longer fires.
	d = ValidateRegularCheckIn(slots, events, minutes("13:10"))
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.SlotIndex)
}

func TestValidateRegularCheckIn_NoMoreSlots(t *testing.T) {
	slot := slotAt("09:00", "12:00")
	slots := []schedule.TimeSlot{slot}
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, slot, false),
		checkOutEvent("09:00:00", "12:00:00", 0),
	}

	d := ValidateRegularCheckIn(slots, events, minutes("12:30"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonNoMoreSlots, d.Reason)
}

func TestValidateRegularCheckIn_SlotExpiredAfterLateWindow(t *testing.T) {
	// One slot, 121 minutes gone: the regular path has no slot left, while
	// the late path still surfaces the missed slot.
	slots := []schedule.TimeSlot{slotAt("09:00", "17:00")}

	d := ValidateRegularCheckIn(slots, nil, minutes("11:01"))
	assert.Equal(t, attendance.ReasonNoMoreSlots, d.Reason)

	d = ValidateLateCheckIn(slots, nil, minutes("11:01"))
	assert.Equal(t, attendance.ReasonTooLateForLate, d.Reason)
}

func TestValidateRegularCheckIn_LateCheckInDone(t *testing.T) {
	slot := slotAt("09:00", "12:00")
	slots := []schedule.TimeSlot{slot}
	// Late check-in recorded for slot 0, closed by a checkout row that did
	// not carry the slot linkage back, so the slot never reads as completed.
	events := []attendance.Event{
		checkInEvent("09:45:00", 0, slot, true),
		checkOutEvent("", "10:00:00", 1),
	}

	d := ValidateRegularCheckIn(slots, events, minutes("10:15"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonLateCheckInDone, d.Reason)
}

func TestValidateRegularCheckIn_MissedRegularWindowOnLaterSlot(t *testing.T) {
	first := slotAt("09:00", "12:00")
	second := slotAt("13:00", "17:00")
	slots := []schedule.TimeSlot{first, second}
	events := []attendance.Event{
		checkInEvent("09:00:00", 0, first, false),
		checkOutEvent("09:00:00", "12:00:00", 0),
	}

	// 13:45 is 45 minutes past the second slot's start: its own regular
	// window has closed, so the regular path points at the late path.
	d := ValidateRegularCheckIn(slots, events, minutes("13:45"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonMissedRegularWindow, d.Reason)

	d = ValidateLateCheckIn(slots, events, minutes("13:45"))
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.SlotIndex)
}

func TestValidateRegularCheckOut(t *testing.T) {
	slot := slotAt("09:00", "17:00")

	t.Run("not checked in", func(t *testing.T) {
		d := ValidateRegularCheckOut(nil, minutes("17:00"))
		assert.False(t, d.Allowed)
		assert.Equal(t, attendance.ReasonNotCheckedIn, d.Reason)
	})

	t.Run("allowed after check-in", func(t *testing.T) {
		events := []attendance.Event{checkInEvent("09:15:00", 0, slot, false)}
		d := ValidateRegularCheckOut(events, minutes("17:05"))
		assert.True(t, d.Allowed)
		require.NotNil(t, d.LastCheckIn)
		assert.Equal(t, "09:15:00", d.LastCheckIn.CheckInTime)
	})

	t.Run("checkout not after checkin", func(t *testing.T) {
		events := []attendance.Event{checkInEvent("09:15:00", 0, slot, false)}
		d := ValidateRegularCheckOut(events, minutes("09:15"))
		assert.False(t, d.Allowed)
		assert.Equal(t, attendance.ReasonInvalidTime, d.Reason)

		d = ValidateRegularCheckOut(events, minutes("09:00"))
		assert.Equal(t, attendance.ReasonInvalidTime, d.Reason)
	})

	t.Run("recent checkout guard", func(t *testing.T) {
		events := []attendance.Event{
			checkInEvent("09:00:00", 0, slot, false),
			checkOutEvent("09:00:00", "11:55:00", 0),
			checkInEvent("12:00:00", 1, slotAt("12:00", "17:00"), false),
		}
		d := ValidateRegularCheckOut(events, minutes("12:03"))
		assert.False(t, d.Allowed)
		assert.Equal(t, attendance.ReasonRecentCheckOut, d.Reason)
	})
}

func TestValidateLateCheckOut(t *testing.T) {
	slot := slotAt("09:00", "17:00")

	t.Run("not late yet against scheduled checkout", func(t *testing.T) {
		events := []attendance.Event{checkInEvent("09:00:00", 0, slot, false)}
		d := ValidateLateCheckOut(events, minutes("17:20"))
		assert.False(t, d.Allowed)
		assert.Equal(t, attendance.ReasonNotLateYet, d.Reason)
	})

	t.Run("allowed once past scheduled checkout plus 30", func(t *testing.T) {
		events := []attendance.Event{checkInEvent("09:00:00", 0, slot, false)}
		d := ValidateLateCheckOut(events, minutes("17:31"))
		assert.True(t, d.Allowed)
	})

	t.Run("no scheduled checkout allows unconditionally", func(t *testing.T) {
		e := checkInEvent("09:00:00", 0, slot, false)
		e.ScheduledCheckOut = nil
		d := ValidateLateCheckOut([]attendance.Event{e}, minutes("10:00"))
		assert.True(t, d.Allowed)
	})
}

func TestCheckInCheckOutScenario(t *testing.T) {
	// Monday schedule with one 09:00-17:00 slot, walked through a full day.
	slot := slotAt("09:00", "17:00")
	slots := []schedule.TimeSlot{slot}

	d := ValidateRegularCheckIn(slots, nil, minutes("09:15"))
	require.True(t, d.Allowed)
	assert.Equal(t, 0, d.SlotIndex)

	events := []attendance.Event{checkInEvent("09:15:00", d.SlotIndex, slot, false)}

	d = ValidateRegularCheckIn(slots, events, minutes("09:16"))
	assert.False(t, d.Allowed)
	assert.Equal(t, attendance.ReasonAlreadyCheckedIn, d.Reason)

	d = ValidateRegularCheckOut(events, minutes("17:05"))
	assert.True(t, d.Allowed)
	require.NotNil(t, d.LastCheckIn)
	assert.Equal(t, "09:15:00", d.LastCheckIn.CheckInTime)
}
