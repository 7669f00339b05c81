package attendance

import (
	"fmt"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
)

// Gate thresholds, in minutes. The regular check-in window for a slot runs
// from start-60 to start+30; the late window from start+30 to start+120.
const (
	regularEarlyMinutes = 60
	regularLateMinutes  = 30
	lateWindowMinutes   = 120
	recentEventMinutes  = 10
	slotMatchTolerance  = 15
	lateCheckOutAfter   = 30
)

// The validators are pure: they see one snapshot of today's slots and
// events plus a single clock reading (minutes since midnight) and return a
// Decision. Callers must evaluate the regular and late path against the
// same snapshot to avoid the state changing between the two checks.

// ValidateRegularCheckIn decides whether a regular check-in is currently
// permitted and, if so, against which slot.
func ValidateRegularCheckIn(slots []schedule.TimeSlot, events []attendance.Event, nowMin int) attendance.Decision {
	if len(slots) == 0 {
		return attendance.Reject(attendance.ReasonNoSchedule, "You have no schedule for today.")
	}
	if isCheckedIn(events) {
		return attendance.Reject(attendance.ReasonAlreadyCheckedIn, "You are already checked in.")
	}
	if hasRecentEvent(checkIns(events), nowMin) {
		return attendance.Reject(attendance.ReasonRecentCheckIn, "You checked in less than 10 minutes ago.")
	}

	slot, idx, missedRegular := nextScheduledSlot(slots, events, nowMin, false)
	if slot == nil {
		return attendance.Reject(attendance.ReasonNoMoreSlots, "All of today's scheduled slots are done.")
	}
	if hasLateCheckInForSlot(events, idx) {
		return attendance.Reject(attendance.ReasonLateCheckInDone, "A late check-in was already recorded for this slot.")
	}

	start := timeutil.ToMinutes(slot.CheckIn)
	windowStart := start - regularEarlyMinutes
	windowEnd := start + regularLateMinutes

	// For slots after the first, a closed regular window forces the late
	// path outright; the first slot reports TOO_EARLY/TOO_LATE instead.
	if idx > 0 && missedRegular {
		return attendance.Reject(attendance.ReasonMissedRegularWindow,
			fmt.Sprintf("The regular window for the %s slot has passed. Use late check-in.", slot.CheckIn))
	}
	if nowMin < windowStart {
		return attendance.Reject(attendance.ReasonTooEarly,
			fmt.Sprintf("Too early to check in. The window for the %s slot opens at %s.", slot.CheckIn, timeutil.FromMinutes(windowStart)))
	}
	if nowMin > windowEnd {
		return attendance.Reject(attendance.ReasonTooLate,
			fmt.Sprintf("Regular check-in closed. You are %s past the %s slot. Use late check-in.", lateByText(nowMin-start), slot.CheckIn))
	}

	return attendance.Allow(slot, idx, fmt.Sprintf("Check-in permitted for the %s slot.", slot.CheckIn))
}

// ValidateLateCheckIn decides whether a late check-in is permitted: more
// than 30 and at most 120 minutes past the slot's scheduled start. The
// caller must supply a non-empty reason before persisting the event.
func ValidateLateCheckIn(slots []schedule.TimeSlot, events []attendance.Event, nowMin int) attendance.Decision {
	if len(slots) == 0 {
		return attendance.Reject(attendance.ReasonNoSchedule, "You have no schedule for today.")
	}
	if isCheckedIn(events) {
		return attendance.Reject(attendance.ReasonAlreadyCheckedIn, "You are already checked in.")
	}
	if hasRecentEvent(checkIns(events), nowMin) {
		return attendance.Reject(attendance.ReasonRecentCheckIn, "You checked in less than 10 minutes ago.")
	}

	// Unlike the regular path, the search keeps slots whose late window has
	// already closed, so a fully missed slot answers TOO_LATE_FOR_LATE
	// instead of the misleading NO_MORE_SLOTS.
	slot, idx, _ := nextScheduledSlot(slots, events, nowMin, true)
	if slot == nil {
		return attendance.Reject(attendance.ReasonNoMoreSlots, "All of today's scheduled slots are done.")
	}

	start := timeutil.ToMinutes(slot.CheckIn)
	if nowMin <= start+regularLateMinutes {
		return attendance.Reject(attendance.ReasonUseRegular,
			fmt.Sprintf("You are not late yet for the %s slot. Use regular check-in.", slot.CheckIn))
	}
	if nowMin > start+lateWindowMinutes {
		return attendance.Reject(attendance.ReasonTooLateForLate,
			fmt.Sprintf("The %s slot was missed entirely (%s past start). Contact an administrator.", slot.CheckIn, lateByText(nowMin-start)))
	}

	return attendance.Allow(slot, idx,
		fmt.Sprintf("Late check-in permitted for the %s slot (%s late). A reason is required.", slot.CheckIn, lateByText(nowMin-start)))
}

// ValidateRegularCheckOut decides whether a check-out is permitted and
// returns the open check-in it will close.
func ValidateRegularCheckOut(events []attendance.Event, nowMin int) attendance.Decision {
	if !isCheckedIn(events) {
		return attendance.Reject(attendance.ReasonNotCheckedIn, "You are not checked in.")
	}
	open := openCheckIn(events)
	if open == nil {
		return attendance.Reject(attendance.ReasonNoCheckInFound, "No open check-in found to close.")
	}
	if hasRecentEvent(checkOuts(events), nowMin) {
		return attendance.Reject(attendance.ReasonRecentCheckOut, "You checked out less than 10 minutes ago.")
	}
	// Times of day, not elapsed time: a shift crossing midnight cannot be
	// closed on the next day.
	if nowMin <= timeutil.ToMinutes(open.CheckInTime) {
		return attendance.Reject(attendance.ReasonInvalidTime, "Check-out time must be after the check-in time.")
	}

	return attendance.AllowCheckOut(open, "Check-out permitted.")
}

// ValidateLateCheckOut permits a check-out flagged late: only once the
// open check-in's scheduled check-out is more than 30 minutes past, or
// unconditionally when no scheduled check-out was recorded.
func ValidateLateCheckOut(events []attendance.Event, nowMin int) attendance.Decision {
	if !isCheckedIn(events) {
		return attendance.Reject(attendance.ReasonNotCheckedIn, "You are not checked in.")
	}
	open := openCheckIn(events)
	if open == nil {
		return attendance.Reject(attendance.ReasonNoCheckInFound, "No open check-in found to close.")
	}
	if hasRecentEvent(checkOuts(events), nowMin) {
		return attendance.Reject(attendance.ReasonRecentCheckOut, "You checked out less than 10 minutes ago.")
	}
	if nowMin <= timeutil.ToMinutes(open.CheckInTime) {
		return attendance.Reject(attendance.ReasonInvalidTime, "Check-out time must be after the check-in time.")
	}

	if open.ScheduledCheckOut != nil {
		schedOut := timeutil.ToMinutes(*open.ScheduledCheckOut)
		if nowMin <= schedOut+lateCheckOutAfter {
			return attendance.Reject(attendance.ReasonNotLateYet,
				fmt.Sprintf("Not late yet: scheduled check-out is %s. Use regular check-out.", *open.ScheduledCheckOut))
		}
	}

	return attendance.AllowCheckOut(open, "Late check-out permitted.")
}

// nextScheduledSlot walks today's slots in stored order and returns the
// first one still available: not completed, not held by an open check-in,
// and (unless includeExpired) with its late window still open. The third
// return is true when the slot's own regular window has already closed.
func nextScheduledSlot(slots []schedule.TimeSlot, events []attendance.Event, nowMin int, includeExpired bool) (*schedule.TimeSlot, int, bool) {
	for i := range slots {
		slot := slots[i]
		if slotCompleted(events, i, slot) {
			continue
		}
		if hasOpenCheckInForSlot(events, slot) {
			continue
		}
		start := timeutil.ToMinutes(slot.CheckIn)
		if !includeExpired && nowMin > start+lateWindowMinutes {
			continue
		}
		return &slot, i, nowMin > start+regularLateMinutes
	}
	return nil, -1, false
}

// slotCompleted reports whether slot i already has a check-in and a
// matching check-out, matched by slot index first, then by check-in time
// equality.
func slotCompleted(events []attendance.Event, i int, slot schedule.TimeSlot) bool {
	for _, ci := range checkIns(events) {
		if !eventBelongsToSlot(ci, i, slot) {
			continue
		}
		for _, co := range checkOuts(events) {
			if co.SlotIndex != nil && *co.SlotIndex == i {
				return true
			}
			if co.CheckInTime != "" && co.CheckInTime == ci.CheckInTime {
				return true
			}
		}
	}
	return false
}

// hasOpenCheckInForSlot reports whether an unclosed check-in is holding
// this slot: one whose scheduled time falls within 15 minutes of the
// slot's start and that no check-out has closed.
func hasOpenCheckInForSlot(events []attendance.Event, slot schedule.TimeSlot) bool {
	open := openCheckIn(events)
	if open == nil {
		return false
	}
	scheduled := open.CheckInTime
	if open.ScheduledCheckIn != nil {
		scheduled = *open.ScheduledCheckIn
	}
	diff := timeutil.ToMinutes(scheduled) - timeutil.ToMinutes(slot.CheckIn)
	if diff < 0 {
		diff = -diff
	}
	return diff <= slotMatchTolerance
}

// eventBelongsToSlot associates a check-in with a slot by its recorded
// slot index, falling back to the scheduled time being near the slot start.
func eventBelongsToSlot(e attendance.Event, i int, slot schedule.TimeSlot) bool {
	if e.SlotIndex != nil {
		return *e.SlotIndex == i
	}
	scheduled := e.CheckInTime
	if e.ScheduledCheckIn != nil {
		scheduled = *e.ScheduledCheckIn
	}
	diff := timeutil.ToMinutes(scheduled) - timeutil.ToMinutes(slot.CheckIn)
	if diff < 0 {
		diff = -diff
	}
	return diff <= slotMatchTolerance
}

// openCheckIn returns the latest check-in that no check-out has closed.
// Check-outs are consumed by slot index first, then by check-in time
// equality, then by the earliest one strictly later in the day.
func openCheckIn(events []attendance.Event) *attendance.Event {
	ins := checkIns(events)
	outs := checkOuts(events)
	consumed := make([]bool, len(outs))

	var open *attendance.Event
	for idx := range ins {
		ci := ins[idx]
		matched := false
		// Pass 1: slot index.
		for j := range outs {
			if consumed[j] || ci.SlotIndex == nil || outs[j].SlotIndex == nil {
				continue
			}
			if *outs[j].SlotIndex == *ci.SlotIndex {
				consumed[j] = true
				matched = true
				break
			}
		}
		// Pass 2: check-in time carried on the checkout row.
		if !matched {
			for j := range outs {
				if consumed[j] || outs[j].CheckInTime == "" {
					continue
				}
				if outs[j].CheckInTime == ci.CheckInTime {
					consumed[j] = true
					matched = true
					break
				}
			}
		}
		// Pass 3: chronological nearest available.
		if !matched {
			ciMin := timeutil.ToMinutes(ci.CheckInTime)
			for j := range outs {
				if consumed[j] {
					continue
				}
				if timeutil.ToMinutes(outs[j].CheckOutTime) > ciMin {
					consumed[j] = true
					matched = true
					break
				}
			}
		}
		if !matched {
			open = &ins[idx]
		}
	}
	return open
}

// hasRecentEvent reports whether any event's recorded time of day falls in
// the last 10 minutes relative to now. Minutes of day, not wall-clock
// elapsed time; a recorded time later than now never triggers the guard.
func hasRecentEvent(events []attendance.Event, nowMin int) bool {
	for _, e := range events {
		diff := nowMin - timeutil.ToMinutes(e.EventTime())
		if diff >= 0 && diff < recentEventMinutes {
			return true
		}
	}
	return false
}

func hasLateCheckInForSlot(events []attendance.Event, i int) bool {
	for _, e := range checkIns(events) {
		if e.IsLate && e.SlotIndex != nil && *e.SlotIndex == i {
			return true
		}
	}
	return false
}

func isCheckedIn(events []attendance.Event) bool {
	return len(checkIns(events)) > len(checkOuts(events))
}

func checkIns(events []attendance.Event) []attendance.Event {
	var out []attendance.Event
	for _, e := range events {
		if e.Type == attendance.EventCheckIn {
			out = append(out, e)
		}
	}
	return out
}

func checkOuts(events []attendance.Event) []attendance.Event {
	var out []attendance.Event
	for _, e := range events {
		if e.Type == attendance.EventCheckOut {
			out = append(out, e)
		}
	}
	return out
}

func lateByText(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d minutes", minutes)
}
