package attendance

import (
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
)

// Reason is a closed code explaining a validation outcome. Clients branch on
// these (for example to decide whether to offer the late check-in path), so
// the sets per operation are part of the API.
type Reason string

const (
	ReasonOK Reason = "OK"

	// Check-in (regular and late share the preconditions)
	ReasonNoSchedule          Reason = "NO_SCHEDULE"
	ReasonAlreadyCheckedIn    Reason = "ALREADY_CHECKED_IN"
	ReasonRecentCheckIn       Reason = "RECENT_CHECKIN"
	ReasonNoMoreSlots         Reason = "NO_MORE_SLOTS"
	ReasonLateCheckInDone     Reason = "LATE_CHECKIN_DONE"
	ReasonMissedRegularWindow Reason = "MISSED_REGULAR_WINDOW"
	ReasonTooEarly            Reason = "TOO_EARLY"
	ReasonTooLate             Reason = "TOO_LATE"

	// Late check-in only
	ReasonUseRegular     Reason = "USE_REGULAR"
	ReasonTooLateForLate Reason = "TOO_LATE_FOR_LATE"

	// Check-out
	ReasonNotCheckedIn   Reason = "NOT_CHECKED_IN"
	ReasonNoCheckInFound Reason = "NO_CHECKIN_FOUND"
	ReasonRecentCheckOut Reason = "RECENT_CHECKOUT"
	ReasonInvalidTime    Reason = "INVALID_TIME"
	ReasonNotLateYet     Reason = "NOT_LATE_YET"
)

// Decision is the outcome of one validator evaluation. A disallowed action
// is a value, not an error: the message is surfaced to the user verbatim
// and the caller takes no further action.
type Decision struct {
	Allowed bool               `json:"allowed"`
	Reason  Reason             `json:"reason"`
	Message string             `json:"message"`
	Slot    *schedule.TimeSlot `json:"slot,omitempty"`
	// SlotIndex is valid only when Slot is set.
	SlotIndex int `json:"slot_index,omitempty"`
	// LastCheckIn is the open check-in a permitted check-out will close.
	LastCheckIn *Event `json:"last_check_in,omitempty"`
}

func Allow(slot *schedule.TimeSlot, slotIndex int, message string) Decision {
	return Decision{
		Allowed:   true,
		Reason:    ReasonOK,
		Message:   message,
		Slot:      slot,
		SlotIndex: slotIndex,
	}
}

func AllowCheckOut(lastCheckIn *Event, message string) Decision {
	return Decision{
		Allowed:     true,
		Reason:      ReasonOK,
		Message:     message,
		LastCheckIn: lastCheckIn,
	}
}

func Reject(reason Reason, message string) Decision {
	return Decision{
		Allowed: false,
		Reason:  reason,
		Message: message,
	}
}
