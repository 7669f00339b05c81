package schedule

import (
	"strconv"

	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/timeutil"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
)

// SaveScheduleRequest replaces the caller's weekly schedule wholesale.
type SaveScheduleRequest struct {
	UserID string                `json:"-"`
	Days   map[string][]TimeSlot `json:"days"`
}

func (r *SaveScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day with slots is required",
		})
	}

	for day, slots := range r.Days {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "days." + day,
				Message: "day must be a weekday name (Monday..Sunday)",
			})
			continue
		}
		for i, slot := range slots {
			field := "days." + day + "." + strconv.Itoa(i)
			if !validator.IsValidClockTime(slot.CheckIn) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".checkIn",
					Message: "checkIn must be HH:MM",
				})
			}
			if !validator.IsValidClockTime(slot.CheckOut) {
				errs = append(errs, validator.ValidationError{
					Field:   field + ".checkOut",
					Message: "checkOut must be HH:MM",
				})
			}
			if validator.IsValidClockTime(slot.CheckIn) && validator.IsValidClockTime(slot.CheckOut) &&
				timeutil.ToMinutes(slot.CheckOut) <= timeutil.ToMinutes(slot.CheckIn) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "checkOut must be after checkIn",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	UserID    string                `json:"user_id"`
	WeekStart string                `json:"week_start"`
	Days      map[string][]TimeSlot `json:"days"`
}
