package schedule

import "time"

// TimeSlot is one scheduled check-in/check-out pair for a weekday.
// Times are local wall-clock "HH:MM" strings. A slot's identity is its
// index position in the day's list; the stored order is never re-sorted.
type TimeSlot struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// WeekSchedule is an employee's schedule for one week: weekday name to an
// ordered slot list. Saved wholesale; there is no per-slot versioning.
type WeekSchedule struct {
	UserID    string
	WeekStart time.Time
	Days      map[string][]TimeSlot
	UpdatedAt time.Time
}

// HasDay reports whether the schedule has at least one slot for day.
func (s WeekSchedule) HasDay(day string) bool {
	return len(s.Days[day]) > 0
}

// DaySlots returns the slot list for day in stored order.
func (s WeekSchedule) DaySlots(day string) []TimeSlot {
	return s.Days[day]
}
