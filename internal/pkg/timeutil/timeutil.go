// Package timeutil holds the clock-string conversions the attendance and
// schedule domains share. Times of day travel as "HH:MM" or "HH:MM:SS"
// strings and dates as "2006-01-02"; arithmetic happens on minutes since
// midnight.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToMinutes converts a clock string to minutes since midnight. Seconds are
// dropped, not rounded. Malformed input yields 0, matching the lenient
// handling history rows require: a bad stored value must not poison a whole
// day's aggregation.
func ToMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// FromMinutes converts minutes since midnight back to "HH:MM". Values of
// 1440 and above are not wrapped: 1500 renders as "25:00".
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns t's minutes since midnight in t's location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayName returns the full English weekday name, e.g. "Monday".
func DayName(t time.Time) string {
	return t.Weekday().String()
}

// TimeOfDay renders t as "HH:MM:SS".
func TimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// DateString renders t as "2006-01-02".
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDuration renders a minute total as "<h>h <m>m".
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// WeekStart returns the Monday of t's week at midnight in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}
