package timeutil

import (
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		name  string
		clock string
		want  int
	}{
		{"midnight", "00:00", 0},
		{"morning", "09:30", 570},
		{"end of day", "23:59", 1439},
		{"seconds dropped", "09:30:59", 570},
		{"malformed", "abc", 0},
		{"empty", "", 0},
		{"non numeric hour", "xx:30", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ToMinutes(c.clock); got != c.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", c.clock, got, c.want)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1500, "25:00"}, // no wraparound
	}
	for _, c := range cases {
		if got := FromMinutes(c.minutes); got != c.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m++ {
		if got := ToMinutes(FromMinutes(m)); got != m {
			t.Fatalf("round trip broke at %d: got %d", m, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{420, "7h 0m"},
		{425, "7h 5m"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.minutes); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC), "2025-06-02"},
		{"wednesday", time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC), "2025-06-02"},
		{"sunday rolls back", time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC), "2025-06-02"},
		{"across month", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "2025-06-30"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WeekStart(c.in)
			if DateString(got) != c.want {
				t.Errorf("WeekStart(%s) = %s, want %s", c.in, DateString(got), c.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("WeekStart must be midnight, got %s", got)
			}
		})
	}
}

func TestDayNameAndFormats(t *testing.T) {
	at := time.Date(2025, 6, 2, 9, 15, 30, 0, time.UTC)
	if got := DayName(at); got != "Monday" {
		t.Errorf("DayName = %q", got)
	}
	if got := TimeOfDay(at); got != "09:15:30" {
		t.Errorf("TimeOfDay = %q", got)
	}
	if got := DateString(at); got != "2025-06-02" {
		t.Errorf("DateString = %q", got)
	}
	if got := MinuteOfDay(at); got != 555 {
		t.Errorf("MinuteOfDay = %d", got)
	}
}
