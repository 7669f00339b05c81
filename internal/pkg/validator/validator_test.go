package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "09:30:00", "23:59:59"}
	invalid := []string{"24:00", "9:30", "09:60", "09:30:60", "09-30", "", "0930"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	for _, day := range Weekdays() {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = false, want true", day)
		}
	}
	invalid := []string{"monday", "Mon", "Funday", ""}
	for _, day := range invalid {
		if IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = true, want false", day)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("b", slice) {
		t.Error("IsInSlice(\"b\") = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Error("IsInSlice(\"d\") = true, want false")
	}
}
