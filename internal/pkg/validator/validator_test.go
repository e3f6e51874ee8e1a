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

func TestIsValidPassport(t *testing.T) {
	valid := []string{"AB123456", "X98765", "T12345678901"}
	invalid := []string{"", "AB12", "AB 123456", "паспорт123", "A1234567890123456789012"}
	for _, p := range valid {
		if !IsValidPassport(p) {
			t.Errorf("IsValidPassport(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPassport(p) {
			t.Errorf("IsValidPassport(%q) = true, want false", p)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"0501234567", "050-123-4567", "+972501234567", "972501234567"}
	invalid := []string{"", "123456", "0211234567", "05012345", "+15551234567"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidMonthYear(t *testing.T) {
	valid := []string{"01-2025", "12-2024", "06-1999"}
	invalid := []string{"", "13-2025", "00-2025", "1-2025", "2025-01", "01/2025"}
	for _, my := range valid {
		if !IsValidMonthYear(my) {
			t.Errorf("IsValidMonthYear(%q) = false, want true", my)
		}
	}
	for _, my := range invalid {
		if IsValidMonthYear(my) {
			t.Errorf("IsValidMonthYear(%q) = true, want false", my)
		}
	}
}

func TestIsValidTimeInMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  bool
	}{
		{0, true},
		{480, true},
		{1440, true},
		{-1, false},
		{1441, false},
	}
	for _, c := range cases {
		got := IsValidTimeInMinutes(c.input)
		if got != c.want {
			t.Errorf("IsValidTimeInMinutes(%d) = %v, want %v", c.input, got, c.want)
		}
	}
}
