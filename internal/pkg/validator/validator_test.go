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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-01"); !ok {
		t.Error("IsValidDate(\"2025-06-01\") = false, want true")
	}
	invalid := []string{"2025-13-01", "2025-06-32", "06/01/2025", "2025-6-1", ""}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "98765 43210", "98765-43210"}
	invalid := []string{"12345", "abcdefghij", "", "98765432109876"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2025, 6, true},
		{2025, 0, false},
		{2025, 13, false},
		{1899, 6, false},
	}
	for _, c := range cases {
		if got := IsValidYearMonth(c.year, c.month); got != c.want {
			t.Errorf("IsValidYearMonth(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}
