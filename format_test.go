package jsonval

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		s     string
		valid bool
	}{
		{"1963-06-19", true},
		{"2020-02-30", false},
		{"06/19/1963", false},
		{"1998-1-20", false},
	}
	for _, tc := range tests {
		if got := formatDate(tc.s); got != tc.valid {
			t.Errorf("formatDate(%q) = %v, want %v", tc.s, got, tc.valid)
		}
	}
}

func TestFormatIPv4(t *testing.T) {
	tests := []struct {
		s     string
		valid bool
	}{
		{"192.168.0.1", true},
		{"256.1.1.1", false},
		{"192.168.0", false},
		{"01.1.1.1", false},
	}
	for _, tc := range tests {
		if got := formatIPv4(tc.s); got != tc.valid {
			t.Errorf("formatIPv4(%q) = %v, want %v", tc.s, got, tc.valid)
		}
	}
}

func TestFormatUUID(t *testing.T) {
	if !formatUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479") {
		t.Error("valid uuid rejected")
	}
	if formatUUID("not-a-uuid") {
		t.Error("invalid uuid accepted")
	}
}

func TestFormatIgnoresWrongKind(t *testing.T) {
	// Non-string values are vacuously valid for a string-shaped format:
	// the `type` keyword is responsible for kind mismatches.
	if !formatDate(42) {
		t.Error("formatDate should ignore non-string values")
	}
}

func TestStrictFormatsOverridesLaxDefault(t *testing.T) {
	table := defaultFormats()
	if !table["hostname"]("not_a_hostname") {
		t.Fatal("lax default should always pass")
	}
	strictFormats(table)
	if table["hostname"]("not_a_hostname") {
		t.Fatal("strict hostname should reject an underscore label")
	}
}
