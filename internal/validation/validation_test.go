package validation

import (
	"testing"
	"time"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // first digit below 6
		{"987654321", false},  // too short
		{"98765432100", false},
		{"98765X3210", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		uname   string
		phone   string
		wantErr bool
	}{
		{"valid", "Asha", "9876543210", false},
		{"blank name", "  ", "9876543210", true},
		{"blank phone", "Asha", "", true},
		{"bad phone", "Asha", "12345", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.uname, tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration(%q, %q) = %v", tt.uname, tt.phone, err)
			}
		})
	}
}

func TestValidHex(t *testing.T) {
	for _, ok := range []string{"#8b5cf6", "8b5cf6", "#fff", "ABC"} {
		if !ValidHex(ok) {
			t.Errorf("ValidHex(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "#12345", "red", "#gggggg"} {
		if ValidHex(bad) {
			t.Errorf("ValidHex(%q) = true", bad)
		}
	}
}

func TestValidHour(t *testing.T) {
	if !ValidHour(0) || !ValidHour(23) {
		t.Error("boundary hours should be valid")
	}
	if ValidHour(-1) || ValidHour(24) {
		t.Error("out-of-range hours should be invalid")
	}
}

func TestValidDateKey(t *testing.T) {
	if !ValidDateKey("2026-08-30") {
		t.Error("valid key rejected")
	}
	for _, bad := range []string{"30-08-2026", "2026-13-01", "2026-08-30T00:00:00Z", ""} {
		if ValidDateKey(bad) {
			t.Errorf("ValidDateKey(%q) = true", bad)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("mon, Wednesday, 5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestParseWeekdaysDedupes(t *testing.T) {
	got, err := ParseWeekdays("mon,monday,1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != time.Monday {
		t.Errorf("got %v, want [Monday]", got)
	}
}

func TestParseWeekdaysErrors(t *testing.T) {
	if _, err := ParseWeekdays("funday"); err == nil {
		t.Error("expected error for invalid name")
	}
	if _, err := ParseWeekdays("7"); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := ParseWeekdays("  ,  "); err == nil {
		t.Error("expected error for empty list")
	}
}
