package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/habito-app/habito/internal/constants"
)

func TestBuildPrompt(t *testing.T) {
	withFocus := BuildPrompt("2026-08-30", "ship the release")
	if !strings.Contains(withFocus, "ship the release") {
		t.Error("focus missing from prompt")
	}
	if !strings.Contains(withFocus, "2026-08-30") {
		t.Error("date missing from prompt")
	}

	blank := BuildPrompt("2026-08-30", "   ")
	if strings.Contains(blank, "main focus") {
		t.Error("blank focus should not produce a focus clause")
	}
	if !strings.Contains(blank, "balanced day") {
		t.Error("blank focus should ask for a balanced day")
	}
}

func TestNormalizeFillsAllHours(t *testing.T) {
	items, err := Normalize([]RawEntry{
		{Hour: 9, Activity: "Deep work", Category: "focus"},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(items) != 24 {
		t.Fatalf("expected 24 items, got %d", len(items))
	}
	for i, it := range items {
		if it.Hour != i {
			t.Errorf("items[%d].Hour = %d", i, it.Hour)
		}
		if it.ID == "" {
			t.Errorf("items[%d] missing id", i)
		}
	}

	if items[9].Activity != "Deep work" || items[9].Category != constants.ScheduleFocus {
		t.Errorf("model entry lost: %+v", items[9])
	}
	// Overnight fill sleeps, daytime fill is free time.
	if items[2].Activity != "Sleep" || items[2].Category != constants.ScheduleRest {
		t.Errorf("overnight fill: %+v", items[2])
	}
	if items[23].Activity != "Sleep" {
		t.Errorf("23:00 fill: %+v", items[23])
	}
	if items[14].Activity != "Free time" || items[14].Category != constants.ScheduleOther {
		t.Errorf("daytime fill: %+v", items[14])
	}
}

func TestNormalizeDropsBadEntries(t *testing.T) {
	items, err := Normalize([]RawEntry{
		{Hour: -1, Activity: "Underflow", Category: "work"},
		{Hour: 24, Activity: "Overflow", Category: "work"},
		{Hour: 9, Activity: "First", Category: "work"},
		{Hour: 9, Activity: "Duplicate", Category: "rest"},
		{Hour: 10, Activity: "   ", Category: "work"},
		{Hour: 11, Activity: "Odd", Category: "sorcery"},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if items[9].Activity != "First" {
		t.Errorf("first entry should win on duplicate hour, got %q", items[9].Activity)
	}
	if items[10].Activity == "" || items[10].Activity == "   " {
		t.Errorf("blank activity should be replaced by filler, got %q", items[10].Activity)
	}
	if items[11].Category != constants.ScheduleOther {
		t.Errorf("unknown category should coerce to other, got %q", items[11].Category)
	}
}

func TestNormalizeZeroUsableEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []RawEntry
	}{
		{"nil", nil},
		{"all out of range", []RawEntry{{Hour: 99, Activity: "x"}}},
		{"all blank", []RawEntry{{Hour: 9, Activity: "  "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.entries); !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("expected ErrEmptyResponse, got %v", err)
			}
		})
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	if _, err := NewGemini(t.Context(), ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestClassifyAPIError(t *testing.T) {
	quota := classifyAPIError(errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED"))
	if !errors.Is(quota, ErrQuotaExceeded) {
		t.Errorf("expected quota classification, got %v", quota)
	}

	other := classifyAPIError(errors.New("connection refused"))
	if errors.Is(other, ErrQuotaExceeded) {
		t.Error("generic failure misclassified as quota")
	}
}

func TestFallbackInsight(t *testing.T) {
	if got := FallbackInsight(3, 3); got != "Keep pushing forward." {
		t.Errorf("all done: %q", got)
	}
	if got := FallbackInsight(1, 3); got != "Consistency is the key to mastery." {
		t.Errorf("partial: %q", got)
	}
	if got := FallbackInsight(0, 0); got != "Consistency is the key to mastery." {
		t.Errorf("no habits: %q", got)
	}
}
