package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/habito-app/habito/internal/constants"
)

func TestNormalizeIcon(t *testing.T) {
	if got := NormalizeIcon("Flame"); got != IconFlame {
		t.Errorf("NormalizeIcon(Flame) = %q", got)
	}
	if got := NormalizeIcon("Sparkles"); got != IconCircle {
		t.Errorf("unknown icon should fall back to Circle, got %q", got)
	}
	if NormalizeIcon("Flame").Glyph() == "" {
		t.Error("every icon needs a glyph")
	}
}

func TestNormalizeHabitCategory(t *testing.T) {
	if got := NormalizeHabitCategory("health"); got != constants.HabitHealth {
		t.Errorf("got %q", got)
	}
	if got := NormalizeHabitCategory("unknown"); got != constants.HabitProductivity {
		t.Errorf("unknown category should default, got %q", got)
	}
}

func TestNormalizeScheduleCategory(t *testing.T) {
	tests := []struct {
		in   string
		want constants.ScheduleCategory
	}{
		{"work", constants.ScheduleWork},
		{" Rest ", constants.ScheduleRest},
		{"FOCUS", constants.ScheduleFocus},
		{"sorcery", constants.ScheduleOther},
		{"", constants.ScheduleOther},
	}
	for _, tt := range tests {
		if got := NormalizeScheduleCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeScheduleCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHabitScheduledAndCompleted(t *testing.T) {
	h := Habit{
		Frequency: []time.Weekday{time.Monday},
		History:   map[string]bool{"2026-08-24": true},
	}
	if !h.ScheduledOn(time.Monday) || h.ScheduledOn(time.Tuesday) {
		t.Error("ScheduledOn wrong")
	}
	if !h.CompletedOn("2026-08-24") || h.CompletedOn("2026-08-25") {
		t.Error("CompletedOn wrong")
	}

	// Nil history is safe to query.
	var empty Habit
	if empty.CompletedOn("2026-08-24") {
		t.Error("nil history should read as not completed")
	}
}

func TestHabitJSONShape(t *testing.T) {
	h := Habit{
		ID:        "abc",
		Name:      "Read",
		Icon:      IconBook,
		Color:     "#8b5cf6",
		Category:  constants.HabitProductivity,
		Frequency: []time.Weekday{time.Monday},
		History:   map[string]bool{"2026-08-24": true},
	}
	raw, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"id", "name", "icon", "color", "category", "frequency", "history"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("missing json field %q", field)
		}
	}
}

func TestScheduleItemActive(t *testing.T) {
	if (ScheduleItem{Activity: "  "}).Active() {
		t.Error("blank activity should be inactive")
	}
	if !(ScheduleItem{Activity: "Work"}).Active() {
		t.Error("non-blank activity should be active")
	}
}
