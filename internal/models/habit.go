package models

import (
	"time"

	"github.com/habito-app/habito/internal/constants"
)

// HabitIcon is a symbolic icon name from a closed palette. Unknown names
// coming out of storage are normalized to IconCircle rather than looked up
// dynamically.
type HabitIcon string

const (
	IconCircle   HabitIcon = "Circle"
	IconFlame    HabitIcon = "Flame"
	IconBook     HabitIcon = "Book"
	IconDumbbell HabitIcon = "Dumbbell"
	IconLeaf     HabitIcon = "Leaf"
	IconPen      HabitIcon = "Pen"
	IconMoon     HabitIcon = "Moon"
	IconSun      HabitIcon = "Sun"
	IconDroplet  HabitIcon = "Droplet"
	IconMusic    HabitIcon = "Music"
)

var iconGlyphs = map[HabitIcon]string{
	IconCircle:   "○",
	IconFlame:    "🔥",
	IconBook:     "📖",
	IconDumbbell: "🏋",
	IconLeaf:     "🌿",
	IconPen:      "✎",
	IconMoon:     "🌙",
	IconSun:      "☀",
	IconDroplet:  "💧",
	IconMusic:    "♪",
}

// NormalizeIcon maps an arbitrary stored string onto the closed icon set.
func NormalizeIcon(s string) HabitIcon {
	if _, ok := iconGlyphs[HabitIcon(s)]; ok {
		return HabitIcon(s)
	}
	return IconCircle
}

// Glyph returns a terminal-renderable glyph for the icon.
func (i HabitIcon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconCircle]
}

// NormalizeHabitCategory coerces an arbitrary string onto the habit
// category set, defaulting to productivity.
func NormalizeHabitCategory(s string) constants.HabitCategory {
	switch c := constants.HabitCategory(s); c {
	case constants.HabitHealth, constants.HabitProductivity,
		constants.HabitMindfulness, constants.HabitCreative:
		return c
	}
	return constants.HabitProductivity
}

// Habit is a recurring commitment scheduled on fixed weekdays.
//
// History maps a local date key to "completed that day". Absence means not
// completed; a date only counts toward the habit at all if its weekday is in
// Frequency. "Missed" is never stored, it is derived as scheduled-and-absent.
type Habit struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Icon      HabitIcon               `json:"icon"`
	Color     string                  `json:"color"`
	Category  constants.HabitCategory `json:"category"`
	Frequency []time.Weekday          `json:"frequency"` // 0=Sunday .. 6=Saturday
	History   map[string]bool         `json:"history"`
}

// ScheduledOn reports whether the habit is scheduled on the given weekday.
func (h Habit) ScheduledOn(d time.Weekday) bool {
	for _, wd := range h.Frequency {
		if wd == d {
			return true
		}
	}
	return false
}

// CompletedOn reports whether the habit was marked done on the given date key.
func (h Habit) CompletedOn(dateKey string) bool {
	return h.History[dateKey]
}
