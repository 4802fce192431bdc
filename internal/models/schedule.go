package models

import (
	"strings"

	"github.com/habito-app/habito/internal/constants"
)

// ScheduleItem is one hour slot of a day plan. At most one item exists per
// hour per date, enforced by upsert-by-hour logic in the collection store.
// A blank activity means the slot is unset and does not count toward
// completion totals.
type ScheduleItem struct {
	ID        string                     `json:"id"`
	Hour      int                        `json:"hour"` // 0-23
	Activity  string                     `json:"activity"`
	Completed bool                       `json:"completed"`
	Category  constants.ScheduleCategory `json:"category"`
}

// Active reports whether the slot holds a real activity.
func (i ScheduleItem) Active() bool {
	return strings.TrimSpace(i.Activity) != ""
}

// ScheduleData maps a local date key to that day's items. Order within a day
// is irrelevant; consumers index by hour.
type ScheduleData map[string][]ScheduleItem

// NormalizeScheduleCategory coerces an arbitrary string onto the closed
// category set, defaulting to "other" rather than propagating garbage.
func NormalizeScheduleCategory(s string) constants.ScheduleCategory {
	switch c := constants.ScheduleCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case constants.ScheduleWork, constants.ScheduleHealth, constants.ScheduleRest,
		constants.ScheduleFocus, constants.ScheduleOther:
		return c
	}
	return constants.ScheduleOther
}
