package constants

// HabitCategory classifies a habit.
type HabitCategory string

// ScheduleCategory classifies an hourly schedule item.
type ScheduleCategory string

// VisionCategory is the planning horizon of a vision board item.
type VisionCategory string

const (
	AppName            = "habito"
	DefaultKeyringUser = "gemini-api-key"
	DefaultConfigPath  = "~/.config/habito/habito.json"
	Version            = "v0.1.0"

	// DateFormat is the local calendar date key used everywhere (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// GeminiModel is the text model used for schedule generation and insights
	GeminiModel = "gemini-2.5-flash"
	EnvAPIKey   = "GEMINI_API_KEY"

	// Well-known store slots
	UsersKey   = "habito_users_db"
	SessionKey = "habito_current_session"
	ThemeKey   = "habito_theme"

	// GuestID namespaces data written without an active session
	GuestID = "guest"

	// Per-user collection base keys
	BaseKeyHabits      = "habito_habits"
	BaseKeySchedule    = "habito_schedule"
	BaseKeyEvents      = "habito_events"
	BaseKeyVisions     = "habito_visions"
	BaseKeyNotes       = "habito_notes"
	BaseKeyJournal     = "habito_journal"
	BaseKeyWidgetOrder = "habito_widget_order"

	// Habit categories
	HabitHealth       HabitCategory = "health"
	HabitProductivity HabitCategory = "productivity"
	HabitMindfulness  HabitCategory = "mindfulness"
	HabitCreative     HabitCategory = "creative"

	// Schedule categories
	ScheduleWork   ScheduleCategory = "work"
	ScheduleHealth ScheduleCategory = "health"
	ScheduleRest   ScheduleCategory = "rest"
	ScheduleFocus  ScheduleCategory = "focus"
	ScheduleOther  ScheduleCategory = "other"

	// Vision categories
	VisionDaily     VisionCategory = "DAILY"
	VisionWeekly    VisionCategory = "WEEKLY"
	VisionMonthly   VisionCategory = "MONTHLY"
	VisionYearly    VisionCategory = "YEARLY"
	VisionFiveYears VisionCategory = "5_YEARS"
)

// BaseKeys lists every per-user collection base key, in migration order.
func BaseKeys() []string {
	return []string{
		BaseKeyHabits,
		BaseKeySchedule,
		BaseKeyEvents,
		BaseKeyVisions,
		BaseKeyNotes,
		BaseKeyJournal,
		BaseKeyWidgetOrder,
	}
}

// DefaultWidgetOrder is the dashboard section order used when none is stored.
func DefaultWidgetOrder() []string {
	return []string{"summary", "schedule", "habits", "events", "notes"}
}
