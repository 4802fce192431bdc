// Package tui renders the dashboard: today's summary, schedule, habits,
// events and notes, laid out in the user's stored widget order.
package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"

	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/storage"
	"github.com/habito-app/habito/internal/theme"
	"github.com/habito-app/habito/internal/utils"
)

// section identifies one interactive widget. Only schedule and habits take a
// cursor; the rest are display-only.
type section string

const (
	sectionSummary  section = "summary"
	sectionSchedule section = "schedule"
	sectionHabits   section = "habits"
	sectionEvents   section = "events"
	sectionNotes    section = "notes"
)

type Model struct {
	col    *storage.Collections
	user   *models.User
	styles theme.Styles
	keys   KeyMap
	help   help.Model

	order    []section
	focus    int
	cursor   int
	today    time.Time
	todayKey string

	habits   []models.Habit
	schedule []models.ScheduleItem
	events   []models.LifeEvent
	notes    []models.Note

	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(col *storage.Collections, user *models.User, colors theme.Colors) Model {
	m := Model{
		col:    col,
		user:   user,
		styles: theme.NewStyles(colors),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		today:  time.Now(),
	}
	m.todayKey = utils.DateKey(m.today)
	m.order = loadOrder(col)
	m.refresh()
	m.focusFirstInteractive()
	return m
}

// loadOrder maps the stored widget names onto sections, dropping anything
// unrecognized so a stale order never breaks the render.
func loadOrder(col *storage.Collections) []section {
	known := map[string]section{
		"summary":  sectionSummary,
		"schedule": sectionSchedule,
		"habits":   sectionHabits,
		"events":   sectionEvents,
		"notes":    sectionNotes,
	}
	var order []section
	for _, w := range col.WidgetOrder() {
		if s, ok := known[w]; ok {
			order = append(order, s)
		}
	}
	if len(order) == 0 {
		order = []section{sectionSummary, sectionSchedule, sectionHabits, sectionEvents, sectionNotes}
	}
	return order
}

// refresh reloads every collection from the store.
func (m *Model) refresh() {
	m.habits = m.col.Habits()
	m.events = m.col.Events()
	m.notes = m.col.Notes()

	items := m.col.Schedule()[m.todayKey]
	sort.Slice(items, func(i, j int) bool { return items[i].Hour < items[j].Hour })
	active := items[:0]
	for _, it := range items {
		if it.Active() {
			active = append(active, it)
		}
	}
	m.schedule = active
}

func (m *Model) focusFirstInteractive() {
	for i, s := range m.order {
		if s == sectionSchedule || s == sectionHabits {
			m.focus = i
			return
		}
	}
}

func (m Model) focusedSection() section {
	if m.focus < 0 || m.focus >= len(m.order) {
		return sectionSummary
	}
	return m.order[m.focus]
}

// cursorMax is the highest valid cursor index in the focused section.
func (m Model) cursorMax() int {
	switch m.focusedSection() {
	case sectionSchedule:
		return len(m.schedule) - 1
	case sectionHabits:
		return len(m.habits) - 1
	}
	return 0
}
