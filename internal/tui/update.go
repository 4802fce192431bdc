package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habito-app/habito/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.nextSection()
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.cursorMax() {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.clampCursor()
			return m, nil
		}
	}
	return m, nil
}

// nextSection cycles focus through the interactive sections only.
func (m *Model) nextSection() {
	for i := 1; i <= len(m.order); i++ {
		next := (m.focus + i) % len(m.order)
		if m.order[next] == sectionSchedule || m.order[next] == sectionHabits {
			m.focus = next
			m.cursor = 0
			return
		}
	}
}

func (m *Model) clampCursor() {
	if max := m.cursorMax(); m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// toggleCurrent flips today's completion for the item under the cursor and
// re-reads the store so the view reflects what was actually persisted.
func (m *Model) toggleCurrent() {
	switch m.focusedSection() {
	case sectionHabits:
		if m.cursor >= len(m.habits) {
			return
		}
		_, m.err = m.col.ToggleHabit(m.habits[m.cursor].ID, m.todayKey)

	case sectionSchedule:
		if m.cursor >= len(m.schedule) {
			return
		}
		hour := m.schedule[m.cursor].Hour
		m.err = m.col.UpsertScheduleItem(m.todayKey, m.todayKey, hour, func(it *models.ScheduleItem) {
			it.Completed = !it.Completed
		})

	default:
		return
	}
	m.refresh()
	m.clampCursor()
}
