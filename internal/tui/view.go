package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/habito-app/habito/internal/analytics"
	"github.com/habito-app/habito/internal/errors"
)

const maxRows = 8

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.styles.Title.Render("habito — "+m.user.Name)+"  "+m.styles.Muted.Render(m.todayKey))

	for i, s := range m.order {
		focused := i == m.focus
		switch s {
		case sectionSummary:
			sections = append(sections, m.viewSummary())
		case sectionSchedule:
			sections = append(sections, m.viewSchedule(focused))
		case sectionHabits:
			sections = append(sections, m.viewHabits(focused))
		case sectionEvents:
			sections = append(sections, m.viewEvents())
		case sectionNotes:
			sections = append(sections, m.viewNotes())
		}
	}

	if m.err != nil {
		sections = append(sections, m.styles.Missed.Render(errors.Format(m.err)))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header(title string, focused bool) string {
	if focused {
		return m.styles.Selected.Render("▸ " + title)
	}
	return m.styles.Header.Render("  " + title)
}

func (m Model) viewSummary() string {
	s := analytics.TodaySummary(m.habits, m.col.Schedule(), m.today)
	line := fmt.Sprintf("  tasks %d/%d (%d%%)   habits %d/%d (%d%%)",
		s.CompletedTasks, s.ActiveTasks, s.TaskPercent,
		s.CompletedHabits, s.ScheduledHabits, s.HabitPercent)
	if s.BestStreak > 0 {
		line += fmt.Sprintf("   🔥 %d (%s)", s.BestStreak, s.TopHabit)
	}
	return m.styles.Border.Render(m.styles.Header.Render("Today") + "\n" + line)
}

func (m Model) viewSchedule(focused bool) string {
	var b strings.Builder
	b.WriteString(m.header("Schedule", focused) + "\n")
	if len(m.schedule) == 0 {
		b.WriteString(m.styles.Muted.Render("  nothing planned"))
		return b.String()
	}
	for i, it := range m.schedule {
		if i >= maxRows {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(m.schedule)-maxRows)))
			break
		}
		mark := "·"
		if it.Completed {
			mark = m.styles.Done.Render("✓")
		}
		line := fmt.Sprintf("  %s %02d:00 %s", mark, it.Hour, it.Activity)
		if focused && i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewHabits(focused bool) string {
	var b strings.Builder
	b.WriteString(m.header("Habits", focused) + "\n")
	if len(m.habits) == 0 {
		b.WriteString(m.styles.Muted.Render("  no habits yet"))
		return b.String()
	}
	for i, h := range m.habits {
		if i >= maxRows {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(m.habits)-maxRows)))
			break
		}
		mark := "·"
		switch {
		case h.CompletedOn(m.todayKey):
			mark = m.styles.Done.Render("✓")
		case !h.ScheduledOn(m.today.Weekday()):
			mark = m.styles.Muted.Render("-")
		}
		line := fmt.Sprintf("  %s %s %s", mark, h.Icon.Glyph(), h.Name)
		if streak := analytics.Streak(h, m.today); streak > 1 {
			line += m.styles.Muted.Render(fmt.Sprintf(" (%d)", streak))
		}
		if focused && i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewEvents() string {
	var b strings.Builder
	b.WriteString(m.header("Events", false) + "\n")
	upcoming := make([]int, 0, len(m.events))
	for i, e := range m.events {
		if e.Date >= m.todayKey {
			upcoming = append(upcoming, i)
		}
	}
	sort.Slice(upcoming, func(x, y int) bool { return m.events[upcoming[x]].Date < m.events[upcoming[y]].Date })
	if len(upcoming) == 0 {
		b.WriteString(m.styles.Muted.Render("  no upcoming events"))
		return b.String()
	}
	for n, i := range upcoming {
		if n >= 3 {
			break
		}
		e := m.events[i]
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.styles.Muted.Render(e.Date), e.Title))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewNotes() string {
	var b strings.Builder
	b.WriteString(m.header("Notes", false) + "\n")
	if len(m.notes) == 0 {
		b.WriteString(m.styles.Muted.Render("  no notes"))
		return b.String()
	}
	for i, n := range m.notes {
		if i >= 3 {
			break
		}
		flag := "  "
		if n.IsUrgent {
			flag = m.styles.Missed.Render("! ")
		}
		b.WriteString("  " + flag + n.Content + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
