// Package analytics derives streaks, heatmaps and period rollups from the
// stored collections. Everything here is a pure function of its inputs; the
// caller passes "today" explicitly so results are reproducible in tests.
package analytics

import (
	"math"
	"time"

	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/utils"
)

// streakLookback bounds the backward walk; nobody's streak display needs
// more than a year.
const streakLookback = 365

// Streak counts consecutive completed scheduled days walking backwards from
// today. Days the habit is not scheduled on do not break the streak and do
// not count toward it. Today counts if done but is skipped if not yet done,
// so an unfinished morning never zeroes an active streak.
func Streak(h models.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < streakLookback; i++ {
		day := today.AddDate(0, 0, -i)
		if !h.ScheduledOn(day.Weekday()) {
			continue
		}
		if h.CompletedOn(utils.DateKey(day)) {
			streak++
			continue
		}
		if i == 0 {
			continue
		}
		break
	}
	return streak
}

// BestStreak returns the longest current streak across habits and the name
// of the habit holding it.
func BestStreak(habits []models.Habit, today time.Time) (int, string) {
	best, name := 0, ""
	for _, h := range habits {
		if s := Streak(h, today); s > best {
			best, name = s, h.Name
		}
	}
	return best, name
}

// HeatmapDay is one cell of a habit's trailing heatmap.
type HeatmapDay struct {
	Date      string
	Scheduled bool
	Done      bool
}

// HabitHeatmap returns the habit's trailing window oldest-first. A cell is
// one of not-scheduled, done, or missed (scheduled and not done).
func HabitHeatmap(h models.Habit, today time.Time, days int) []HeatmapDay {
	out := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := utils.DateKey(day)
		out = append(out, HeatmapDay{
			Date:      key,
			Scheduled: h.ScheduledOn(day.Weekday()),
			Done:      h.CompletedOn(key),
		})
	}
	return out
}

// DayIntensity is the fraction of scheduled habits completed on a day, 0
// when nothing was scheduled.
func DayIntensity(habits []models.Habit, day time.Time) float64 {
	scheduled, done := 0, 0
	key := utils.DateKey(day)
	for _, h := range habits {
		if !h.ScheduledOn(day.Weekday()) {
			continue
		}
		scheduled++
		if h.CompletedOn(key) {
			done++
		}
	}
	if scheduled == 0 {
		return 0
	}
	return float64(done) / float64(scheduled)
}

// IntensityTier buckets an intensity into the five shades of the year grid.
func IntensityTier(v float64) int {
	switch {
	case v >= 1:
		return 4
	case v > 0.6:
		return 3
	case v > 0.3:
		return 2
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Point is one labeled sample of a consistency series.
type Point struct {
	Label   string
	Percent int
}

// Period selects the aggregation window for reports.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Report is a period rollup shared by the schedule and habit views.
type Report struct {
	Series         []Point
	Categories     map[string]int
	TotalScheduled int
	TotalCompleted int
	AvgConsistency int
}

func percent(completed, scheduled int) int {
	if scheduled == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(scheduled) * 100))
}

// dayCount is the trailing-day window for non-year periods.
func dayCount(p Period) int {
	if p == PeriodMonth {
		return 30
	}
	return 7
}

// scheduleCounts tallies a single day's plan. Only active items (non-blank
// activity) count as scheduled.
func scheduleCounts(items []models.ScheduleItem, categories map[string]int) (scheduled, completed int) {
	for _, it := range items {
		if !it.Active() {
			continue
		}
		scheduled++
		if it.Completed {
			completed++
			categories[string(models.NormalizeScheduleCategory(string(it.Category)))]++
		}
	}
	return scheduled, completed
}

// SchedulePeriod rolls the day plans up over a trailing window ending today.
// Week and month produce a per-day series; year produces twelve monthly
// sums, oldest first.
func SchedulePeriod(data models.ScheduleData, p Period, today time.Time) Report {
	r := Report{Categories: map[string]int{}}

	if p == PeriodYear {
		for m := 11; m >= 0; m-- {
			monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -m, 0)
			monthEnd := monthStart.AddDate(0, 1, 0)
			scheduled, completed := 0, 0
			for d := monthStart; d.Before(monthEnd) && !d.After(today); d = d.AddDate(0, 0, 1) {
				s, c := scheduleCounts(data[utils.DateKey(d)], r.Categories)
				scheduled += s
				completed += c
			}
			r.TotalScheduled += scheduled
			r.TotalCompleted += completed
			r.Series = append(r.Series, Point{Label: monthStart.Format("Jan"), Percent: percent(completed, scheduled)})
		}
		r.AvgConsistency = percent(r.TotalCompleted, r.TotalScheduled)
		return r
	}

	days := dayCount(p)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		scheduled, completed := scheduleCounts(data[utils.DateKey(day)], r.Categories)
		r.TotalScheduled += scheduled
		r.TotalCompleted += completed
		label := day.Format("Mon")
		if p == PeriodMonth {
			label = day.Format("2")
		}
		r.Series = append(r.Series, Point{Label: label, Percent: percent(completed, scheduled)})
	}
	r.AvgConsistency = percent(r.TotalCompleted, r.TotalScheduled)
	return r
}

// habitCounts tallies one day across all habits.
func habitCounts(habits []models.Habit, day time.Time, categories map[string]int) (scheduled, completed int) {
	key := utils.DateKey(day)
	for _, h := range habits {
		if !h.ScheduledOn(day.Weekday()) {
			continue
		}
		scheduled++
		if h.CompletedOn(key) {
			completed++
			categories[string(models.NormalizeHabitCategory(string(h.Category)))]++
		}
	}
	return scheduled, completed
}

// HabitPeriod mirrors SchedulePeriod over habit history.
func HabitPeriod(habits []models.Habit, p Period, today time.Time) Report {
	r := Report{Categories: map[string]int{}}

	if p == PeriodYear {
		for m := 11; m >= 0; m-- {
			monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -m, 0)
			monthEnd := monthStart.AddDate(0, 1, 0)
			scheduled, completed := 0, 0
			for d := monthStart; d.Before(monthEnd) && !d.After(today); d = d.AddDate(0, 0, 1) {
				s, c := habitCounts(habits, d, r.Categories)
				scheduled += s
				completed += c
			}
			r.TotalScheduled += scheduled
			r.TotalCompleted += completed
			r.Series = append(r.Series, Point{Label: monthStart.Format("Jan"), Percent: percent(completed, scheduled)})
		}
		r.AvgConsistency = percent(r.TotalCompleted, r.TotalScheduled)
		return r
	}

	days := dayCount(p)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		scheduled, completed := habitCounts(habits, day, r.Categories)
		r.TotalScheduled += scheduled
		r.TotalCompleted += completed
		label := day.Format("Mon")
		if p == PeriodMonth {
			label = day.Format("2")
		}
		r.Series = append(r.Series, Point{Label: label, Percent: percent(completed, scheduled)})
	}
	r.AvgConsistency = percent(r.TotalCompleted, r.TotalScheduled)
	return r
}

// HabitTrend is the trailing per-day completion percentage across all
// habits, oldest first.
func HabitTrend(habits []models.Habit, today time.Time, days int) []Point {
	out := make([]Point, 0, days)
	scratch := map[string]int{}
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		scheduled, completed := habitCounts(habits, day, scratch)
		out = append(out, Point{Label: day.Format("2 Jan"), Percent: percent(completed, scheduled)})
	}
	return out
}

// HabitTotal is a habit's lifetime completion count.
type HabitTotal struct {
	Name  string
	Count int
}

// CompletionTotals returns lifetime completion counts in habit order.
func CompletionTotals(habits []models.Habit) []HabitTotal {
	out := make([]HabitTotal, 0, len(habits))
	for _, h := range habits {
		count := 0
		for _, done := range h.History {
			if done {
				count++
			}
		}
		out = append(out, HabitTotal{Name: h.Name, Count: count})
	}
	return out
}

// Summary is the dashboard's today header.
type Summary struct {
	ActiveTasks     int
	CompletedTasks  int
	TaskPercent     int
	ScheduledHabits int
	CompletedHabits int
	HabitPercent    int
	BestStreak      int
	TopHabit        string
}

// TodaySummary computes the at-a-glance numbers for today.
func TodaySummary(habits []models.Habit, schedule models.ScheduleData, today time.Time) Summary {
	var s Summary
	scratch := map[string]int{}
	s.ActiveTasks, s.CompletedTasks = scheduleCounts(schedule[utils.DateKey(today)], scratch)
	s.TaskPercent = percent(s.CompletedTasks, s.ActiveTasks)
	s.ScheduledHabits, s.CompletedHabits = habitCounts(habits, today, scratch)
	s.HabitPercent = percent(s.CompletedHabits, s.ScheduledHabits)
	s.BestStreak, s.TopHabit = BestStreak(habits, today)
	return s
}
