package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/habito-app/habito/internal/analytics"
	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/keyring"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/planner"
)

type StatsCmd struct {
	Period  string `short:"p" help:"Window (week|month|year)." default:"week" enum:"week,month,year"`
	Habits  bool   `help:"Habit consistency instead of the day plans."`
	Insight bool   `help:"Ask Gemini for a one-line insight (falls back offline)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	styles := ctx.Styles()
	today := time.Now()
	period := analytics.Period(c.Period)

	var r analytics.Report
	if c.Habits {
		r = analytics.HabitPeriod(col.Habits(), period, today)
		fmt.Println(styles.Header.Render("Habit consistency — " + c.Period))
	} else {
		r = analytics.SchedulePeriod(col.Schedule(), period, today)
		fmt.Println(styles.Header.Render("Schedule consistency — " + c.Period))
	}

	for _, p := range r.Series {
		bar := strings.Repeat("█", p.Percent/5)
		fmt.Printf("%4s %3d%% %s\n", p.Label, p.Percent, styles.Accent.Render(bar))
	}
	fmt.Printf("Completed %d of %d (%d%% average)\n", r.TotalCompleted, r.TotalScheduled, r.AvgConsistency)

	if len(r.Categories) > 0 {
		fmt.Println(styles.Header.Render("By category"))
		names := make([]string, 0, len(r.Categories))
		for name := range r.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-14s %d\n", name, r.Categories[name])
		}
	}

	if c.Habits && period == analytics.PeriodYear {
		fmt.Println(styles.Header.Render("Year at a glance"))
		fmt.Println(yearGrid(col.Habits(), today))
	}

	if c.Habits {
		fmt.Println(styles.Header.Render("Last 14 days"))
		for _, p := range analytics.HabitTrend(col.Habits(), today, 14) {
			bar := strings.Repeat("▪", p.Percent/10)
			fmt.Printf("%7s %3d%% %s\n", p.Label, p.Percent, styles.Accent.Render(bar))
		}
		fmt.Println(styles.Header.Render("Lifetime completions"))
		for _, total := range analytics.CompletionTotals(col.Habits()) {
			fmt.Printf("  %-20s %d\n", total.Name, total.Count)
		}
	}

	summary := analytics.TodaySummary(col.Habits(), col.Schedule(), today)
	if summary.BestStreak > 0 {
		fmt.Printf("Best streak: %d days (%s)\n", summary.BestStreak, summary.TopHabit)
	}

	if c.Insight {
		fmt.Println(styles.Accent.Render(c.insightLine(summary)))
	}
	return nil
}

// yearGrid renders the trailing 52 weeks, one row per weekday, shaded by
// that day's completion intensity.
func yearGrid(habits []models.Habit, today time.Time) string {
	shades := []rune{'·', '░', '▒', '▓', '█'}
	start := today.AddDate(0, 0, -52*7+1)
	// Align the first column to a Sunday so rows are weekdays.
	for start.Weekday() != time.Sunday {
		start = start.AddDate(0, 0, -1)
	}

	var b strings.Builder
	for wd := 0; wd < 7; wd++ {
		for week := 0; week < 52; week++ {
			day := start.AddDate(0, 0, week*7+wd)
			if day.After(today) {
				b.WriteRune(' ')
				continue
			}
			tier := analytics.IntensityTier(analytics.DayIntensity(habits, day))
			b.WriteRune(shades[tier])
		}
		b.WriteRune('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *StatsCmd) insightLine(summary analytics.Summary) string {
	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		apiKey = os.Getenv(constants.EnvAPIKey)
	}
	if apiKey == "" {
		return planner.FallbackInsight(summary.CompletedHabits, summary.ScheduledHabits)
	}
	bg := context.Background()
	gen, err := planner.NewGemini(bg, apiKey)
	if err != nil {
		return planner.FallbackInsight(summary.CompletedHabits, summary.ScheduledHabits)
	}
	return gen.Insight(bg, summary.CompletedHabits, summary.ScheduledHabits)
}
