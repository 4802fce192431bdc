package cli

import (
	"fmt"
	"time"

	"github.com/habito-app/habito/internal/analytics"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/utils"
	"github.com/habito-app/habito/internal/validation"
)

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Days     string `short:"d" help:"Comma-separated weekdays (mon,wed,fri or 1,3,5)." default:"sun,mon,tue,wed,thu,fri,sat"`
	Icon     string `short:"i" help:"Icon name (Circle, Flame, Book, Dumbbell, Leaf, Pen, Moon, Sun, Droplet, Music)." default:"Circle"`
	Color    string `short:"c" help:"Hex color." default:"#8b5cf6"`
	Category string `help:"Category (health|productivity|mindfulness|creative)." default:"productivity"`
}

func (c *HabitAddCmd) Validate() error {
	if !validation.ValidHex(c.Color) {
		return fmt.Errorf("invalid hex color: %q", c.Color)
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	days, err := validation.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}
	h := models.Habit{
		Name:      c.Name,
		Icon:      models.NormalizeIcon(c.Icon),
		Color:     c.Color,
		Category:  models.NormalizeHabitCategory(c.Category),
		Frequency: days,
		History:   map[string]bool{},
	}
	if err := col.AddHabit(h); err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (%s)\n", c.Name, formatFrequency(days))
	return nil
}

type HabitListCmd struct {
	Heatmap bool `help:"Show the trailing completion heatmap per habit."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	habits := col.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habito habit add'.")
		return nil
	}

	styles := ctx.Styles()
	today := time.Now()
	todayKey := utils.DateKey(today)
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(todayKey) {
			mark = styles.Done.Render("✓")
		} else if h.ScheduledOn(today.Weekday()) {
			mark = styles.Missed.Render("·")
		}
		streak := analytics.Streak(h, today)
		fmt.Printf("[%s] %s %s  %s  streak %d  (%s)\n",
			mark, h.Icon.Glyph(), styles.Title.Render(h.Name),
			formatFrequency(h.Frequency), streak, h.ID[:8])

		if c.Heatmap {
			fmt.Println("    " + renderHeatmapRow(h, today))
		}
	}
	return nil
}

// renderHeatmapRow draws the last 10 weeks as one character per day.
func renderHeatmapRow(h models.Habit, today time.Time) string {
	cells := analytics.HabitHeatmap(h, today, 70)
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		switch {
		case c.Done:
			out = append(out, '█')
		case c.Scheduled:
			out = append(out, '░')
		default:
			out = append(out, ' ')
		}
	}
	return string(out)
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id or name prefix."`
	Date  string `help:"Date to mark (YYYY-MM-DD), defaults to today."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	h, err := findHabit(col.Habits(), c.Habit)
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	done, err := col.ToggleHabit(h.ID, dateKey)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("Marked %s done for %s\n", h.Name, dateKey)
	} else {
		fmt.Printf("Cleared %s for %s\n", h.Name, dateKey)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name prefix."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	h, err := findHabit(col.Habits(), c.Habit)
	if err != nil {
		return err
	}
	if err := col.DeleteHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}
