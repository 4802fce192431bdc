package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/keyring"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/planner"
	"github.com/habito-app/habito/internal/utils"
	"github.com/habito-app/habito/internal/validation"
)

type ScheduleShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
	All  bool   `short:"a" help:"Include empty hours."`
}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	items := col.Schedule()[dateKey]
	sort.Slice(items, func(i, j int) bool { return items[i].Hour < items[j].Hour })

	styles := ctx.Styles()
	fmt.Println(styles.Header.Render("Schedule for " + dateKey))
	shown := 0
	for _, it := range items {
		if !it.Active() && !c.All {
			continue
		}
		mark := " "
		if it.Completed {
			mark = styles.Done.Render("✓")
		}
		fmt.Printf("[%s] %s  %-30s %s\n", mark, formatHour(it.Hour), it.Activity, styles.Muted.Render(string(it.Category)))
		shown++
	}
	if shown == 0 {
		fmt.Println("Nothing planned. Use 'habito schedule set' or 'habito schedule generate'.")
	}
	return nil
}

type ScheduleSetCmd struct {
	Hour     int    `arg:"" help:"Hour of day (0-23)."`
	Activity string `arg:"" help:"Activity text. Empty clears the slot."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
	Category string `short:"c" help:"Category (work|health|rest|focus|other)." default:"other"`
}

func (c *ScheduleSetCmd) Validate() error {
	if !validation.ValidHour(c.Hour) {
		return fmt.Errorf("hour must be between 0 and 23")
	}
	return nil
}

func (c *ScheduleSetCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	err = col.UpsertScheduleItem(dateKey, utils.TodayKey(), c.Hour, func(it *models.ScheduleItem) {
		it.Activity = c.Activity
		it.Category = models.NormalizeScheduleCategory(c.Category)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Set %s on %s: %s\n", formatHour(c.Hour), dateKey, c.Activity)
	return nil
}

type ScheduleDoneCmd struct {
	Hour int    `arg:"" help:"Hour of day (0-23)."`
	Date string `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *ScheduleDoneCmd) Validate() error {
	if !validation.ValidHour(c.Hour) {
		return fmt.Errorf("hour must be between 0 and 23")
	}
	return nil
}

func (c *ScheduleDoneCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	var completed bool
	err = col.UpsertScheduleItem(dateKey, utils.TodayKey(), c.Hour, func(it *models.ScheduleItem) {
		it.Completed = !it.Completed
		completed = it.Completed
	})
	if err != nil {
		return err
	}
	if completed {
		fmt.Printf("Completed %s on %s\n", formatHour(c.Hour), dateKey)
	} else {
		fmt.Printf("Reopened %s on %s\n", formatHour(c.Hour), dateKey)
	}
	return nil
}

type ScheduleGenerateCmd struct {
	Focus string `arg:"" optional:"" help:"Main focus for the day. Blank asks for a balanced day."`
	Date  string `help:"Date (YYYY-MM-DD), defaults to today."`
}

// Run replaces the whole day only after a fully normalized plan comes back;
// a failed generation leaves the existing plan untouched.
func (c *ScheduleGenerateCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	apiKey, err := keyring.GetAPIKey()
	if err != nil {
		if envKey := os.Getenv(constants.EnvAPIKey); envKey != "" {
			apiKey = envKey
		} else {
			return planner.ErrMissingAPIKey
		}
	}

	bg := context.Background()
	gen, err := planner.NewGemini(bg, apiKey)
	if err != nil {
		return err
	}

	fmt.Println("Generating schedule...")
	raw, err := gen.GenerateSchedule(bg, dateKey, c.Focus)
	if err != nil {
		return err
	}
	items, err := planner.Normalize(raw)
	if err != nil {
		return err
	}
	if err := col.ReplaceDay(dateKey, utils.TodayKey(), items); err != nil {
		return err
	}
	fmt.Printf("Generated a %d-hour plan for %s. Run 'habito schedule show %s'.\n", len(items), dateKey, dateKey)
	return nil
}
