package cli

import (
	"fmt"
	"sort"

	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/validation"
)

type EventAddCmd struct {
	Title string `arg:"" help:"Event title."`
	Date  string `arg:"" help:"Event date (YYYY-MM-DD)."`
	Color string `short:"c" help:"Hex color." default:"#d946ef"`
}

func (c *EventAddCmd) Validate() error {
	if !validation.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", c.Date)
	}
	if !validation.ValidHex(c.Color) {
		return fmt.Errorf("invalid hex color: %q", c.Color)
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	if err := col.AddEvent(models.LifeEvent{Title: c.Title, Date: c.Date, Color: c.Color}); err != nil {
		return err
	}
	fmt.Printf("Added event: %s on %s\n", c.Title, c.Date)
	return nil
}

type EventListCmd struct{}

func (c *EventListCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	events := col.Events()
	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	styles := ctx.Styles()
	for _, e := range events {
		fmt.Printf("%s  %s  (%s)\n", e.Date, styles.Title.Render(e.Title), e.ID[:8])
	}
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event id (prefix accepted)."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	id, err := expandID(c.ID, eventIDs(col.Events()))
	if err != nil {
		return err
	}
	if err := col.DeleteEvent(id); err != nil {
		return err
	}
	fmt.Println("Deleted event.")
	return nil
}

func eventIDs(events []models.LifeEvent) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
