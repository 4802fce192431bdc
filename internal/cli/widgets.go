package cli

import (
	"fmt"
	"strings"

	"github.com/habito-app/habito/internal/constants"
)

type WidgetsShowCmd struct{}

func (c *WidgetsShowCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	for i, w := range col.WidgetOrder() {
		fmt.Printf("%d. %s\n", i+1, w)
	}
	return nil
}

type WidgetsSetCmd struct {
	Order string `arg:"" help:"Comma-separated widget order (summary,schedule,habits,events,notes)."`
}

func (c *WidgetsSetCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}

	known := map[string]bool{}
	for _, w := range constants.DefaultWidgetOrder() {
		known[w] = true
	}

	var order []string
	seen := map[string]bool{}
	for _, part := range strings.Split(c.Order, ",") {
		w := strings.TrimSpace(strings.ToLower(part))
		if w == "" {
			continue
		}
		if !known[w] {
			return fmt.Errorf("unknown widget %q", w)
		}
		if !seen[w] {
			seen[w] = true
			order = append(order, w)
		}
	}
	if len(order) == 0 {
		return fmt.Errorf("no widgets given")
	}
	// Widgets left out keep their default relative order at the end.
	for _, w := range constants.DefaultWidgetOrder() {
		if !seen[w] {
			order = append(order, w)
		}
	}

	if err := col.SaveWidgetOrder(order); err != nil {
		return err
	}
	fmt.Printf("Widget order: %s\n", strings.Join(order, ", "))
	return nil
}
