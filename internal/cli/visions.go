package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/models"
)

func parseVisionCategory(s string) (constants.VisionCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return constants.VisionDaily, nil
	case "weekly":
		return constants.VisionWeekly, nil
	case "monthly":
		return constants.VisionMonthly, nil
	case "yearly":
		return constants.VisionYearly, nil
	case "5-years", "5years", "five-years":
		return constants.VisionFiveYears, nil
	}
	return "", fmt.Errorf("invalid category %q (daily|weekly|monthly|yearly|5-years)", s)
}

type VisionAddCmd struct {
	Text     string `arg:"" help:"Goal text."`
	Category string `short:"c" help:"Horizon (daily|weekly|monthly|yearly|5-years)." default:"daily"`
	Day      string `short:"d" help:"Weekday bucket (weekly horizon only, e.g. Mon)."`
}

func (c *VisionAddCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	cat, err := parseVisionCategory(c.Category)
	if err != nil {
		return err
	}
	if c.Day != "" && cat != constants.VisionWeekly {
		return fmt.Errorf("--day only applies to the weekly horizon")
	}
	if err := col.AddVision(models.VisionItem{Text: c.Text, Category: cat, Day: c.Day}); err != nil {
		return err
	}
	fmt.Printf("Added goal to %s board: %s\n", strings.ToLower(c.Category), c.Text)
	return nil
}

type VisionListCmd struct {
	Category string `short:"c" help:"Only one horizon (daily|weekly|monthly|yearly|5-years)."`
}

func (c *VisionListCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	visions := col.Visions()
	if c.Category != "" {
		cat, err := parseVisionCategory(c.Category)
		if err != nil {
			return err
		}
		kept := visions[:0]
		for _, v := range visions {
			if v.Category == cat {
				kept = append(kept, v)
			}
		}
		visions = kept
	}
	if len(visions) == 0 {
		fmt.Println("No goals on the board.")
		return nil
	}

	sort.SliceStable(visions, func(i, j int) bool {
		if visions[i].Category != visions[j].Category {
			return visions[i].Category < visions[j].Category
		}
		if visions[i].Day != visions[j].Day {
			return visions[i].Day < visions[j].Day
		}
		return visions[i].Rank < visions[j].Rank
	})

	styles := ctx.Styles()
	lastHeader := ""
	for _, v := range visions {
		header := string(v.Category)
		if v.Day != "" {
			header += " / " + v.Day
		}
		if header != lastHeader {
			fmt.Println(styles.Header.Render(header))
			lastHeader = header
		}
		fmt.Printf("  %d. %s  (%s)\n", v.Rank+1, v.Text, v.ID[:8])
	}
	return nil
}

type VisionMoveCmd struct {
	ID   string `arg:"" help:"Goal id (prefix accepted)."`
	Up   bool   `xor:"dir" help:"Move the goal up in its bucket."`
	Down bool   `xor:"dir" help:"Move the goal down in its bucket."`
}

func (c *VisionMoveCmd) Validate() error {
	if !c.Up && !c.Down {
		return fmt.Errorf("pass --up or --down")
	}
	return nil
}

func (c *VisionMoveCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	id, err := expandID(c.ID, visionIDs(col.Visions()))
	if err != nil {
		return err
	}
	delta := 1
	if c.Up {
		delta = -1
	}
	if err := col.MoveVision(id, delta); err != nil {
		return err
	}
	fmt.Println("Moved goal.")
	return nil
}

type VisionDeleteCmd struct {
	ID string `arg:"" help:"Goal id (prefix accepted)."`
}

func (c *VisionDeleteCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	id, err := expandID(c.ID, visionIDs(col.Visions()))
	if err != nil {
		return err
	}
	if err := col.DeleteVision(id); err != nil {
		return err
	}
	fmt.Println("Deleted goal.")
	return nil
}

func visionIDs(visions []models.VisionItem) []string {
	ids := make([]string, len(visions))
	for i, v := range visions {
		ids[i] = v.ID
	}
	return ids
}
