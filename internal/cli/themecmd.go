package cli

import (
	"fmt"

	"github.com/habito-app/habito/internal/theme"
)

type ThemeSetCmd struct {
	Primary     string `arg:"" help:"Primary hex color."`
	PrimaryDark string `arg:"" optional:"" help:"Darker primary variant. Derived from primary when omitted."`
	Accent      string `arg:"" optional:"" help:"Accent hex color. Kept when omitted."`
}

func (c *ThemeSetCmd) Run(ctx *Context) error {
	current := theme.Load(ctx.Store)
	next := theme.Colors{
		Primary:     c.Primary,
		PrimaryDark: c.PrimaryDark,
		Accent:      c.Accent,
	}
	if next.PrimaryDark == "" {
		next.PrimaryDark = theme.Darken(next.Primary, 15)
	}
	if next.Accent == "" {
		next.Accent = current.Accent
	}
	if err := theme.Save(ctx.Store, next); err != nil {
		return err
	}
	fmt.Println("Theme updated.")
	return nil
}

type ThemeShowCmd struct{}

func (c *ThemeShowCmd) Run(ctx *Context) error {
	colors := theme.Load(ctx.Store)
	styles := theme.NewStyles(colors)
	fmt.Printf("primary      %s\n", styles.Title.Render(colors.Primary))
	fmt.Printf("primaryDark  %s\n", styles.Header.Render(colors.PrimaryDark))
	fmt.Printf("accent       %s\n", styles.Accent.Render(colors.Accent))
	return nil
}

type ThemeResetCmd struct{}

func (c *ThemeResetCmd) Run(ctx *Context) error {
	if err := theme.Reset(ctx.Store); err != nil {
		return err
	}
	fmt.Println("Theme reset to default.")
	return nil
}
