package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/habito-app/habito/internal/theme"
	"github.com/habito-app/habito/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	col, err := ctx.Collections()
	if err != nil {
		return err
	}

	m := tui.NewModel(col, user, theme.Load(ctx.Store))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
