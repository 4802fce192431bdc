package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/habito-app/habito/internal/keyring"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habito storage at: %s\n", ctx.Store.ConfigPath())
	return nil
}

type ApikeySetCmd struct {
	Key string `arg:"" optional:"" help:"Gemini API key. Prompted interactively when omitted."`
}

func (c *ApikeySetCmd) Run(ctx *Context) error {
	if c.Key == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Gemini API key").EchoMode(huh.EchoModePassword).Value(&c.Key),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in the OS keyring.")
	return nil
}

type ApikeyDeleteCmd struct{}

func (c *ApikeyDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed from the OS keyring.")
	return nil
}
