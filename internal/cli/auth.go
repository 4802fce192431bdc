package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/validation"
)

type RegisterCmd struct {
	Name     string `short:"n" help:"Display name."`
	Phone    string `short:"p" help:"10-digit mobile number (doubles as account id)."`
	Email    string `short:"e" help:"Email address (optional)."`
	Password string `help:"Password. Prompted interactively when omitted."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if c.Name == "" || c.Phone == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&c.Name),
				huh.NewInput().Title("Phone").Value(&c.Phone),
				huh.NewInput().Title("Email (optional)").Value(&c.Email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := validation.ValidateRegistration(c.Name, c.Phone); err != nil {
		return err
	}
	if c.Password == "" {
		return fmt.Errorf("password is required")
	}

	res, err := ctx.Auth.Register(c.Name, c.Phone, c.Email, c.Password, time.Now())
	if err != nil {
		return err
	}
	fmt.Println(res.Message)
	if res.OK {
		fmt.Printf("Signed in as %s (%s)\n", res.User.Name, res.User.Phone)
	}
	return nil
}

type LoginCmd struct {
	Phone    string `arg:"" optional:"" help:"Account phone number."`
	Password string `help:"Password. Prompted interactively when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Phone == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Phone").Value(&c.Phone),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	res, err := ctx.Auth.Login(c.Phone, c.Password)
	if err != nil {
		return err
	}
	fmt.Println(res.Message)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", user.Name, user.Phone)
	if user.Email != "" {
		fmt.Println(user.Email)
	}
	return nil
}

type ProfileCmd struct {
	Name  string `short:"n" help:"New display name."`
	Phone string `short:"p" help:"New phone number. Changing it migrates all data."`
	Email string `short:"e" help:"New email address."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}

	if c.Name == "" && c.Phone == "" && c.Email == "" {
		c.Name, c.Phone, c.Email = user.Name, user.Phone, user.Email
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&c.Name),
				huh.NewInput().Title("Phone").Value(&c.Phone),
				huh.NewInput().Title("Email").Value(&c.Email),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	updated := *user
	if c.Name != "" {
		updated.Name = c.Name
	}
	if c.Phone != "" {
		updated.Phone = c.Phone
	}
	if c.Email != "" {
		updated.Email = c.Email
	}
	if err := validation.ValidateRegistration(updated.Name, updated.Phone); err != nil {
		return err
	}

	res, err := ctx.Auth.UpdateProfile(models.User{
		Name:  updated.Name,
		Phone: updated.Phone,
		Email: updated.Email,
	}, user.ID)
	if err != nil {
		return err
	}
	fmt.Println(res.Message)
	return nil
}
