package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/habito-app/habito/internal/auth"
	"github.com/habito-app/habito/internal/cli"
	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/errors"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.json, .db, or a postgres:// URL)." default:"~/.config/habito/habito.json"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize habito storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the dashboard." default:"1"`
	Register cli.RegisterCmd `cmd:"" help:"Create an account."`
	Login    cli.LoginCmd    `cmd:"" help:"Sign in."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Sign out."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the signed-in account."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Edit the account profile. Changing the phone migrates all data."`
	Habit    struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits."`
		Done   cli.HabitDoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`
	Schedule struct {
		Show     cli.ScheduleShowCmd     `cmd:"" help:"Show a day's plan."`
		Set      cli.ScheduleSetCmd      `cmd:"" help:"Set an hour's activity."`
		Done     cli.ScheduleDoneCmd     `cmd:"" help:"Toggle an hour's completion."`
		Generate cli.ScheduleGenerateCmd `cmd:"" help:"Generate a day plan with Gemini."`
	} `cmd:"" help:"Manage the hourly day plan."`
	Event struct {
		Add    cli.EventAddCmd    `cmd:"" help:"Add a life event."`
		List   cli.EventListCmd   `cmd:"" help:"List life events."`
		Delete cli.EventDeleteCmd `cmd:"" help:"Delete a life event."`
	} `cmd:"" help:"Manage life events."`
	Vision struct {
		Add    cli.VisionAddCmd    `cmd:"" help:"Add a goal to the vision board."`
		List   cli.VisionListCmd   `cmd:"" help:"List vision board goals."`
		Move   cli.VisionMoveCmd   `cmd:"" help:"Reorder a goal within its bucket."`
		Delete cli.VisionDeleteCmd `cmd:"" help:"Delete a goal."`
	} `cmd:"" help:"Manage the vision board."`
	Note struct {
		Add    cli.NoteAddCmd    `cmd:"" help:"Add a note."`
		List   cli.NoteListCmd   `cmd:"" help:"List notes."`
		Delete cli.NoteDeleteCmd `cmd:"" help:"Delete a note."`
	} `cmd:"" help:"Manage quick notes."`
	Journal struct {
		Write cli.JournalWriteCmd `cmd:"" help:"Write or clear a day's entry."`
		Show  cli.JournalShowCmd  `cmd:"" help:"Show a day's entry."`
		List  cli.JournalListCmd  `cmd:"" help:"List all entries."`
	} `cmd:"" help:"Manage the journal."`
	Theme struct {
		Set   cli.ThemeSetCmd   `cmd:"" help:"Set the color palette."`
		Show  cli.ThemeShowCmd  `cmd:"" help:"Show the current palette."`
		Reset cli.ThemeResetCmd `cmd:"" help:"Restore the default palette."`
	} `cmd:"" help:"Manage the theme."`
	Widgets struct {
		Show cli.WidgetsShowCmd `cmd:"" help:"Show the dashboard widget order."`
		Set  cli.WidgetsSetCmd  `cmd:"" help:"Set the dashboard widget order."`
	} `cmd:"" help:"Manage the dashboard layout."`
	Stats  cli.StatsCmd `cmd:"" help:"Show consistency statistics."`
	Apikey struct {
		Set    cli.ApikeySetCmd    `cmd:"" help:"Store the Gemini API key."`
		Delete cli.ApikeyDeleteCmd `cmd:"" help:"Remove the stored Gemini API key."`
	} `cmd:"" help:"Manage the Gemini API key."`
}

// expandHome resolves a leading ~ so the config flag can stay a plain
// string; kong's path type would mangle postgres:// URLs.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// newStore picks the backend from the config path: a postgres:// URL, a
// SQLite file, or the default JSON document.
func newStore(path string) (kv.Store, error) {
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		if _, err := kv.ValidateConnString(path); err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(path), nil
	}
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return kv.NewSQLiteStore(path), nil
	}
	return kv.NewJSONStore(path), nil
}

// logDir is where rotating logs land. Database-backed stores have no local
// file to sit next to, so they share the default config directory.
func logDir(configPath string) string {
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(configPath)
}

func main() {
	// A local .env may carry GEMINI_API_KEY; absence is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity tracker: habits, day plans, goals and journal"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config
	if !strings.HasPrefix(configPath, "postgres://") && !strings.HasPrefix(configPath, "postgresql://") {
		configPath = expandHome(configPath)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	store, err := newStore(configPath)
	if err != nil {
		errors.Fatal(err)
	}

	// Everything except init needs the store opened.
	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	appCtx := &cli.Context{
		Store: store,
		Auth:  auth.NewManager(store),
	}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
