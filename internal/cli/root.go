// Package cli defines the kong command tree. Commands receive a Context
// carrying the opened store and the auth manager; everything else is derived
// per-command.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/habito-app/habito/internal/auth"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/models"
	"github.com/habito-app/habito/internal/storage"
	"github.com/habito-app/habito/internal/theme"
	"github.com/habito-app/habito/internal/utils"
)

type Context struct {
	Store kv.Store
	Auth  *auth.Manager
}

// RequireUser resolves the session or fails with a sign-in hint.
func (ctx *Context) RequireUser() (*models.User, error) {
	user := ctx.Auth.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("not signed in, run 'habito login' or 'habito register'")
	}
	return user, nil
}

// Collections returns the signed-in user's collection view.
func (ctx *Context) Collections() (*storage.Collections, error) {
	user, err := ctx.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.ForOwner(ctx.Store, user.ID), nil
}

// Styles loads the stored palette and derives the terminal styles.
func (ctx *Context) Styles() theme.Styles {
	return theme.NewStyles(theme.Load(ctx.Store))
}

// resolveDate turns an optional --date flag into a date key, defaulting to
// today.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return utils.TodayKey(), nil
	}
	t, err := utils.ParseDateKey(flag)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flag)
	}
	return utils.DateKey(t), nil
}

func formatFrequency(days []time.Weekday) string {
	if len(days) == 7 {
		return "daily"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}

// findHabit matches by id or unique name prefix, case-insensitive.
func findHabit(habits []models.Habit, ref string) (*models.Habit, error) {
	lower := strings.ToLower(ref)
	var match *models.Habit
	for i := range habits {
		if habits[i].ID == ref {
			return &habits[i], nil
		}
		if strings.HasPrefix(strings.ToLower(habits[i].Name), lower) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous habit %q, use the id", ref)
			}
			match = &habits[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no habit matches %q", ref)
	}
	return match, nil
}

// expandID resolves a (possibly abbreviated) id against a candidate list.
func expandID(ref string, ids []string) (string, error) {
	match := ""
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id %q", ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no item matches id %q", ref)
	}
	return match, nil
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
