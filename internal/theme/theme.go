// Package theme persists the three-color palette and derives the terminal
// styles from it.
package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/logger"
	"github.com/habito-app/habito/internal/validation"
)

// Colors is the stored palette.
type Colors struct {
	Primary     string `json:"primary"`
	PrimaryDark string `json:"primaryDark"`
	Accent      string `json:"accent"`
}

// Default is the violet/fuchsia palette shipped out of the box.
func Default() Colors {
	return Colors{
		Primary:     "#8b5cf6",
		PrimaryDark: "#7c3aed",
		Accent:      "#d946ef",
	}
}

// Load reads the palette, falling back to Default on a missing or corrupt
// slot. Older records predate the primaryDark field; those get a darkened
// primary so existing themes keep working.
func Load(s kv.Store) Colors {
	raw, ok, err := s.Get(constants.ThemeKey)
	if err != nil || !ok {
		return Default()
	}
	var c Colors
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		logger.Warn("Discarding corrupted theme", "error", err)
		return Default()
	}
	if c.Primary == "" {
		return Default()
	}
	if c.PrimaryDark == "" {
		c.PrimaryDark = Darken(c.Primary, 15)
	}
	if c.Accent == "" {
		c.Accent = Default().Accent
	}
	return c
}

// Save validates and persists a palette.
func Save(s kv.Store, c Colors) error {
	for _, hex := range []string{c.Primary, c.PrimaryDark, c.Accent} {
		if !validation.ValidHex(hex) {
			return fmt.Errorf("invalid hex color: %q", hex)
		}
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Set(constants.ThemeKey, string(raw))
}

// Reset removes the stored palette so Load returns Default again.
func Reset(s kv.Store) error {
	return s.Delete(constants.ThemeKey)
}

// HexToRGB parses #rgb or #rrggbb, with or without the hash.
func HexToRGB(hex string) (r, g, b int, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	return r, g, b, nil
}

// Darken scales each channel down by the given percentage, clamping at zero.
func Darken(hex string, percent int) string {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	scale := func(v int) int {
		v = v * (100 - percent) / 100
		if v < 0 {
			return 0
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b))
}

// Styles is the derived lipgloss style set used by the CLI and TUI.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Missed   lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// NewStyles derives the style set from a palette.
func NewStyles(c Colors) Styles {
	primary := lipgloss.Color(c.Primary)
	dark := lipgloss.Color(c.PrimaryDark)
	accent := lipgloss.Color(c.Accent)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(dark),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Missed:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
	}
}
