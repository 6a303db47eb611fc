// Package theme holds filepane's fixed terminal palette and the styles
// derived from it.
package theme

import (
	"fmt"
	"strings"

	"github.com/odvcencio/filepane/pkg/ui/backend"
)

// Colors are the configurable palette entries.
type Colors struct {
	Background  backend.Color
	Directory   backend.Color
	File        backend.Color
	Marked      backend.Color
	StatusFG    backend.Color
	StatusBG    backend.Color
	ActiveTabFG backend.Color
	ActiveTabBG backend.Color
}

// DefaultColors returns the stock palette.
func DefaultColors() Colors {
	return Colors{
		Background:  backend.ColorBlack,
		Directory:   backend.ColorCyan,
		File:        backend.ColorWhite,
		Marked:      backend.ColorYellow,
		StatusFG:    backend.ColorBlack,
		StatusBG:    backend.ColorCyan,
		ActiveTabFG: backend.ColorBlack,
		ActiveTabBG: backend.ColorCyan,
	}
}

// Theme is the set of styles the panes draw with.
type Theme struct {
	Colors Colors

	// Screen is the ambient style used for erased cells.
	Screen backend.Style

	Text      backend.Style
	Directory backend.Style
	File      backend.Style
	Marked    backend.Style
	Line      backend.Style
	Bracket   backend.Style

	TabActive   backend.Style
	TabInactive backend.Style

	StatusBar backend.Style
	Spinner   backend.Style

	Prompt   backend.Style
	KeyHint  backend.Style
	Title    backend.Style
	Bookmark backend.Style
}

// Default returns the theme built from DefaultColors.
func Default() *Theme {
	return New(DefaultColors())
}

// New derives the styles from a palette.
func New(c Colors) *Theme {
	screen := backend.NewStyle(backend.ColorDefault, c.Background)
	return &Theme{
		Colors:      c,
		Screen:      screen,
		Text:        screen.Foreground(c.File),
		Directory:   screen.Foreground(c.Directory),
		File:        screen.Foreground(c.File),
		Marked:      screen.Foreground(c.Marked),
		Line:        screen.Foreground(c.File),
		Bracket:     screen.Foreground(c.File),
		TabActive:   backend.NewStyle(c.ActiveTabFG, c.ActiveTabBG),
		TabInactive: screen.Foreground(c.File),
		StatusBar:   backend.NewStyle(c.StatusFG, c.StatusBG),
		Spinner:     backend.NewStyle(c.StatusFG, c.StatusBG).Bold(true),
		Prompt:      screen.Foreground(c.Directory).Bold(true),
		KeyHint:     screen.Foreground(c.Marked),
		Title:       screen.Foreground(c.Directory).Bold(true),
		Bookmark:    screen.Foreground(c.File),
	}
}

var colorNames = map[string]backend.Color{
	"default":        backend.ColorDefault,
	"black":          backend.ColorBlack,
	"red":            backend.ColorRed,
	"green":          backend.ColorGreen,
	"yellow":         backend.ColorYellow,
	"blue":           backend.ColorBlue,
	"magenta":        backend.ColorMagenta,
	"cyan":           backend.ColorCyan,
	"white":          backend.ColorWhite,
	"bright-black":   backend.ColorBrightBlack,
	"grey":           backend.ColorBrightBlack,
	"bright-red":     backend.ColorBrightRed,
	"bright-green":   backend.ColorBrightGreen,
	"bright-yellow":  backend.ColorBrightYellow,
	"bright-blue":    backend.ColorBrightBlue,
	"bright-magenta": backend.ColorBrightMagenta,
	"bright-cyan":    backend.ColorBrightCyan,
	"bright-white":   backend.ColorBrightWhite,
}

// ParseColor maps a palette name ("cyan", "bright-blue", "default") to
// its color. Names are case-insensitive; '_' and ' ' may replace '-'.
func ParseColor(name string) (backend.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	return backend.ColorDefault, fmt.Errorf("unknown color %q", name)
}
