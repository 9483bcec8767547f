// Package styles renders workbench output and the recent picker with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/workbench/internal/infrastructure/config"
)

// Fixed status colors; the palette only drives the neutral and accent tones.
const (
	errorColor   = lipgloss.Color("#ef4444")
	successColor = lipgloss.Color("#4ade80")
)

// Theme is the set of colors and styles shared by every renderer.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Entry and EntryPath style the two lines of a picker row;
	// EntrySelected and EntryPathSelected replace them under the cursor.
	Entry             lipgloss.Style
	EntryPath         lipgloss.Style
	EntrySelected     lipgloss.Style
	EntryPathSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	FilterBox lipgloss.Style
}

// NewTheme builds a theme from cfg's palette. A nil cfg, or one without a
// background color, gets the default palette.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	if cfg != nil && cfg.Appearance.Palette.Background != "" {
		p = cfg.Appearance.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette builds a theme from an explicit palette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
	}

	text := lipgloss.NewStyle().Foreground(t.Text)
	muted := lipgloss.NewStyle().Foreground(t.Muted)

	t.Title = text.Bold(true)
	t.Normal = text
	t.Subtle = muted
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(errorColor)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(successColor)

	t.Entry = text
	t.EntryPath = muted
	t.EntrySelected = t.Highlight
	t.EntryPathSelected = text

	pill := lipgloss.NewStyle().Padding(0, 1)
	t.Badge = pill.Foreground(t.Background).Background(t.Accent)
	t.BadgeMuted = pill.Foreground(t.Text).Background(t.SurfaceVariant)

	t.FilterBox = text.
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}
