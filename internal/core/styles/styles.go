// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// Highlight styles. MatchStyle is painted first and CursorStyle on top.
	MatchStyle  lipgloss.Style
	CursorStyle lipgloss.Style

	// Document styles.
	TextStyle        lipgloss.Style
	DimTextStyle     lipgloss.Style
	LineNumberStyle  lipgloss.Style
	CursorLineNumber lipgloss.Style

	// Chrome.
	PromptStyle    lipgloss.Style
	StatusStyle    lipgloss.Style
	StatusErrStyle lipgloss.Style
	DividerStyle   lipgloss.Style
	HelpKeyStyle   lipgloss.Style
	HelpDescStyle  lipgloss.Style

	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	PathStyle          lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	MatchStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(Blend(p.Warning, p.Background, 0.8)).
		Bold(true)
	CursorStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	DimTextStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	LineNumberStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	CursorLineNumber = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	PromptStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	StatusErrStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Surface)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	PathStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
}

// Blend mixes a towards b in Lab space. t=0 returns a, t=1 returns b.
// Colors that cannot be converted fall back to a.
func Blend(a, b color.Color, t float64) color.Color {
	if a == nil || b == nil {
		return a
	}
	ca, ok := colorful.MakeColor(a)
	if !ok {
		return a
	}
	cb, ok := colorful.MakeColor(b)
	if !ok {
		return a
	}
	return ca.BlendLab(cb, t).Clamped()
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
