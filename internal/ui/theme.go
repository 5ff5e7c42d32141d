// Package ui provides the terminal presentation layer: color theme, status
// lines, headless detection and progress indicators.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme modes.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeConfig selects a Theme.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" (default) or "light"
}

// Colors holds the hex colors of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme carries colors and the styles derived from them.
type Theme struct {
	NoColor bool
	Colors  Colors

	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
}

// NewTheme builds a Theme. With NoColor set every style renders plain text.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := Colors{
		Primary:   "#E0115F",
		Secondary: "#7C3AED",
		Success:   "#10B981",
		Warning:   "#F59E0B",
		Error:     "#EF4444",
		Muted:     "#6B7280",
	}
	if cfg.Mode == ModeLight {
		colors = Colors{
			Primary:   "#9B0D42",
			Secondary: "#5B21B6",
			Success:   "#059669",
			Warning:   "#B45309",
			Error:     "#DC2626",
			Muted:     "#4B5563",
		}
	}

	t := &Theme{NoColor: cfg.NoColor, Colors: colors}
	if cfg.NoColor {
		t.Info = lipgloss.NewStyle()
		t.Warn = lipgloss.NewStyle()
		t.Error = lipgloss.NewStyle()
		return t
	}

	t.Info = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Success))
	t.Warn = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)).Bold(true)
	return t
}
