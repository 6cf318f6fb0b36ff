// Package ui renders vslice's terminal output: step headers, per-file
// acknowledgments, install spinners, next-step hints and the interactive
// column form.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors.
const (
	ColorPrimary   = "#F59E0B"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#FBBF24"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
)

// ThemeConfig selects how output is styled.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark", "light" or "" for auto
}

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles colors and the lipgloss styles derived from them.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors

	Step    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme builds a Theme. With NoColor every style is the zero style.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{
		NoColor: cfg.NoColor,
		Mode:    cfg.Mode,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
	if cfg.Mode == "light" {
		t.Colors.Primary = "#B45309"
		t.Colors.Muted = "#4B5563"
	}

	if cfg.NoColor {
		plain := lipgloss.NewStyle()
		t.Step, t.Success, t.Warning, t.Error = plain, plain, plain, plain
		return t
	}

	t.Step = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error)).Bold(true)
	return t
}

// HuhTheme adapts the theme for huh forms.
func (t *Theme) HuhTheme() *huh.Theme {
	h := huh.ThemeBase()
	if t.NoColor {
		return h
	}

	primary := lipgloss.Color(t.Colors.Primary)
	secondary := lipgloss.Color(t.Colors.Secondary)
	green := lipgloss.Color(t.Colors.Success)
	red := lipgloss.Color(t.Colors.Error)
	muted := lipgloss.Color(t.Colors.Muted)

	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)
	h.Focused.FocusedButton = h.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description
	return h
}
