// Package wizard asks which optional features a new gem should carry.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/ui"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = errors.New("wizard cancelled by user")

// Form runs a feature selection and stores the chosen features in value.
// It exists so tests can replace the terminal form.
type Form func(title string, options []huh.Option[config.Feature], value *[]config.Feature) error

// Wizard presents every feature as a multi-select pre-filled from the
// resolved build settings.
type Wizard struct {
	form Form
}

// New creates a Wizard rendering a huh form styled by theme.
func New(theme *ui.Theme) *Wizard {
	return &Wizard{form: huhForm(theme)}
}

// NewWithForm creates a Wizard using a custom form runner.
func NewWithForm(form Form) *Wizard {
	return &Wizard{form: form}
}

// Run asks for features starting from current and returns the updated build.
func (w *Wizard) Run(current config.Build) (config.Build, error) {
	selected := current.EnabledFeatures()

	if err := w.form("Select gem features", Options(current), &selected); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return current, ErrCancelled
		}
		return current, fmt.Errorf("wizard error: %w", err)
	}

	return Apply(current, selected), nil
}

// Options returns one option per feature, selected when enabled in b.
func Options(b config.Build) []huh.Option[config.Feature] {
	features := config.AllFeatures()
	opts := make([]huh.Option[config.Feature], len(features))
	for i, f := range features {
		key := fmt.Sprintf("%s - %s", f, f.Description())
		opts[i] = huh.NewOption(key, f).Selected(b.Enabled(f))
	}
	return opts
}

// Apply enables exactly the selected features.
func Apply(b config.Build, selected []config.Feature) config.Build {
	on := make(map[config.Feature]bool, len(selected))
	for _, f := range selected {
		on[f] = true
	}
	for _, f := range config.AllFeatures() {
		b = b.With(f, on[f])
	}
	return b
}

func huhForm(theme *ui.Theme) Form {
	return func(title string, options []huh.Option[config.Feature], value *[]config.Feature) error {
		field := huh.NewMultiSelect[config.Feature]().
			Title(title).
			Description("Space toggles a feature, enter confirms.").
			Options(options...).
			Value(value)

		return huh.NewForm(huh.NewGroup(field)).
			WithTheme(newWizardTheme(theme)).
			WithAccessible(theme.NoColor).
			Run()
	}
}

// newWizardTheme maps the ui theme colors onto a huh theme.
func newWizardTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme.NoColor {
		return t
	}

	primary := lipgloss.Color(theme.Colors.Primary)
	green := lipgloss.Color(theme.Colors.Success)
	red := lipgloss.Color(theme.Colors.Error)
	muted := lipgloss.Color(theme.Colors.Muted)

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
