// Package generator composes the gem skeleton from independent generators.
//
// A Generator reads exactly one feature switch from the settings to decide
// whether it runs, then describes its work as an ordered list of Steps. The
// Runner executes generators strictly in Registry order against a single
// template.Workspace, so later generators may edit files earlier ones rendered.
package generator

import (
	"context"
	"fmt"

	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/template"
)

// Generator is a conditional unit of scaffolding work.
type Generator interface {
	// Name identifies the generator in reports and logs.
	Name() string

	// Enabled reports whether the generator acts for the given settings.
	// It must be pure.
	Enabled(s config.Settings) bool

	// Steps returns the ordered steps performed when enabled.
	Steps(s config.Settings) []Step
}

// Report describes the outcome of one generator.
type Report struct {
	Generator string
	Skipped   bool
	Files     []string // paths rendered by this generator, in order
}

// Run executes a single generator. A disabled generator returns a skipped
// Report without touching the workspace.
func Run(ctx context.Context, g Generator, s config.Settings, ws *template.Workspace) (Report, error) {
	report := Report{Generator: g.Name()}

	if !g.Enabled(s) {
		report.Skipped = true
		return report, nil
	}

	for _, step := range g.Steps(s) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		dest, err := step.apply(ws)
		if err != nil {
			return report, fmt.Errorf("generator %s: %w", g.Name(), err)
		}
		if dest != "" {
			report.Files = append(report.Files, dest)
		}
	}

	return report, nil
}

// always is embedded by generators that run regardless of feature switches.
type always struct{}

func (always) Enabled(config.Settings) bool { return true }
