package generator

import (
	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/defs"
)

// Documentation renders the project documents and indexes the README.
type Documentation struct{ always }

func (Documentation) Name() string { return "documentation" }

func (Documentation) Steps(config.Settings) []Step {
	steps := renderAll(
		"%project_name%/README.md.tmpl",
		"%project_name%/CONTRIBUTING.md.tmpl",
		"%project_name%/CODE_OF_CONDUCT.md.tmpl",
		"%project_name%/LICENSE.md.tmpl",
		"%project_name%/CHANGES.md.tmpl",
	)
	return append(steps, TableOfContents{Path: "%project_name%/" + defs.ReadmeMD})
}
