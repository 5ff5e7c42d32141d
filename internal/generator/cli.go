package generator

import (
	"regexp"

	"github.com/modu-ai/gemsmith/internal/config"
)

// InflectionLine registers the CLI acronym with the Zeitwerk loader.
const InflectionLine = `  loader.inflector.inflect "cli" => "CLI"` + "\n"

var loaderTagPattern = regexp.MustCompile(`tag`)

// CLI renders a command line executable and its library support.
type CLI struct{}

func (CLI) Name() string { return "cli" }

func (CLI) Enabled(s config.Settings) bool { return s.Build.CLI }

func (CLI) Steps(s config.Settings) []Step {
	steps := []Step{
		Render{Template: "%project_name%/exe/%project_name%.tmpl"},
		Permit{Path: "%project_name%/exe/%project_name%", Mode: ExecutableMode},
		Render{Template: "%project_name%/lib/%project_path%/cli.rb.tmpl"},
		InsertBefore{
			Path:    "%project_name%/lib/%project_path%.rb",
			Pattern: loaderTagPattern,
			Text:    InflectionLine,
		},
	}

	if s.Build.Rspec {
		steps = append(steps, Render{Template: "%project_name%/spec/lib/%project_path%/cli_spec.rb.tmpl"})
	}
	return steps
}
