package generator

import "github.com/modu-ai/gemsmith/internal/config"

// Gem renders the library skeleton every gem needs.
type Gem struct{ always }

func (Gem) Name() string { return "gem" }

func (Gem) Steps(config.Settings) []Step {
	steps := renderAll(
		"%project_name%/bin/console.tmpl",
		"%project_name%/bin/setup.tmpl",
		"%project_name%/Gemfile.tmpl",
		"%project_name%/%project_name%.gemspec.tmpl",
		"%project_name%/lib/%project_path%.rb.tmpl",
		"%project_name%/lib/%project_path%/identity.rb.tmpl",
	)
	return append(steps,
		Permit{Path: "%project_name%/bin/console", Mode: ExecutableMode},
		Permit{Path: "%project_name%/bin/setup", Mode: ExecutableMode},
	)
}

// Ruby pins the Ruby version.
type Ruby struct{ always }

func (Ruby) Name() string { return "ruby" }

func (Ruby) Steps(config.Settings) []Step {
	return renderAll("%project_name%/.ruby-version.tmpl")
}

// Git renders the ignore file. Repository initialization and the initial
// commit happen once after every generator succeeds.
type Git struct{ always }

func (Git) Name() string { return "git" }

func (Git) Steps(config.Settings) []Step {
	return renderAll("%project_name%/.gitignore.tmpl")
}
