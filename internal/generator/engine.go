package generator

import "github.com/modu-ai/gemsmith/internal/config"

// Engine renders a Rails engine with install and upgrade generators.
type Engine struct{}

func (Engine) Name() string { return "engine" }

func (Engine) Enabled(s config.Settings) bool { return s.Build.Engine }

func (Engine) Steps(s config.Settings) []Step {
	steps := renderAll(
		"%project_name%/lib/%project_path%/engine.rb.tmpl",
		"%project_name%/lib/generators/%project_path%/install/USAGE.tmpl",
		"%project_name%/lib/generators/%project_path%/install/install_generator.rb.tmpl",
		"%project_name%/lib/generators/%project_path%/upgrade/USAGE.tmpl",
		"%project_name%/lib/generators/%project_path%/upgrade/upgrade_generator.rb.tmpl",
		"%project_name%/app/controllers/%project_path%/application_controller.rb.tmpl",
		"%project_name%/app/mailers/%project_path%/application_mailer.rb.tmpl",
		"%project_name%/app/models/%project_path%/application_record.rb.tmpl",
	)

	if s.Build.Rspec {
		steps = append(steps, Render{Template: "%project_name%/spec/rails_helper.rb.tmpl"})
	}
	return steps
}
