package generator

import "github.com/modu-ai/gemsmith/internal/config"

// Rspec renders the spec harness.
type Rspec struct{}

func (Rspec) Name() string { return "rspec" }

func (Rspec) Enabled(s config.Settings) bool { return s.Build.Rspec }

func (Rspec) Steps(config.Settings) []Step {
	return renderAll(
		"%project_name%/spec/spec_helper.rb.tmpl",
		"%project_name%/spec/support/shared_contexts/temp_dir.rb.tmpl",
	)
}

// Reek renders the Reek configuration.
type Reek struct{}

func (Reek) Name() string { return "reek" }

func (Reek) Enabled(s config.Settings) bool { return s.Build.Reek }

func (Reek) Steps(config.Settings) []Step {
	return renderAll("%project_name%/.reek.yml.tmpl")
}

// Rubocop renders the Rubocop configuration.
type Rubocop struct{}

func (Rubocop) Name() string { return "rubocop" }

func (Rubocop) Enabled(s config.Settings) bool { return s.Build.Rubocop }

func (Rubocop) Steps(config.Settings) []Step {
	return renderAll("%project_name%/.rubocop.yml.tmpl")
}

// Guard renders the Guardfile.
type Guard struct{}

func (Guard) Name() string { return "guard" }

func (Guard) Enabled(s config.Settings) bool { return s.Build.Guard }

func (Guard) Steps(config.Settings) []Step {
	return renderAll("%project_name%/Guardfile.tmpl")
}

// CircleCI renders the Circle CI configuration.
type CircleCI struct{}

func (CircleCI) Name() string { return "circle_ci" }

func (CircleCI) Enabled(s config.Settings) bool { return s.Build.CircleCI }

func (CircleCI) Steps(config.Settings) []Step {
	return renderAll("%project_name%/circle.yml.tmpl")
}

// GitHub renders issue and pull request templates.
type GitHub struct{}

func (GitHub) Name() string { return "git_hub" }

func (GitHub) Enabled(s config.Settings) bool { return s.Build.GitHub }

func (GitHub) Steps(config.Settings) []Step {
	return renderAll(
		"%project_name%/.github/ISSUE_TEMPLATE.md.tmpl",
		"%project_name%/.github/PULL_REQUEST_TEMPLATE.md.tmpl",
	)
}

// GitLint only contributes a Rake task and a Gemfile entry, both rendered
// by other generators from the same switch.
type GitLint struct{}

func (GitLint) Name() string { return "git_lint" }

func (GitLint) Enabled(s config.Settings) bool { return s.Build.GitLint }

func (GitLint) Steps(config.Settings) []Step { return nil }

// BundlerAudit only contributes a Rake task and a Gemfile entry.
type BundlerAudit struct{}

func (BundlerAudit) Name() string { return "bundler_audit" }

func (BundlerAudit) Enabled(s config.Settings) bool { return s.Build.BundlerAudit }

func (BundlerAudit) Steps(config.Settings) []Step { return nil }
