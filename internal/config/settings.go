package config

import (
	"strconv"

	"github.com/modu-ai/gemsmith/pkg/models"
)

// Settings is the fully merged configuration for one generation run.
// It is passed by value; generators read it and never modify it.
type Settings struct {
	Year         int                    `yaml:"year"`
	GitHubUser   string                 `yaml:"github_user"`
	Project      models.ProjectIdentity `yaml:"project"`
	Gem          GemConfig              `yaml:"gem"`
	Author       Author                 `yaml:"author"`
	Organization Organization           `yaml:"organization"`
	Versions     Versions               `yaml:"versions"`
	Build        Build                  `yaml:"build"`
	Publish      Publish                `yaml:"publish"`
}

// GemConfig holds packaging metadata written into the gemspec.
type GemConfig struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	License  string `yaml:"license"`
}

// Author identifies the gem author.
type Author struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	URL   string `yaml:"url"`
}

// Organization identifies the owning organization, if any.
type Organization struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Versions holds the version pins written into generated files.
type Versions struct {
	Ruby  string `yaml:"ruby"`
	Rails string `yaml:"rails"`
}

// Publish controls gem publishing metadata.
type Publish struct {
	Sign bool `yaml:"sign"`
}

// Build holds one switch per optional feature.
type Build struct {
	BundlerAudit bool `yaml:"bundler_audit"`
	CircleCI     bool `yaml:"circle_ci"`
	CLI          bool `yaml:"cli"`
	Engine       bool `yaml:"engine"`
	GitHub       bool `yaml:"git_hub"`
	GitLint      bool `yaml:"git_lint"`
	Guard        bool `yaml:"guard"`
	Pry          bool `yaml:"pry"`
	Reek         bool `yaml:"reek"`
	Rspec        bool `yaml:"rspec"`
	Rubocop      bool `yaml:"rubocop"`
	Security     bool `yaml:"security"`
	SimpleCov    bool `yaml:"simple_cov"`
}

// Feature names an optional capability of a generated gem.
// The value doubles as the command line flag name.
type Feature string

// Feature constants.
const (
	FeatureBundlerAudit Feature = "bundler-audit"
	FeatureCircleCI     Feature = "circle-ci"
	FeatureCLI          Feature = "cli"
	FeatureEngine       Feature = "engine"
	FeatureGitHub       Feature = "git-hub"
	FeatureGitLint      Feature = "git-lint"
	FeatureGuard        Feature = "guard"
	FeaturePry          Feature = "pry"
	FeatureReek         Feature = "reek"
	FeatureRspec        Feature = "rspec"
	FeatureRubocop      Feature = "rubocop"
	FeatureSecurity     Feature = "security"
	FeatureSimpleCov    Feature = "simple-cov"
)

var featureDescriptions = map[Feature]string{
	FeatureBundlerAudit: "Add Bundler Audit support.",
	FeatureCircleCI:     "Add Circle CI support.",
	FeatureCLI:          "Add CLI support.",
	FeatureEngine:       "Add Rails Engine support.",
	FeatureGitHub:       "Add GitHub support.",
	FeatureGitLint:      "Add Git Lint support.",
	FeatureGuard:        "Add Guard support.",
	FeaturePry:          "Add Pry support.",
	FeatureReek:         "Add Reek support.",
	FeatureRspec:        "Add RSpec support.",
	FeatureRubocop:      "Add Rubocop support.",
	FeatureSecurity:     "Add security support (gem signing).",
	FeatureSimpleCov:    "Add SimpleCov support.",
}

// AllFeatures returns every feature in declaration order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureBundlerAudit,
		FeatureCircleCI,
		FeatureCLI,
		FeatureEngine,
		FeatureGitHub,
		FeatureGitLint,
		FeatureGuard,
		FeaturePry,
		FeatureReek,
		FeatureRspec,
		FeatureRubocop,
		FeatureSecurity,
		FeatureSimpleCov,
	}
}

// Description returns the help text for the feature flag.
func (f Feature) Description() string {
	return featureDescriptions[f]
}

// field returns a pointer to the switch for f, or nil when f is unknown.
func (b *Build) field(f Feature) *bool {
	switch f {
	case FeatureBundlerAudit:
		return &b.BundlerAudit
	case FeatureCircleCI:
		return &b.CircleCI
	case FeatureCLI:
		return &b.CLI
	case FeatureEngine:
		return &b.Engine
	case FeatureGitHub:
		return &b.GitHub
	case FeatureGitLint:
		return &b.GitLint
	case FeatureGuard:
		return &b.Guard
	case FeaturePry:
		return &b.Pry
	case FeatureReek:
		return &b.Reek
	case FeatureRspec:
		return &b.Rspec
	case FeatureRubocop:
		return &b.Rubocop
	case FeatureSecurity:
		return &b.Security
	case FeatureSimpleCov:
		return &b.SimpleCov
	}
	return nil
}

// Enabled reports whether feature f is switched on. Unknown features are off.
func (b Build) Enabled(f Feature) bool {
	if p := b.field(f); p != nil {
		return *p
	}
	return false
}

// With returns a copy of b with feature f set to on. Unknown features are ignored.
func (b Build) With(f Feature, on bool) Build {
	if p := b.field(f); p != nil {
		*p = on
	}
	return b
}

// EnabledFeatures returns the switched-on features in declaration order.
func (b Build) EnabledFeatures() []Feature {
	var out []Feature
	for _, f := range AllFeatures() {
		if b.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// WithBuild returns a copy of s with its feature switches replaced.
func (s Settings) WithBuild(b Build) Settings {
	s.Build = b
	return s
}

// Placeholders returns the %token% substitution values derived from s.
func (s Settings) Placeholders() map[string]string {
	return map[string]string{
		"project_label":     s.Project.Label,
		"project_name":      s.Project.Name,
		"project_path":      s.Project.Path,
		"project_class":     s.Project.Class,
		"author_name":       s.Author.Name,
		"author_email":      s.Author.Email,
		"author_url":        s.Author.URL,
		"organization_name": s.Organization.Name,
		"organization_url":  s.Organization.URL,
		"github_user":       s.GitHubUser,
		"gem_platform":      s.Gem.Platform,
		"gem_url":           s.Gem.URL,
		"gem_license":       s.Gem.License,
		"ruby_version":      s.Versions.Ruby,
		"rails_version":     s.Versions.Rails,
		"year":              strconv.Itoa(s.Year),
	}
}
