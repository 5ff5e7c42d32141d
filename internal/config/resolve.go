package config

import (
	"strings"

	"github.com/modu-ai/gemsmith/pkg/models"
)

// Overrides carries the command line flags that were explicitly passed.
// Features holds only flags the user changed; absent features keep the
// value from defaults or the user configuration file.
type Overrides struct {
	Features map[Feature]bool
}

// Resolve merges defaults < user configuration < flags, derives the project
// identity from projectName and validates the result. The returned Settings
// is independent of its inputs.
func Resolve(defaults Settings, user *UserConfig, flags Overrides, projectName string) (Settings, error) {
	s := defaults

	if user != nil {
		s = user.Apply(s)
	}

	b := s.Build
	for _, f := range AllFeatures() {
		if on, ok := flags.Features[f]; ok {
			b = b.With(f, on)
		}
	}
	s = s.WithBuild(b)

	s.Project = models.NewProjectIdentity(strings.TrimSpace(projectName))
	if s.Gem.URL == "" {
		s.Gem.URL = GitHubURL(s.GitHubUser, s.Project.Name)
	}

	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Apply overlays every non-nil field of u onto a copy of s.
func (u *UserConfig) Apply(s Settings) Settings {
	setInt(&s.Year, u.Year)
	setString(&s.GitHubUser, u.GitHubUser)

	setString(&s.Gem.Platform, u.Gem.Platform)
	setString(&s.Gem.URL, u.Gem.URL)
	setString(&s.Gem.License, u.Gem.License)

	setString(&s.Author.Name, u.Author.Name)
	setString(&s.Author.Email, u.Author.Email)
	setString(&s.Author.URL, u.Author.URL)

	setString(&s.Organization.Name, u.Organization.Name)
	setString(&s.Organization.URL, u.Organization.URL)

	setString(&s.Versions.Ruby, u.Versions.Ruby)
	setString(&s.Versions.Rails, u.Versions.Rails)

	setBool(&s.Publish.Sign, u.Publish.Sign)

	b := s.Build
	for f, v := range u.Build.values() {
		if v != nil {
			b = b.With(f, *v)
		}
	}
	s.Build = b

	return s
}

func (o BuildOverlay) values() map[Feature]*bool {
	return map[Feature]*bool{
		FeatureBundlerAudit: o.BundlerAudit,
		FeatureCircleCI:     o.CircleCI,
		FeatureCLI:          o.CLI,
		FeatureEngine:       o.Engine,
		FeatureGitHub:       o.GitHub,
		FeatureGitLint:      o.GitLint,
		FeatureGuard:        o.Guard,
		FeaturePry:          o.Pry,
		FeatureReek:         o.Reek,
		FeatureRspec:        o.Rspec,
		FeatureRubocop:      o.Rubocop,
		FeatureSecurity:     o.Security,
		FeatureSimpleCov:    o.SimpleCov,
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
