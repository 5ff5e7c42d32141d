package config

import (
	"context"
	"log/slog"
	"time"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultPlatform = "Gem::Platform::RUBY"
	DefaultLicense  = "MIT"

	DefaultRubyVersion  = "3.3.0"
	DefaultRailsVersion = "7.1"

	DefaultGitHubHost = "https://github.com"
)

// Git configuration keys consulted for author defaults.
const (
	GitKeyUserName   = "user.name"
	GitKeyUserEmail  = "user.email"
	GitKeyGitHubUser = "github.user"
)

// NewDefaultSettings returns Settings with all fields set to compiled defaults.
// Environment-dependent values (year, author, GitHub user) are left empty;
// see DiscoverDefaults.
func NewDefaultSettings() Settings {
	return Settings{
		Gem:      NewDefaultGemConfig(),
		Versions: NewDefaultVersions(),
		Build:    NewDefaultBuild(),
	}
}

// NewDefaultGemConfig returns the default packaging metadata.
func NewDefaultGemConfig() GemConfig {
	return GemConfig{
		Platform: DefaultPlatform,
		License:  DefaultLicense,
	}
}

// NewDefaultVersions returns the default version pins.
func NewDefaultVersions() Versions {
	return Versions{
		Ruby:  DefaultRubyVersion,
		Rails: DefaultRailsVersion,
	}
}

// NewDefaultBuild returns the default feature switches.
func NewDefaultBuild() Build {
	return Build{
		BundlerAudit: true,
		GitLint:      true,
		Guard:        true,
		Pry:          true,
		Reek:         true,
		Rspec:        true,
		Rubocop:      true,
		SimpleCov:    true,
	}
}

// GitConfigReader reads a single git configuration value.
type GitConfigReader interface {
	ConfigValue(ctx context.Context, key string) (string, error)
}

// DiscoverDefaults returns the compiled defaults completed with values from
// the environment: the current year and author details from git config.
// Git lookups that fail leave the field empty.
func DiscoverDefaults(ctx context.Context, now time.Time, git GitConfigReader, logger *slog.Logger) Settings {
	if logger == nil {
		logger = slog.Default()
	}

	s := NewDefaultSettings()
	s.Year = now.Year()

	if git == nil {
		return s
	}

	lookup := func(key string) string {
		value, err := git.ConfigValue(ctx, key)
		if err != nil {
			logger.Debug("git config value unavailable", "key", key, "error", err)
			return ""
		}
		return value
	}

	s.Author.Name = lookup(GitKeyUserName)
	s.Author.Email = lookup(GitKeyUserEmail)
	s.GitHubUser = lookup(GitKeyGitHubUser)

	return s
}

// GitHubURL returns the conventional GitHub project URL, or "" without a user.
func GitHubURL(user, project string) string {
	if user == "" || project == "" {
		return ""
	}
	return DefaultGitHubHost + "/" + user + "/" + project
}
