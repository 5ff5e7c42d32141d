package config

import (
	"context"
	"errors"
	"testing"
	"time"
)

func ptr[T any](v T) *T { return &v }

func TestResolveMergeOrder(t *testing.T) {
	t.Parallel()

	defaults := NewDefaultSettings()
	defaults.Author.Name = "Default Author"

	user := &UserConfig{
		Author:   AuthorOverlay{Name: ptr("User Author")},
		Versions: VersionsOverlay{Ruby: ptr("3.2.2")},
		Build:    BuildOverlay{Guard: ptr(false), CircleCI: ptr(true)},
	}
	flags := Overrides{Features: map[Feature]bool{
		FeatureCircleCI: false,
		FeatureCLI:      true,
	}}

	s, err := Resolve(defaults, user, flags, "tester")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if s.Author.Name != "User Author" {
		t.Errorf("Author.Name = %q, want %q", s.Author.Name, "User Author")
	}
	if s.Versions.Ruby != "3.2.2" {
		t.Errorf("Versions.Ruby = %q, want %q", s.Versions.Ruby, "3.2.2")
	}
	if s.Versions.Rails != DefaultRailsVersion {
		t.Errorf("Versions.Rails = %q, want default %q", s.Versions.Rails, DefaultRailsVersion)
	}
	if s.Build.Guard {
		t.Error("Build.Guard = true, want user override false")
	}
	if s.Build.CircleCI {
		t.Error("Build.CircleCI = true, want flag override false")
	}
	if !s.Build.CLI {
		t.Error("Build.CLI = false, want flag override true")
	}
	if !s.Build.Rspec {
		t.Error("Build.Rspec = false, want default true")
	}
	if defaults.Build.CLI {
		t.Error("Resolve mutated defaults")
	}
}

func TestResolveIdentity(t *testing.T) {
	t.Parallel()

	defaults := NewDefaultSettings()
	defaults.GitHubUser = "octo"

	s, err := Resolve(defaults, nil, Overrides{}, "  tester ")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if s.Project.Name != "tester" || s.Project.Class != "Tester" {
		t.Errorf("Project = %+v, want tester/Tester", s.Project)
	}
	if want := "https://github.com/octo/tester"; s.Gem.URL != want {
		t.Errorf("Gem.URL = %q, want %q", s.Gem.URL, want)
	}
}

func TestResolveKeepsConfiguredURL(t *testing.T) {
	t.Parallel()

	user := &UserConfig{Gem: GemOverlay{URL: ptr("https://example.com/tester")}}
	s, err := Resolve(NewDefaultSettings(), user, Overrides{}, "tester")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if s.Gem.URL != "https://example.com/tester" {
		t.Errorf("Gem.URL = %q, want configured URL", s.Gem.URL)
	}
}

func TestResolveConflictingFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		user  *UserConfig
		flags Overrides
	}{
		{
			name:  "both flags",
			flags: Overrides{Features: map[Feature]bool{FeatureCLI: true, FeatureEngine: true}},
		},
		{
			name:  "user file and flag",
			user:  &UserConfig{Build: BuildOverlay{Engine: ptr(true)}},
			flags: Overrides{Features: map[Feature]bool{FeatureCLI: true}},
		},
		{
			name: "conflict wins over invalid name",
			user: &UserConfig{Build: BuildOverlay{Engine: ptr(true), CLI: ptr(true)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name := "tester"
			if tt.name == "conflict wins over invalid name" {
				name = ""
			}

			_, err := Resolve(NewDefaultSettings(), tt.user, tt.flags, name)
			if !errors.Is(err, ErrConflictingFeatures) {
				t.Fatalf("Resolve() error = %v, want ErrConflictingFeatures", err)
			}

			var ce *ConflictError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConflictError, got %T", err)
			}
			if ce.Error() != ConflictMessage {
				t.Errorf("Error() = %q, want %q", ce.Error(), ConflictMessage)
			}
		})
	}
}

func TestResolveInvalidProjectName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "1tester", "tester!", "demo-1test"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(NewDefaultSettings(), nil, Overrides{}, name)
			if !errors.Is(err, ErrInvalidProjectName) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidProjectName", name, err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Resolve(%q) error should match ErrInvalidConfig", name)
			}
		})
	}
}

func TestResolveInvalidVersion(t *testing.T) {
	t.Parallel()

	user := &UserConfig{Versions: VersionsOverlay{Ruby: ptr("latest")}}
	_, err := Resolve(NewDefaultSettings(), user, Overrides{}, "tester")
	if !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("Resolve() error = %v, want ErrInvalidVersion", err)
	}

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if ve.Errors[0].Field != "versions.ruby" {
		t.Errorf("Field = %q, want %q", ve.Errors[0].Field, "versions.ruby")
	}
}

type fakeGitConfig map[string]string

func (f fakeGitConfig) ConfigValue(_ context.Context, key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", errors.New("not set")
	}
	return v, nil
}

func TestDiscoverDefaults(t *testing.T) {
	t.Parallel()

	git := fakeGitConfig{
		GitKeyUserName:  "Test",
		GitKeyUserEmail: "test@example.com",
	}
	now := time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)

	s := DiscoverDefaults(context.Background(), now, git, nil)

	if s.Year != 2026 {
		t.Errorf("Year = %d, want 2026", s.Year)
	}
	if s.Author.Name != "Test" || s.Author.Email != "test@example.com" {
		t.Errorf("Author = %+v, want git config values", s.Author)
	}
	if s.GitHubUser != "" {
		t.Errorf("GitHubUser = %q, want empty when unset", s.GitHubUser)
	}
	if s.Build != NewDefaultBuild() {
		t.Errorf("Build = %+v, want defaults", s.Build)
	}
}

func TestDefaultBuild(t *testing.T) {
	t.Parallel()

	b := NewDefaultBuild()
	on := []Feature{FeatureBundlerAudit, FeatureGitLint, FeatureGuard, FeaturePry, FeatureReek, FeatureRspec, FeatureRubocop, FeatureSimpleCov}
	off := []Feature{FeatureCircleCI, FeatureCLI, FeatureEngine, FeatureGitHub, FeatureSecurity}

	for _, f := range on {
		if !b.Enabled(f) {
			t.Errorf("default %q = false, want true", f)
		}
	}
	for _, f := range off {
		if b.Enabled(f) {
			t.Errorf("default %q = true, want false", f)
		}
	}
}
