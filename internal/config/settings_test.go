package config

import (
	"testing"
)

func TestBuildEnabledAndWith(t *testing.T) {
	t.Parallel()

	b := Build{}
	for _, f := range AllFeatures() {
		if b.Enabled(f) {
			t.Errorf("Enabled(%q) = true on zero Build", f)
		}

		on := b.With(f, true)
		if !on.Enabled(f) {
			t.Errorf("With(%q, true).Enabled() = false", f)
		}
		if b.Enabled(f) {
			t.Errorf("With(%q, true) mutated the receiver", f)
		}
	}
}

func TestBuildUnknownFeature(t *testing.T) {
	t.Parallel()

	b := NewDefaultBuild()
	if got := b.With("bogus", true); got != b {
		t.Errorf("With(bogus) changed Build: %+v", got)
	}
	if b.Enabled("bogus") {
		t.Error("Enabled(bogus) = true, want false")
	}
	if d := Feature("bogus").Description(); d != "" {
		t.Errorf("Description(bogus) = %q, want empty", d)
	}
}

func TestAllFeaturesHaveDescriptions(t *testing.T) {
	t.Parallel()

	for _, f := range AllFeatures() {
		b := Build{}
		if b.With(f, true) == b {
			t.Errorf("feature %q has no build switch", f)
		}
		if f.Description() == "" {
			t.Errorf("feature %q has no description", f)
		}
	}
}

func TestEnabledFeaturesOrder(t *testing.T) {
	t.Parallel()

	b := Build{Rubocop: true, CLI: true, BundlerAudit: true}
	got := b.EnabledFeatures()
	want := []Feature{FeatureBundlerAudit, FeatureCLI, FeatureRubocop}

	if len(got) != len(want) {
		t.Fatalf("EnabledFeatures() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnabledFeatures()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWithBuildDoesNotMutate(t *testing.T) {
	t.Parallel()

	s := NewDefaultSettings()
	changed := s.WithBuild(Build{CLI: true})

	if s.Build.CLI {
		t.Error("WithBuild mutated the original settings")
	}
	if !changed.Build.CLI {
		t.Error("WithBuild did not apply the new build")
	}
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	s, err := Resolve(NewDefaultSettings(), nil, Overrides{}, "demo-test")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	s.Year = 2026

	p := s.Placeholders()
	tests := map[string]string{
		"project_name":  "demo-test",
		"project_path":  "demo/test",
		"project_class": "Demo::Test",
		"project_label": "Demo Test",
		"year":          "2026",
		"ruby_version":  DefaultRubyVersion,
		"gem_license":   DefaultLicense,
	}
	for key, want := range tests {
		if got := p[key]; got != want {
			t.Errorf("Placeholders()[%q] = %q, want %q", key, got, want)
		}
	}
}
