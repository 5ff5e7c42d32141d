package config

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// projectNamePattern matches gem names whose segments can become Ruby constants.
var projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*(-[a-z][a-z0-9_]*)*$`)

// Validate checks the settings for correctness. Conflicting features are
// reported alone as a *ConflictError; all other problems are collected into
// *ValidationErrors.
func Validate(s Settings) error {
	if err := validateFeatures(s.Build); err != nil {
		return err
	}

	var errs []ValidationError
	errs = append(errs, validateProjectName(s.Project.Name)...)
	errs = append(errs, validateVersions(s.Versions)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateFeatures rejects feature combinations that cannot coexist.
func validateFeatures(b Build) error {
	if b.CLI && b.Engine {
		return &ConflictError{Features: []Feature{FeatureCLI, FeatureEngine}}
	}
	return nil
}

func validateProjectName(name string) []ValidationError {
	if name == "" {
		return []ValidationError{{
			Field:   "project.name",
			Message: "required field is empty; pass the gem name as an argument (example: gemsmith generate my_gem)",
			Wrapped: ErrInvalidProjectName,
		}}
	}
	if !projectNamePattern.MatchString(name) {
		return []ValidationError{{
			Field:   "project.name",
			Message: "must start with a letter and contain only letters, digits, underscores and dashes",
			Value:   name,
			Wrapped: ErrInvalidProjectName,
		}}
	}
	return nil
}

func validateVersions(v Versions) []ValidationError {
	var errs []ValidationError

	pins := []struct {
		field string
		value string
	}{
		{"versions.ruby", v.Ruby},
		{"versions.rails", v.Rails},
	}

	for _, pin := range pins {
		if _, err := semver.NewVersion(pin.value); err != nil {
			errs = append(errs, ValidationError{
				Field:   pin.field,
				Message: fmt.Sprintf("must be a version number: %v", err),
				Value:   pin.value,
				Wrapped: ErrInvalidVersion,
			})
		}
	}

	return errs
}
