// Package config resolves the settings that drive one gem generation run.
// Built-in defaults are overlaid with the user configuration file and then
// with explicitly passed command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrConflictingFeatures indicates mutually exclusive features were both enabled.
	ErrConflictingFeatures = errors.New("config: conflicting features")

	// ErrInvalidProjectName indicates the project name cannot produce a gem.
	ErrInvalidProjectName = errors.New("config: invalid project name")

	// ErrInvalidVersion indicates a version pin is not a valid version.
	ErrInvalidVersion = errors.New("config: invalid version")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidTOML indicates invalid TOML syntax in the configuration file.
	ErrInvalidTOML = errors.New("config: invalid TOML syntax")

	// ErrUnknownKey indicates the configuration file contains a key that is not recognized.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrUnsupportedFormat indicates the configuration file extension is not supported.
	ErrUnsupportedFormat = errors.New("config: unsupported configuration format")
)

// ConflictMessage is shown when a gem is requested with both CLI and engine support.
const ConflictMessage = "Generating a gem with CLI and Rails Engine functionality is not allowed. " +
	"Build separate gems for improved separation of concerns and design."

// ConflictError reports mutually exclusive features enabled together.
type ConflictError struct {
	Features []Feature
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return ConflictMessage
}

// Unwrap returns ErrConflictingFeatures.
func (e *ConflictError) Unwrap() error {
	return ErrConflictingFeatures
}

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}
