// Package tools wraps the external programs run after a gem exists: gem
// packaging, installation and working tree checks.
package tools

import "errors"

var (
	// ErrCommandFailed indicates an external command exited unsuccessfully.
	ErrCommandFailed = errors.New("tools: command failed")

	// ErrSpecificationNotFound indicates no *.gemspec file exists in the directory.
	ErrSpecificationNotFound = errors.New("tools: gem specification not found")

	// ErrInvalidSpecification indicates a gemspec lacks a name or a parseable version.
	ErrInvalidSpecification = errors.New("tools: invalid gem specification")

	// ErrUncommittedChanges indicates a build was attempted on a dirty work tree.
	ErrUncommittedChanges = errors.New("tools: gem has uncommitted changes")
)
