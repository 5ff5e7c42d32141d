// Package template renders the embedded gem skeleton and applies the file
// edits generators perform on already-rendered output.
package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the referenced template does not exist.
	ErrTemplateNotFound = errors.New("template: template not found")

	// ErrMissingTemplateKey indicates the template referenced a value the data does not provide.
	ErrMissingTemplateKey = errors.New("template: missing template key")

	// ErrUnexpandedToken indicates template tokens remain in the rendered output.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrUnresolvedPlaceholder indicates a %token% in a path has no value.
	ErrUnresolvedPlaceholder = errors.New("template: unresolved placeholder")

	// ErrPathTraversal indicates a destination path escapes the workspace root.
	ErrPathTraversal = errors.New("template: path traversal")

	// ErrPatternNotFound indicates no line matched an insertion pattern.
	ErrPatternNotFound = errors.New("template: insertion pattern not found")

	// ErrFileNotFound indicates an edit targeted a file that was never rendered.
	ErrFileNotFound = errors.New("template: file not found")

	// ErrPermissionsUnsupported indicates the workspace filesystem cannot change file modes.
	ErrPermissionsUnsupported = errors.New("template: filesystem does not support permissions")
)

// RenderError reports a failed render or file edit with the operation and
// the destination it targeted.
type RenderError struct {
	Op   string // render, permit, insert, append, update
	Path string
	Err  error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("template %s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.Err
}
