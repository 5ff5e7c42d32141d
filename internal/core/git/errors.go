// Package git drives the system git binary for the few repository
// operations gem generation and publishing need.
package git

import "errors"

var (
	// ErrSystemGitNotFound indicates git is not installed or not on PATH.
	ErrSystemGitNotFound = errors.New("git: system git not found")

	// ErrNotRepository indicates the directory is not inside a git work tree.
	ErrNotRepository = errors.New("git: not a repository")

	// ErrEmptyCommitMessage indicates a commit was requested without a subject.
	ErrEmptyCommitMessage = errors.New("git: empty commit message")
)
