package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 30 * time.Second

// CommitSubject is the subject line of the initial skeleton commit.
const CommitSubject = "Added gem skeleton"

// ProjectURL is linked from the skeleton commit body.
const ProjectURL = "https://github.com/modu-ai/gemsmith"

// VersionControl is the subset of git gem generation and packaging rely on.
type VersionControl interface {
	// Init creates a repository in dir. Running it on an existing repository is safe.
	Init(ctx context.Context, dir string) error

	// AddAll stages every file in dir.
	AddAll(ctx context.Context, dir string) error

	// Commit records all tracked changes, skipping hooks.
	Commit(ctx context.Context, dir, subject, body string) error

	// IsClean reports whether dir has no uncommitted or untracked changes.
	IsClean(ctx context.Context, dir string) (bool, error)

	// ConfigValue returns a global configuration value, or "" when unset.
	ConfigValue(ctx context.Context, key string) (string, error)
}

// Compile-time interface compliance check.
var _ VersionControl = (*Manager)(nil)

// Manager implements VersionControl using the system git binary.
type Manager struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		timeout: DefaultTimeout,
		logger:  logger.With("module", "git"),
	}
}

// CommitMessage returns the subject and body of the skeleton commit.
func CommitMessage(version string) (subject, body string) {
	return CommitSubject, fmt.Sprintf("Generated with [Gemsmith](%s)\n%s.", ProjectURL, version)
}

// Init runs git init in dir.
func (m *Manager) Init(ctx context.Context, dir string) error {
	m.logger.Debug("initializing repository", "dir", dir)

	if _, err := m.run(ctx, dir, "init"); err != nil {
		return fmt.Errorf("init %s: %w", dir, err)
	}
	return nil
}

// AddAll stages the whole work tree.
func (m *Manager) AddAll(ctx context.Context, dir string) error {
	m.logger.Debug("staging files", "dir", dir)

	if _, err := m.run(ctx, dir, "add", "."); err != nil {
		return fmt.Errorf("add %s: %w", dir, err)
	}
	return nil
}

// Commit commits all changes with a subject and an optional body paragraph.
func (m *Manager) Commit(ctx context.Context, dir, subject, body string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrEmptyCommitMessage
	}

	args := []string{"commit", "--all", "--no-verify", "--message", subject}
	if body != "" {
		args = append(args, "--message", body)
	}

	m.logger.Debug("committing", "dir", dir, "subject", subject)
	if _, err := m.run(ctx, dir, args...); err != nil {
		return fmt.Errorf("commit %s: %w", dir, err)
	}
	return nil
}

// IsClean returns true if the working tree has no uncommitted changes.
func (m *Manager) IsClean(ctx context.Context, dir string) (bool, error) {
	if _, err := m.run(ctx, dir, "rev-parse", "--git-dir"); err != nil {
		if errors.Is(err, ErrSystemGitNotFound) {
			return false, err
		}
		return false, fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}

	out, err := m.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("status %s: %w", dir, err)
	}

	clean := strings.TrimSpace(out) == ""
	m.logger.Debug("cleanness check complete", "dir", dir, "clean", clean)
	return clean, nil
}

// ConfigValue reads a global git setting. Unset keys yield "" without error.
func (m *Manager) ConfigValue(ctx context.Context, key string) (string, error) {
	out, err := m.run(ctx, "", "config", "--get", key)
	if err != nil {
		var exitErr *exec.ExitError
		// git config exits 1 for a missing key.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("config %s: %w", key, err)
	}
	return strings.TrimSpace(out), nil
}

func (m *Manager) run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return execGit(ctx, dir, args...)
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
