package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEditorNotSet is returned when $EDITOR is empty.
var ErrEditorNotSet = errors.New("EDITOR environment variable is not set")

// Launcher hands a path or URL to the user's editor or browser.
type Launcher interface {
	Edit(ctx context.Context, path string) error
	Browse(ctx context.Context, url string) error
}

// Compile-time interface compliance check.
var _ Launcher = (*SystemLauncher)(nil)

// SystemLauncher starts $EDITOR and the platform URL opener attached to the
// current terminal.
type SystemLauncher struct {
	getenv func(string) string
	goos   string
	logger *slog.Logger
}

// NewSystemLauncher creates a SystemLauncher reading the environment through getenv.
func NewSystemLauncher(getenv func(string) string, logger *slog.Logger) *SystemLauncher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SystemLauncher{getenv: getenv, goos: runtime.GOOS, logger: logger.With("module", "launcher")}
}

// Edit opens path in $EDITOR, which may carry its own arguments ("code -w").
func (l *SystemLauncher) Edit(ctx context.Context, path string) error {
	name, args, err := l.editorCommand(path)
	if err != nil {
		return err
	}
	return l.start(ctx, name, args...)
}

// Browse opens url with the platform default handler.
func (l *SystemLauncher) Browse(ctx context.Context, url string) error {
	name, args := browserCommand(l.goos, url)
	return l.start(ctx, name, args...)
}

func (l *SystemLauncher) editorCommand(path string) (string, []string, error) {
	fields := strings.Fields(l.getenv("EDITOR"))
	if len(fields) == 0 {
		return "", nil, ErrEditorNotSet
	}
	return fields[0], append(fields[1:], path), nil
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func (l *SystemLauncher) start(ctx context.Context, name string, args ...string) error {
	l.logger.Debug("launching", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	return nil
}
