package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error)
}

// CommandResult holds the outcome of a single command execution.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: exit code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap exposes ErrCommandFailed and the underlying exec error.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Err}
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands with os/exec, capturing their output.
type ExecRunner struct {
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner. A nil logger discards output.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{logger: logger.With("module", "tools")}
}

// Run executes name with args in dir. A non-zero exit yields a *CommandError
// alongside the captured result.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (CommandResult, error) {
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.logger.Debug("running command", "command", command, "dir", dir)

	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r.logger.Debug("command did not start", "command", command, "error", err)
		}
		return result, &CommandError{
			Command:  command,
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(result.Stderr),
			Err:      err,
		}
	}

	r.logger.Debug("command finished", "command", command, "duration", result.Duration)
	return result, nil
}
