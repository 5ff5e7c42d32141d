package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrGemNotInstalled indicates RubyGems does not know the requested gem.
var ErrGemNotInstalled = errors.New("tools: gem not installed")

// Locator queries RubyGems about installed gems.
type Locator struct {
	runner Runner
}

// NewLocator creates a Locator.
func NewLocator(runner Runner) *Locator {
	return &Locator{runner: runner}
}

// InstallDir returns the directory an installed gem lives in.
func (l *Locator) InstallDir(ctx context.Context, name string) (string, error) {
	res, err := l.runner.Run(ctx, "", "gem", "contents", "--show-install-dir", name)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", name, ErrGemNotInstalled, err)
	}

	dir := strings.TrimSpace(res.Stdout)
	if dir == "" {
		return "", fmt.Errorf("%s: %w", name, ErrGemNotInstalled)
	}
	return dir, nil
}

// Homepage returns the homepage of an installed gem, or "" when undefined.
func (l *Locator) Homepage(ctx context.Context, name string) (string, error) {
	res, err := l.runner.Run(ctx, "", "gem", "specification", name, "homepage")
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", name, ErrGemNotInstalled, err)
	}
	return ParseHomepage(res.Stdout)
}

// ParseHomepage decodes the YAML scalar printed by gem specification.
func ParseHomepage(out string) (string, error) {
	var homepage *string
	if err := yaml.Unmarshal([]byte(out), &homepage); err != nil {
		return "", fmt.Errorf("parse homepage: %w", err)
	}
	if homepage == nil {
		return "", nil
	}
	return strings.TrimSpace(*homepage), nil
}
