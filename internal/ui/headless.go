package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether animated components may take over the
// terminal. Generation in CI, pipes and tests runs headless.
type HeadlessManager struct {
	forced *bool
	file   *os.File
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{file: os.Stdout}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := h.file.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ColorDisabled reports whether output should be plain: headless terminals
// and a set NO_COLOR variable disable color.
func (h *HeadlessManager) ColorDisabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return h.IsHeadless()
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
