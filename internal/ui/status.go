package ui

import (
	"fmt"
	"io"
)

// Printer writes user-facing status lines. Each call produces exactly one line.
type Printer struct {
	out   io.Writer
	err   io.Writer
	theme *Theme
}

// NewPrinter creates a Printer writing informational lines to out and
// failures to errOut.
func NewPrinter(out, errOut io.Writer, theme *Theme) *Printer {
	if theme == nil {
		theme = NewTheme(ThemeConfig{NoColor: true})
	}
	return &Printer{out: out, err: errOut, theme: theme}
}

// Info prints msg to the standard stream.
func (p *Printer) Info(msg string) {
	_, _ = fmt.Fprintln(p.out, p.theme.Info.Render(msg))
}

// Plain prints msg to the standard stream without styling.
func (p *Printer) Plain(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

// Warn prints msg to the error stream.
func (p *Printer) Warn(msg string) {
	_, _ = fmt.Fprintln(p.err, p.theme.Warn.Render(msg))
}

// Error prints msg to the error stream.
func (p *Printer) Error(msg string) {
	_, _ = fmt.Fprintln(p.err, p.theme.Error.Render(msg))
}
