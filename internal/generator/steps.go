package generator

import (
	"os"
	"regexp"

	"github.com/modu-ai/gemsmith/internal/defs"
	"github.com/modu-ai/gemsmith/internal/template"
)

// ExecutableMode is applied to generated scripts.
const ExecutableMode = defs.ExecutableMode

// Step is one unit of work within a generator. The set of step kinds is
// closed: Render, Permit, InsertBefore, Append and TableOfContents.
type Step interface {
	// apply performs the step and returns the rendered path, if any.
	apply(ws *template.Workspace) (string, error)
}

// Render renders one template to its placeholder-expanded destination.
type Render struct {
	Template string
}

func (r Render) apply(ws *template.Workspace) (string, error) {
	return ws.Render(r.Template)
}

// Permit sets the mode of an already-rendered file.
type Permit struct {
	Path string
	Mode os.FileMode
}

func (p Permit) apply(ws *template.Workspace) (string, error) {
	return "", ws.Permit(p.Path, p.Mode)
}

// InsertBefore inserts Text before the first line matching Pattern.
type InsertBefore struct {
	Path    string
	Pattern *regexp.Regexp
	Text    string
}

func (i InsertBefore) apply(ws *template.Workspace) (string, error) {
	return "", ws.InsertBefore(i.Path, i.Pattern, i.Text)
}

// Append adds Text to the end of a file. Empty text is never appended.
type Append struct {
	Path string
	Text string
}

func (a Append) apply(ws *template.Workspace) (string, error) {
	return "", ws.Append(a.Path, a.Text)
}

// TableOfContents writes a table of contents for the second level and deeper
// headings of a Markdown file.
type TableOfContents struct {
	Path string
}

func (t TableOfContents) apply(ws *template.Workspace) (string, error) {
	return "", ws.Update(t.Path, "toc", InsertTableOfContents)
}

// renderAll turns template references into Render steps.
func renderAll(templates ...string) []Step {
	steps := make([]Step, len(templates))
	for i, ref := range templates {
		steps[i] = Render{Template: ref}
	}
	return steps
}
