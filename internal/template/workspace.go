package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/modu-ai/gemsmith/internal/defs"
)

// Default file modes for rendered output.
const (
	defaultDirMode  = defs.DirMode
	defaultFileMode = defs.FileMode
)

// Workspace is the destination of one generation run. It renders templates
// into a billy filesystem and applies the edits generators perform on files
// that are already rendered. A Workspace is used by a single goroutine.
type Workspace struct {
	fs           billy.Filesystem
	renderer     Renderer
	placeholders Placeholders
	data         any
	files        []string
	logger       *slog.Logger
}

// WorkspaceOptions configures a Workspace.
type WorkspaceOptions struct {
	Renderer     Renderer
	Placeholders Placeholders
	Data         any // value passed to every template
	Logger       *slog.Logger
}

// NewWorkspace creates a Workspace writing into fsys.
func NewWorkspace(fsys billy.Filesystem, opts WorkspaceOptions) *Workspace {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Workspace{
		fs:           fsys,
		renderer:     opts.Renderer,
		placeholders: opts.Placeholders,
		data:         opts.Data,
		logger:       logger.With("module", "workspace"),
	}
}

// Resolve expands placeholders in a path and checks it stays inside the workspace.
func (w *Workspace) Resolve(ref string) (string, error) {
	dest, err := w.placeholders.ExpandPath(ref)
	if err != nil {
		return "", err
	}
	if err := validateWorkspacePath(dest); err != nil {
		return "", err
	}
	return path.Clean(dest), nil
}

// Render renders the template ref and writes it to its expanded destination.
// It returns the destination path relative to the workspace root.
func (w *Workspace) Render(ref string) (string, error) {
	dest, err := w.Resolve(ref)
	if err != nil {
		return "", &RenderError{Op: "render", Path: ref, Err: err}
	}

	content, err := w.renderer.Render(ref, w.data)
	if err != nil {
		return "", &RenderError{Op: "render", Path: dest, Err: err}
	}
	content = []byte(w.placeholders.ExpandContent(string(content)))

	if err := w.write(dest, content, defaultFileMode); err != nil {
		return "", &RenderError{Op: "render", Path: dest, Err: err}
	}

	w.track(dest)
	w.logger.Debug("rendered template", "template", ref, "path", dest)
	return dest, nil
}

// Permit sets the mode of an already-rendered file.
func (w *Workspace) Permit(ref string, mode os.FileMode) error {
	dest, err := w.Resolve(ref)
	if err != nil {
		return &RenderError{Op: "permit", Path: ref, Err: err}
	}
	if !w.Exists(dest) {
		return &RenderError{Op: "permit", Path: dest, Err: ErrFileNotFound}
	}

	chmod, ok := w.fs.(billy.Chmod)
	if !ok {
		return &RenderError{Op: "permit", Path: dest, Err: ErrPermissionsUnsupported}
	}
	if err := chmod.Chmod(dest, mode); err != nil {
		return &RenderError{Op: "permit", Path: dest, Err: err}
	}

	w.logger.Debug("changed file mode", "path", dest, "mode", fmt.Sprintf("%#o", mode))
	return nil
}

// InsertBefore inserts text immediately before the first line of the file
// matching pattern. It is a no-op when the file already contains text.
func (w *Workspace) InsertBefore(ref string, pattern *regexp.Regexp, text string) error {
	return w.Update(ref, "insert", func(content []byte) ([]byte, error) {
		if bytes.Contains(content, []byte(text)) {
			return content, nil
		}

		lines := bytes.SplitAfter(content, []byte("\n"))
		for i, line := range lines {
			if pattern.Match(line) {
				out := make([]byte, 0, len(content)+len(text))
				for _, before := range lines[:i] {
					out = append(out, before...)
				}
				out = append(out, text...)
				for _, after := range lines[i:] {
					out = append(out, after...)
				}
				return out, nil
			}
		}

		return nil, fmt.Errorf("%w: %s", ErrPatternNotFound, pattern)
	})
}

// Append adds text to the end of the file. It is a no-op when the file
// already ends with text or text is empty.
func (w *Workspace) Append(ref string, text string) error {
	return w.Update(ref, "append", func(content []byte) ([]byte, error) {
		if text == "" || bytes.HasSuffix(content, []byte(text)) {
			return content, nil
		}
		return append(content, text...), nil
	})
}

// Update rewrites an already-rendered file through edit, preserving its mode.
// The file is not written when edit returns the content unchanged.
func (w *Workspace) Update(ref, op string, edit func([]byte) ([]byte, error)) error {
	dest, err := w.Resolve(ref)
	if err != nil {
		return &RenderError{Op: op, Path: ref, Err: err}
	}

	info, err := w.fs.Stat(dest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &RenderError{Op: op, Path: dest, Err: ErrFileNotFound}
		}
		return &RenderError{Op: op, Path: dest, Err: err}
	}

	content, err := util.ReadFile(w.fs, dest)
	if err != nil {
		return &RenderError{Op: op, Path: dest, Err: err}
	}

	updated, err := edit(slices.Clone(content))
	if err != nil {
		return &RenderError{Op: op, Path: dest, Err: err}
	}
	if bytes.Equal(updated, content) {
		w.logger.Debug("file already up to date", "op", op, "path", dest)
		return nil
	}

	if err := w.write(dest, updated, info.Mode().Perm()); err != nil {
		return &RenderError{Op: op, Path: dest, Err: err}
	}

	w.logger.Debug("updated file", "op", op, "path", dest)
	return nil
}

// Exists reports whether the path (placeholders allowed) exists in the workspace.
func (w *Workspace) Exists(ref string) bool {
	dest, err := w.Resolve(ref)
	if err != nil {
		return false
	}
	_, err = w.fs.Stat(dest)
	return err == nil
}

// Read returns the content of a file in the workspace.
func (w *Workspace) Read(ref string) ([]byte, error) {
	dest, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return util.ReadFile(w.fs, dest)
}

// Mode returns the permission bits of a file in the workspace.
func (w *Workspace) Mode(ref string) (os.FileMode, error) {
	dest, err := w.Resolve(ref)
	if err != nil {
		return 0, err
	}
	info, err := w.fs.Stat(dest)
	if err != nil {
		return 0, err
	}
	return info.Mode().Perm(), nil
}

// Files returns every path rendered so far, in render order.
func (w *Workspace) Files() []string {
	return slices.Clone(w.files)
}

func (w *Workspace) write(dest string, content []byte, mode os.FileMode) error {
	if dir := path.Dir(dest); dir != "." {
		if err := w.fs.MkdirAll(dir, defaultDirMode); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}
	return util.WriteFile(w.fs, dest, content, mode)
}

func (w *Workspace) track(dest string) {
	if !slices.Contains(w.files, dest) {
		w.files = append(w.files, dest)
	}
}

// validateWorkspacePath ensures a destination does not escape the workspace root.
func validateWorkspacePath(rel string) error {
	if rel == "" {
		return fmt.Errorf("%w: empty path", ErrPathTraversal)
	}
	if path.IsAbs(rel) || strings.HasPrefix(rel, `\`) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, rel)
	}

	cleaned := path.Clean(rel)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, rel)
	}
	return nil
}
