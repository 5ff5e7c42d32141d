package template

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

func newTestWorkspace(t *testing.T, files fstest.MapFS) *Workspace {
	t.Helper()
	return NewWorkspace(memfs.New(), WorkspaceOptions{
		Renderer: NewRenderer(files),
		Placeholders: Placeholders{
			"project_name":  "tester",
			"project_path":  "tester",
			"project_class": "Tester",
		},
		Data: map[string]bool{"CLI": true},
	})
}

var libraryTemplate = fstest.MapFS{
	"%project_name%/lib/%project_path%.rb.tmpl": &fstest.MapFile{
		Data: []byte("require \"zeitwerk\"\n\nloader = Zeitwerk::Loader.for_gem\nloader.tag = File.basename __FILE__, \".rb\"\nloader.setup\n\nmodule %project_class%\nend\n"),
	},
	"%project_name%/Rakefile.tmpl": &fstest.MapFile{
		Data: []byte("require \"bundler/setup\"\n"),
	},
	"%project_name%/bin/setup.tmpl": &fstest.MapFile{
		Data: []byte("#! /usr/bin/env bash\n{{if .CLI}}# cli{{end}}\n"),
	},
}

func TestWorkspaceRender(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)

	dest, err := w.Render("%project_name%/lib/%project_path%.rb.tmpl")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if dest != "tester/lib/tester.rb" {
		t.Errorf("dest = %q, want %q", dest, "tester/lib/tester.rb")
	}

	content, err := w.Read(dest)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !regexp.MustCompile(`(?m)^module Tester$`).Match(content) {
		t.Errorf("content does not reference expanded class name:\n%s", content)
	}

	mode, err := w.Mode(dest)
	if err != nil {
		t.Fatalf("Mode error: %v", err)
	}
	if mode != 0o644 {
		t.Errorf("mode = %#o, want 0644", mode)
	}

	if files := w.Files(); len(files) != 1 || files[0] != dest {
		t.Errorf("Files() = %v, want [%s]", files, dest)
	}
}

func TestWorkspaceRenderMissingTemplate(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)

	_, err := w.Render("%project_name%/missing.rb.tmpl")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %T", err)
	}
	if re.Op != "render" || re.Path != "tester/missing.rb" {
		t.Errorf("RenderError = %+v", re)
	}
	if len(w.Files()) != 0 {
		t.Errorf("failed render was tracked: %v", w.Files())
	}
}

func TestWorkspacePermit(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)

	if _, err := w.Render("%project_name%/bin/setup.tmpl"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if err := w.Permit("%project_name%/bin/setup", 0o755); err != nil {
		t.Fatalf("Permit error: %v", err)
	}

	mode, err := w.Mode("tester/bin/setup")
	if err != nil {
		t.Fatalf("Mode error: %v", err)
	}
	if mode != 0o755 {
		t.Errorf("mode = %#o, want 0755", mode)
	}

	if err := w.Permit("tester/bin/missing", 0o755); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Permit(missing) error = %v, want ErrFileNotFound", err)
	}
}

func TestWorkspaceInsertBefore(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)
	if _, err := w.Render("%project_name%/lib/%project_path%.rb.tmpl"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	const line = "loader.inflector.inflect \"cli\" => \"CLI\"\n"
	pattern := regexp.MustCompile(`tag`)

	for range 2 {
		if err := w.InsertBefore("%project_name%/lib/%project_path%.rb", pattern, line); err != nil {
			t.Fatalf("InsertBefore error: %v", err)
		}
	}

	content, _ := w.Read("tester/lib/tester.rb")
	want := "require \"zeitwerk\"\n\nloader = Zeitwerk::Loader.for_gem\n" + line +
		"loader.tag = File.basename __FILE__, \".rb\"\nloader.setup\n\nmodule Tester\nend\n"
	if string(content) != want {
		t.Errorf("content = %q, want %q", content, want)
	}

	err := w.InsertBefore("tester/lib/tester.rb", regexp.MustCompile(`nomatch`), "x\n")
	if !errors.Is(err, ErrPatternNotFound) {
		t.Errorf("expected ErrPatternNotFound, got %v", err)
	}
}

func TestWorkspaceAppend(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)
	if _, err := w.Render("%project_name%/Rakefile.tmpl"); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	const task = "\ntask default: %i[spec]\n"
	for range 2 {
		if err := w.Append("%project_name%/Rakefile", task); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	if err := w.Append("%project_name%/Rakefile", ""); err != nil {
		t.Fatalf("Append(empty) error: %v", err)
	}

	content, _ := w.Read("tester/Rakefile")
	want := "require \"bundler/setup\"\n" + task
	if string(content) != want {
		t.Errorf("content = %q, want %q", content, want)
	}

	if err := w.Append("tester/Missing", task); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Append(missing) error = %v, want ErrFileNotFound", err)
	}
}

func TestWorkspaceUpdatePreservesMode(t *testing.T) {
	w := newTestWorkspace(t, libraryTemplate)
	if _, err := w.Render("%project_name%/bin/setup.tmpl"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if err := w.Permit("tester/bin/setup", 0o755); err != nil {
		t.Fatalf("Permit error: %v", err)
	}
	if err := w.Append("tester/bin/setup", "echo done\n"); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	if mode, _ := w.Mode("tester/bin/setup"); mode != 0o755 {
		t.Errorf("mode after append = %#o, want 0755", mode)
	}
}

func TestWorkspaceOnDisk(t *testing.T) {
	root := t.TempDir()
	w := NewWorkspace(osfs.New(root, osfs.WithBoundOS()), WorkspaceOptions{
		Renderer:     NewRenderer(libraryTemplate),
		Placeholders: Placeholders{"project_name": "tester", "project_path": "tester", "project_class": "Tester"},
		Data:         map[string]bool{"CLI": false},
	})

	if _, err := w.Render("%project_name%/bin/setup.tmpl"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if err := w.Permit("tester/bin/setup", 0o755); err != nil {
		t.Fatalf("Permit error: %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "tester", "bin", "setup"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("mode = %v, want executable", info.Mode())
	}
}

func TestValidateWorkspacePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"tester/lib/tester.rb", false},
		{"tester/./lib", false},
		{"../escape", true},
		{"tester/../../escape", true},
		{"/etc/passwd", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateWorkspacePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWorkspacePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("expected ErrPathTraversal, got %v", err)
			}
		})
	}
}
