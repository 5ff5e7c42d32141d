package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// isolateGit points git at a private global config with a fixed identity.
func isolateGit(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	home := t.TempDir()
	global := filepath.Join(home, ".gitconfig")
	config := "[user]\n\tname = Test User\n\temail = test@example.com\n[github]\n\tuser = tester\n[init]\n\tdefaultBranch = main\n"
	if err := os.WriteFile(global, []byte(config), 0o644); err != nil {
		t.Fatalf("write gitconfig: %v", err)
	}

	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_GLOBAL", global)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	return home
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCommitMessage(t *testing.T) {
	subject, body := CommitMessage("Gemsmith 1.2.3")

	if subject != "Added gem skeleton" {
		t.Errorf("subject = %q", subject)
	}
	want := "Generated with [Gemsmith](https://github.com/modu-ai/gemsmith)\nGemsmith 1.2.3."
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestManagerSkeletonCommit(t *testing.T) {
	isolateGit(t)
	ctx := context.Background()
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "lib", "tester.rb"), "module Tester\nend\n")

	m := NewManager(nil)
	if err := m.Init(ctx, dir); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	clean, err := m.IsClean(ctx, dir)
	if err != nil {
		t.Fatalf("IsClean error: %v", err)
	}
	if clean {
		t.Error("IsClean = true with untracked files")
	}

	if err := m.AddAll(ctx, dir); err != nil {
		t.Fatalf("AddAll error: %v", err)
	}
	subject, body := CommitMessage("Gemsmith 0.0.0")
	if err := m.Commit(ctx, dir, subject, body); err != nil {
		t.Fatalf("Commit error: %v", err)
	}

	clean, err = m.IsClean(ctx, dir)
	if err != nil {
		t.Fatalf("IsClean error: %v", err)
	}
	if !clean {
		t.Error("IsClean = false after commit")
	}

	log, err := execGit(ctx, dir, "log", "--format=%B", "-1")
	if err != nil {
		t.Fatalf("git log: %v", err)
	}
	if !strings.HasPrefix(log, "Added gem skeleton\n\nGenerated with [Gemsmith]") {
		t.Errorf("commit message = %q", log)
	}
}

func TestManagerInitIsRepeatable(t *testing.T) {
	isolateGit(t)
	ctx := context.Background()
	dir := t.TempDir()

	m := NewManager(nil)
	for range 2 {
		if err := m.Init(ctx, dir); err != nil {
			t.Fatalf("Init error: %v", err)
		}
	}
}

func TestManagerCommitEmptySubject(t *testing.T) {
	m := NewManager(nil)
	if err := m.Commit(context.Background(), t.TempDir(), "  ", "body"); !errors.Is(err, ErrEmptyCommitMessage) {
		t.Errorf("Commit error = %v, want ErrEmptyCommitMessage", err)
	}
}

func TestManagerIsCleanOutsideRepository(t *testing.T) {
	isolateGit(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())

	_, err := NewManager(nil).IsClean(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("IsClean error = %v, want ErrNotRepository", err)
	}
}

func TestManagerConfigValue(t *testing.T) {
	isolateGit(t)
	ctx := context.Background()
	m := NewManager(nil)

	tests := []struct {
		key  string
		want string
	}{
		{"user.name", "Test User"},
		{"user.email", "test@example.com"},
		{"github.user", "tester"},
		{"missing.key", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := m.ConfigValue(ctx, tt.key)
			if err != nil {
				t.Fatalf("ConfigValue(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("ConfigValue(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
