package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/modu-ai/gemsmith/internal/defs"
)

// Reporter receives the single status line each packaging outcome produces.
type Reporter interface {
	Info(msg string)
	Error(msg string)
}

// CleanChecker reports whether a work tree has uncommitted changes.
type CleanChecker interface {
	IsClean(ctx context.Context, dir string) (bool, error)
}

// Builder packages the gem found at its root directory.
type Builder struct {
	root     string
	fs       billy.Filesystem
	runner   Runner
	vcs      CleanChecker
	reporter Reporter
	exit     func(int)
	logger   *slog.Logger
}

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	Root     string           // gem directory on disk, used as the command working directory
	FS       billy.Filesystem // view of Root
	Runner   Runner
	VCS      CleanChecker
	Reporter Reporter
	Exit     func(int) // called with 1 when Validate finds changes
	Logger   *slog.Logger
}

// NewBuilder creates a Builder. A nil Exit defaults to os.Exit.
func NewBuilder(opts BuilderOptions) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &Builder{
		root:     opts.Root,
		fs:       opts.FS,
		runner:   opts.Runner,
		vcs:      opts.VCS,
		reporter: opts.Reporter,
		exit:     exit,
		logger:   logger.With("module", "builder"),
	}
}

// Clean removes previously built packages.
func (b *Builder) Clean() error {
	if err := util.RemoveAll(b.fs, PackageDir); err != nil {
		return fmt.Errorf("clean %s: %w", PackageDir, err)
	}
	b.reporter.Info("Cleaned gem artifacts.")
	return nil
}

// Validate stops the process when the work tree has uncommitted changes.
func (b *Builder) Validate(ctx context.Context) error {
	clean, err := b.vcs.IsClean(ctx, b.root)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if clean {
		return nil
	}

	b.reporter.Error("Build failed: Gem has uncommitted changes.")
	b.exit(1)
	return ErrUncommittedChanges
}

// Build runs gem build and moves the package into PackageDir.
func (b *Builder) Build(ctx context.Context, spec Specification) error {
	pkg := spec.PackagePath()

	if err := b.build(ctx, spec); err != nil {
		b.logger.Debug("build failed", "package", pkg, "error", err)
		b.reporter.Error(fmt.Sprintf("Unable to build: %s.", pkg))
		return err
	}

	b.reporter.Info(fmt.Sprintf("Built: %s.", pkg))
	return nil
}

func (b *Builder) build(ctx context.Context, spec Specification) error {
	if _, err := b.runner.Run(ctx, b.root, "gem", "build", spec.File); err != nil {
		return fmt.Errorf("build %s: %w", spec.File, err)
	}

	if err := b.fs.MkdirAll(PackageDir, defs.DirMode); err != nil {
		return fmt.Errorf("mkdir %s: %w", PackageDir, err)
	}

	// gem build writes the package next to the gemspec.
	if err := b.fs.Rename(spec.PackageName(), spec.PackagePath()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("package %s was not produced: %w", spec.PackageName(), err)
		}
		return fmt.Errorf("move package: %w", err)
	}
	return nil
}
