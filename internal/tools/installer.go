package tools

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Result is the outcome of an installation: Success or Failure.
type Result interface {
	isResult()
}

// Success carries the specification of the installed gem.
type Success struct {
	Spec Specification
}

// Failure carries a message suitable for the user.
type Failure struct {
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}

// Installer builds and installs a gem locally.
type Installer interface {
	Install(ctx context.Context, spec Specification) Result
}

// Compile-time interface compliance check.
var _ Installer = (*GemInstaller)(nil)

// GemInstaller packages the gem with gem build and installs the package.
type GemInstaller struct {
	root   string
	runner Runner
	logger *slog.Logger
}

// NewGemInstaller creates a GemInstaller for the gem at root.
func NewGemInstaller(root string, runner Runner, logger *slog.Logger) *GemInstaller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GemInstaller{root: root, runner: runner, logger: logger.With("module", "installer")}
}

// Install runs gem build followed by gem install on the produced package.
func (i *GemInstaller) Install(ctx context.Context, spec Specification) Result {
	if _, err := i.runner.Run(ctx, i.root, "gem", "build", spec.File); err != nil {
		i.logger.Debug("gem build failed", "error", err)
		return Failure{Message: fmt.Sprintf("Unable to build: %s.", spec.PackageName())}
	}

	if _, err := i.runner.Run(ctx, i.root, "gem", "install", spec.PackageName()); err != nil {
		i.logger.Debug("gem install failed", "error", err)
		return Failure{Message: fmt.Sprintf("Unable to install: %s.", spec.PackageName())}
	}

	return Success{Spec: spec}
}

// InstallAction reports the outcome of an Installer to the user.
type InstallAction struct {
	installer Installer
	reporter  Reporter
}

// NewInstallAction creates an InstallAction.
func NewInstallAction(installer Installer, reporter Reporter) *InstallAction {
	return &InstallAction{installer: installer, reporter: reporter}
}

// Call installs spec and prints one line describing the outcome.
func (a *InstallAction) Call(ctx context.Context, spec Specification) Result {
	result := a.installer.Install(ctx, spec)

	switch r := result.(type) {
	case Success:
		a.reporter.Info(fmt.Sprintf("Installed: %s.", r.Spec.PackageName()))
	case Failure:
		a.reporter.Error(r.Message)
	default:
		a.reporter.Error("Unable to handle install action.")
	}
	return result
}
