// Package cli provides the Cobra command tree of gemsmith. The Dependencies
// struct is the composition root: the only place where concrete
// collaborators are chosen and wired together.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gemsmith/internal/cli/wizard"
	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/core/git"
	"github.com/modu-ai/gemsmith/internal/tools"
	"github.com/modu-ai/gemsmith/internal/ui"
)

// FeatureSelector lets the user adjust the features of a new gem.
type FeatureSelector interface {
	Run(current config.Build) (config.Build, error)
}

// Dependencies holds the collaborators commands use. Nil fields are filled
// with the real implementations when a command starts, so tests only set
// the fields they replace.
type Dependencies struct {
	Git        git.VersionControl
	Runner     tools.Runner
	Launcher   Launcher
	Selector   FeatureSelector
	Headless   *ui.HeadlessManager
	ConfigPath func() (string, bool, error)
	Now        func() time.Time
	Getwd      func() (string, error)
	Exit       func(int)
	Logger     *slog.Logger

	verbose bool
}

// NewDependencies returns Dependencies whose collaborators are resolved lazily.
func NewDependencies() *Dependencies {
	return &Dependencies{}
}

// ensure fills every unset collaborator. It runs after flags are parsed so
// the logger reflects --verbose.
func (d *Dependencies) ensure() {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Headless == nil {
		d.Headless = ui.NewHeadlessManager()
	}
	if d.Git == nil {
		d.Git = git.NewManager(d.Logger)
	}
	if d.Runner == nil {
		d.Runner = tools.NewExecRunner(d.Logger)
	}
	if d.Launcher == nil {
		d.Launcher = NewSystemLauncher(os.Getenv, d.Logger)
	}
	if d.Selector == nil {
		d.Selector = wizard.New(d.theme())
	}
	if d.ConfigPath == nil {
		d.ConfigPath = config.UserConfigPath
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Getwd == nil {
		d.Getwd = os.Getwd
	}
	if d.Exit == nil {
		d.Exit = os.Exit
	}
}

func (d *Dependencies) setVerbose(w io.Writer) {
	d.verbose = true
	d.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (d *Dependencies) theme() *ui.Theme {
	return ui.NewTheme(ui.ThemeConfig{NoColor: d.Headless.ColorDisabled()})
}

func (d *Dependencies) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), d.theme())
}

// progress returns indicators whose headless log lines only show with --verbose.
func (d *Dependencies) progress(cmd *cobra.Command) ui.Progress {
	w := io.Discard
	if d.verbose {
		w = cmd.ErrOrStderr()
	}
	return ui.NewProgress(d.theme(), d.Headless, w)
}

// settings resolves defaults, the user configuration file and flags.
func (d *Dependencies) settings(ctx context.Context, name string, flags config.Overrides) (config.Settings, error) {
	user, err := d.userConfig()
	if err != nil {
		return config.Settings{}, err
	}
	defaults := config.DiscoverDefaults(ctx, d.Now(), d.Git, d.Logger)
	return config.Resolve(defaults, user, flags, name)
}

func (d *Dependencies) userConfig() (*config.UserConfig, error) {
	path, exists, err := d.ConfigPath()
	if err != nil || !exists {
		// A missing home directory only means there is no user configuration.
		d.Logger.Debug("no user configuration", "path", path, "error", err)
		return &config.UserConfig{}, nil
	}
	return config.NewLoader(d.Logger).Load(path)
}

// fail reports err as one status line and asks for exit status 1.
func fail(p *ui.Printer, msg string, err error) error {
	p.Error(msg)
	return &ExitError{Code: 1, Err: err}
}
