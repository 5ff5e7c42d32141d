package cli

import (
	"context"
	"errors"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/modu-ai/gemsmith/internal/tools"
	"github.com/modu-ai/gemsmith/internal/ui"
)

// workdir is the gem the packaging commands operate on.
type workdir struct {
	dir     string
	builder *tools.Builder
}

func (d *Dependencies) workdir(cmd *cobra.Command) (*workdir, error) {
	dir, err := d.Getwd()
	if err != nil {
		return nil, err
	}
	builder := tools.NewBuilder(tools.BuilderOptions{
		Root:     dir,
		FS:       osfs.New(dir, osfs.WithBoundOS()),
		Runner:   d.Runner,
		VCS:      d.Git,
		Reporter: d.printer(cmd),
		Exit:     d.Exit,
		Logger:   d.Logger,
	})
	return &workdir{dir: dir, builder: builder}, nil
}

// specification finds the gemspec of the working directory.
func (w *workdir) specification(p *ui.Printer) (tools.Specification, error) {
	spec, err := tools.FindSpecification(osfs.New(w.dir, osfs.WithBoundOS()))
	if err != nil {
		return tools.Specification{}, fail(p, "Unable to find gem specification.", err)
	}
	return spec, nil
}

func newCleanCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove built gem packages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := d.workdir(cmd)
			if err != nil {
				return err
			}
			if err := w.builder.Clean(); err != nil {
				return fail(d.printer(cmd), "Unable to clean gem artifacts.", err)
			}
			return nil
		},
	}
}

func newValidateCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the gem has no uncommitted changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := d.workdir(cmd)
			if err != nil {
				return err
			}
			return validate(cmd.Context(), d.printer(cmd), w)
		},
	}
}

func validate(ctx context.Context, p *ui.Printer, w *workdir) error {
	err := w.builder.Validate(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tools.ErrUncommittedChanges):
		// The builder already printed the reason.
		return &ExitError{Code: 1, Err: err}
	default:
		return fail(p, "Unable to validate gem: "+err.Error(), err)
	}
}

func newBuildCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Clean, validate and package the gem.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := d.printer(cmd)

			w, err := d.workdir(cmd)
			if err != nil {
				return err
			}
			spec, err := w.specification(p)
			if err != nil {
				return err
			}

			if err := w.builder.Clean(); err != nil {
				return fail(p, "Unable to clean gem artifacts.", err)
			}
			if err := validate(ctx, p, w); err != nil {
				return err
			}
			if err := w.builder.Build(ctx, spec); err != nil {
				return &ExitError{Code: 1, Err: err}
			}
			return nil
		},
	}
}

func newInstallCommand(d *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Build and install the gem locally.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := d.printer(cmd)

			w, err := d.workdir(cmd)
			if err != nil {
				return err
			}
			spec, err := w.specification(p)
			if err != nil {
				return err
			}

			installer := &spinningInstaller{
				next:     tools.NewGemInstaller(w.dir, d.Runner, d.Logger),
				progress: d.progress(cmd),
			}
			result := tools.NewInstallAction(installer, p).Call(cmd.Context(), spec)
			if _, ok := result.(tools.Success); !ok {
				return &ExitError{Code: 1, Err: errors.New("install failed")}
			}
			return nil
		},
	}
}

// spinningInstaller shows a spinner while the wrapped installer runs.
type spinningInstaller struct {
	next     tools.Installer
	progress ui.Progress
}

func (s *spinningInstaller) Install(ctx context.Context, spec tools.Specification) tools.Result {
	spinner := s.progress.Spinner("Installing " + spec.PackageName())
	defer spinner.Stop()
	return s.next.Install(ctx, spec)
}
