package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/core/git"
	"github.com/modu-ai/gemsmith/internal/generator"
	"github.com/modu-ai/gemsmith/internal/ui"
	"github.com/modu-ai/gemsmith/pkg/version"
)

const negatedPrefix = "no-"

func newGenerateCommand(d *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate <name>",
		Aliases: []string{"g"},
		Short:   "Generate new gem.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, d, args[0])
		},
	}

	for _, f := range config.AllFeatures() {
		name := string(f)
		cmd.Flags().Bool(name, false, f.Description())
		cmd.Flags().Bool(negatedPrefix+name, false, fmt.Sprintf("Skip %s support.", name))
		cmd.MarkFlagsMutuallyExclusive(name, negatedPrefix+name)
	}
	cmd.Flags().Bool("dry-run", false, "List the files that would be generated without writing them")
	cmd.Flags().Bool("interactive", false, "Select features interactively")
	cmd.Flags().String("root", "", "Directory to create the gem in (default: current directory)")

	return cmd
}

// featureOverrides collects only the feature flags the user passed.
func featureOverrides(cmd *cobra.Command) (config.Overrides, error) {
	o := config.Overrides{Features: map[config.Feature]bool{}}
	for _, f := range config.AllFeatures() {
		name := string(f)
		switch {
		case cmd.Flags().Changed(name):
			on, err := cmd.Flags().GetBool(name)
			if err != nil {
				return o, err
			}
			o.Features[f] = on
		case cmd.Flags().Changed(negatedPrefix + name):
			off, err := cmd.Flags().GetBool(negatedPrefix + name)
			if err != nil {
				return o, err
			}
			o.Features[f] = !off
		}
	}
	return o, nil
}

func runGenerate(cmd *cobra.Command, d *Dependencies, name string) error {
	ctx := cmd.Context()
	p := d.printer(cmd)

	overrides, err := featureOverrides(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	interactive, _ := cmd.Flags().GetBool("interactive")
	root, _ := cmd.Flags().GetString("root")
	if root == "" {
		if root, err = d.Getwd(); err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	settings, err := d.settings(ctx, name, overrides)
	if err != nil {
		return fail(p, err.Error(), err)
	}

	if interactive {
		b, err := d.Selector.Run(settings.Build)
		if err != nil {
			return fail(p, err.Error(), err)
		}
		settings = settings.WithBuild(b)
		if err := config.Validate(settings); err != nil {
			return fail(p, err.Error(), err)
		}
	}

	var fsys billy.Filesystem = osfs.New(root, osfs.WithBoundOS())
	if dryRun {
		fsys = memfs.New()
	}

	p.Info("Generating gem...")

	ws, err := generator.NewWorkspace(fsys, settings, d.Logger)
	if err != nil {
		return fail(p, fmt.Sprintf("Gem generation failed: %v", err), err)
	}
	progress := newGeneratorProgress(d.progress(cmd), settings.Project.Name)
	result, err := generator.NewRunner(ws, progress, d.Logger).Run(ctx, generator.DefaultRegistry(), settings)
	if err != nil {
		return fail(p, fmt.Sprintf("Gem generation failed: %v", err), err)
	}

	if dryRun {
		for _, f := range result.Files() {
			p.Plain(f)
		}
	} else {
		commitSkeleton(ctx, d, p, filepath.Join(root, settings.Project.Name))
	}

	p.Info("Gem generation finished.")
	return nil
}

// commitSkeleton records the generated tree as the first commit. Failures
// leave the files in place and are reported as a warning.
func commitSkeleton(ctx context.Context, d *Dependencies, p *ui.Printer, dir string) {
	subject, body := git.CommitMessage(version.GetLabel())

	err := d.Git.Init(ctx, dir)
	if err == nil {
		err = d.Git.AddAll(ctx, dir)
	}
	if err == nil {
		err = d.Git.Commit(ctx, dir, subject, body)
	}
	if err != nil {
		d.Logger.Debug("skeleton commit failed", "dir", dir, "error", err)
		p.Warn(fmt.Sprintf("Unable to commit gem skeleton: %v", err))
	}
}

// generatorProgress reports generator completion on a ui progress bar.
type generatorProgress struct {
	progress ui.Progress
	title    string
	bar      ui.ProgressBar
}

func newGeneratorProgress(p ui.Progress, project string) *generatorProgress {
	return &generatorProgress{progress: p, title: "Generating " + project}
}

func (g *generatorProgress) Start(total int) {
	g.bar = g.progress.Start(g.title, total)
}

func (g *generatorProgress) Advance(r generator.Report) {
	if g.bar == nil {
		return
	}
	g.bar.SetTitle(r.Generator)
	g.bar.Increment(1)
}

func (g *generatorProgress) Done() {
	if g.bar != nil {
		g.bar.Done()
	}
}
