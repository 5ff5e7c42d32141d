package generator

import (
	"context"
	"io"
	"log/slog"

	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/template"
)

// Progress observes a run, one Advance per generator.
type Progress interface {
	Start(total int)
	Advance(report Report)
	Done()
}

// Result aggregates the reports of a completed run.
type Result struct {
	Reports []Report
}

// Files returns every rendered path across all generators, in order.
func (r *Result) Files() []string {
	var files []string
	for _, report := range r.Reports {
		files = append(files, report.Files...)
	}
	return files
}

// Runner executes a Registry against a Workspace.
type Runner struct {
	workspace *template.Workspace
	progress  Progress
	logger    *slog.Logger
}

// NewRunner creates a Runner. A nil progress or logger is discarded.
func NewRunner(ws *template.Workspace, progress Progress, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if progress == nil {
		progress = discardProgress{}
	}
	return &Runner{
		workspace: ws,
		progress:  progress,
		logger:    logger.With("module", "generator"),
	}
}

// Run executes every generator in registry order with the same settings.
// The first failure stops the run; files already written stay on disk and
// the returned Result holds the reports completed before the failure.
func (r *Runner) Run(ctx context.Context, registry Registry, s config.Settings) (*Result, error) {
	result := &Result{Reports: make([]Report, 0, len(registry))}

	r.progress.Start(len(registry))
	defer r.progress.Done()

	for _, g := range registry {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report, err := Run(ctx, g, s, r.workspace)
		if err != nil {
			r.logger.Error("generator failed", "generator", g.Name(), "error", err)
			return result, err
		}

		r.logger.Debug("generator finished",
			"generator", report.Generator,
			"skipped", report.Skipped,
			"files", len(report.Files),
		)
		result.Reports = append(result.Reports, report)
		r.progress.Advance(report)
	}

	return result, nil
}

type discardProgress struct{}

func (discardProgress) Start(int)      {}
func (discardProgress) Advance(Report) {}
func (discardProgress) Done()          {}
