package generator

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"

	"github.com/modu-ai/gemsmith/internal/config"
	"github.com/modu-ai/gemsmith/internal/template"
)

// NewWorkspace prepares a workspace over fsys that renders the embedded gem
// templates with the given settings.
func NewWorkspace(fsys billy.Filesystem, s config.Settings, logger *slog.Logger) (*template.Workspace, error) {
	templates, err := template.EmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	return template.NewWorkspace(fsys, template.WorkspaceOptions{
		Renderer:     template.NewRenderer(templates),
		Placeholders: template.Placeholders(s.Placeholders()),
		Data:         s,
		Logger:       logger,
	}), nil
}
