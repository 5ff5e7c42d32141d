package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embeddedRaw embed.FS

// EmbeddedTemplates returns the gem skeleton templates rooted at the
// templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedRaw, "templates")
}
