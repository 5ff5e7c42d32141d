// Package defs holds file names and modes shared across gemsmith packages.
package defs

import "os"

// Common file names used across the project.
const (
	// ReadmeMD is the gem README rendered by read --print and indexed by
	// the table of contents step.
	ReadmeMD = "README.md"

	// GemspecSuffix identifies gem specification files.
	GemspecSuffix = ".gemspec"

	// PackageDir receives built gem packages.
	PackageDir = "pkg"
)

// User configuration file names under the gemsmith configuration directory.
const (
	ConfigDirName  = "gemsmith"
	ConfigFileYAML = "configuration.yml"
	ConfigFileTOML = "configuration.toml"
)

// File modes for generated output.
const (
	DirMode        os.FileMode = 0o755
	FileMode       os.FileMode = 0o644
	ExecutableMode os.FileMode = 0o755
)
