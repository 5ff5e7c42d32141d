package version

import "fmt"

// Build-time variables injected via -ldflags.
var (
	Version = "v1.0.0"
	Commit  = "none"
	Date    = "unknown"
)

// Name is the human-readable tool name used in labels and commit messages.
const Name = "Gemsmith"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetLabel returns the tool name followed by its version (e.g. "Gemsmith v1.0.0").
func GetLabel() string {
	return Name + " " + Version
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetLabel(), Commit, Date)
}
