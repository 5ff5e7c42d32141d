package config

import (
	"os"
	"path/filepath"

	"github.com/modu-ai/gemsmith/internal/defs"
)

// Configuration file locations relative to the user configuration directory.
const (
	ConfigDirName  = defs.ConfigDirName
	ConfigFileYAML = defs.ConfigFileYAML
	ConfigFileTOML = defs.ConfigFileTOML
)

// ConfigDir returns the Gemsmith configuration directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", ConfigDirName), nil
}

// UserConfigPath returns the user configuration file path and whether it
// exists. YAML takes precedence over TOML; when neither exists the YAML path
// is returned so it can be created by an editor.
func UserConfigPath() (string, bool, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", false, err
	}

	for _, name := range []string{ConfigFileYAML, ConfigFileTOML} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true, nil
		}
	}

	return filepath.Join(dir, ConfigFileYAML), false, nil
}
