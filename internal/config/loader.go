package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// UserConfig is the optional overlay read from the user configuration file.
// Nil fields were not present in the file and leave defaults untouched.
type UserConfig struct {
	Year         *int                `yaml:"year" toml:"year"`
	GitHubUser   *string             `yaml:"github_user" toml:"github_user"`
	Gem          GemOverlay          `yaml:"gem" toml:"gem"`
	Author       AuthorOverlay       `yaml:"author" toml:"author"`
	Organization OrganizationOverlay `yaml:"organization" toml:"organization"`
	Versions     VersionsOverlay     `yaml:"versions" toml:"versions"`
	Build        BuildOverlay        `yaml:"build" toml:"build"`
	Publish      PublishOverlay      `yaml:"publish" toml:"publish"`
}

// GemOverlay overlays GemConfig.
type GemOverlay struct {
	Platform *string `yaml:"platform" toml:"platform"`
	URL      *string `yaml:"url" toml:"url"`
	License  *string `yaml:"license" toml:"license"`
}

// AuthorOverlay overlays Author.
type AuthorOverlay struct {
	Name  *string `yaml:"name" toml:"name"`
	Email *string `yaml:"email" toml:"email"`
	URL   *string `yaml:"url" toml:"url"`
}

// OrganizationOverlay overlays Organization.
type OrganizationOverlay struct {
	Name *string `yaml:"name" toml:"name"`
	URL  *string `yaml:"url" toml:"url"`
}

// VersionsOverlay overlays Versions.
type VersionsOverlay struct {
	Ruby  *string `yaml:"ruby" toml:"ruby"`
	Rails *string `yaml:"rails" toml:"rails"`
}

// BuildOverlay overlays Build.
type BuildOverlay struct {
	BundlerAudit *bool `yaml:"bundler_audit" toml:"bundler_audit"`
	CircleCI     *bool `yaml:"circle_ci" toml:"circle_ci"`
	CLI          *bool `yaml:"cli" toml:"cli"`
	Engine       *bool `yaml:"engine" toml:"engine"`
	GitHub       *bool `yaml:"git_hub" toml:"git_hub"`
	GitLint      *bool `yaml:"git_lint" toml:"git_lint"`
	Guard        *bool `yaml:"guard" toml:"guard"`
	Pry          *bool `yaml:"pry" toml:"pry"`
	Reek         *bool `yaml:"reek" toml:"reek"`
	Rspec        *bool `yaml:"rspec" toml:"rspec"`
	Rubocop      *bool `yaml:"rubocop" toml:"rubocop"`
	Security     *bool `yaml:"security" toml:"security"`
	SimpleCov    *bool `yaml:"simple_cov" toml:"simple_cov"`
}

// PublishOverlay overlays Publish.
type PublishOverlay struct {
	Sign *bool `yaml:"sign" toml:"sign"`
}

// Loader reads the user configuration file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger.With("module", "config")}
}

// LoadUserConfig reads the user configuration file at path with a silent Loader.
func LoadUserConfig(path string) (*UserConfig, error) {
	return NewLoader(nil).Load(path)
}

// Load reads the configuration file at path. A missing file (or an empty
// path) yields an empty overlay. Unknown keys are rejected.
func (l *Loader) Load(path string) (*UserConfig, error) {
	cfg := &UserConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug("user configuration not found, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = decodeYAML(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l.logger.Debug("user configuration loaded", "path", path)
	return cfg, nil
}

func decodeYAML(data []byte, target *UserConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty document
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && strings.Contains(err.Error(), "not found in type") {
			return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(typeErr.Errors, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func decodeTOML(data []byte, target *UserConfig) error {
	md, err := toml.Decode(string(data), target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return nil
}
