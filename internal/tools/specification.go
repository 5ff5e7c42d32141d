package tools

import (
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/modu-ai/gemsmith/internal/defs"
)

// Packaging paths, relative to the gem root.
const (
	PackageDir          = defs.PackageDir
	SpecificationSuffix = defs.GemspecSuffix
)

var (
	specNamePattern     = regexp.MustCompile(`(?m)^\s*spec\.name\s*=\s*"([^"]*)"`)
	specVersionPattern  = regexp.MustCompile(`(?m)^\s*spec\.version\s*=\s*"([^"]*)"`)
	specHomepagePattern = regexp.MustCompile(`(?m)^\s*spec\.homepage\s*=\s*"([^"]*)"`)

	// gemVersionPattern is the shape Gem::Version accepts.
	gemVersionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9A-Za-z]+)*(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)
	numericSegment    = regexp.MustCompile(`^[0-9]+$`)
)

// Specification is the subset of a gemspec the packaging commands need.
type Specification struct {
	File     string // path of the gemspec, relative to its directory
	Name     string
	Version  string // as written, e.g. "1.0" or "1.0.0.beta1"
	Homepage string
}

// PackageName returns the gem file name, e.g. "tester-0.1.0.gem".
func (s Specification) PackageName() string {
	return fmt.Sprintf("%s-%s.gem", s.Name, s.Version)
}

// PackagePath returns the package location relative to the gem root.
func (s Specification) PackagePath() string {
	return path.Join(PackageDir, s.PackageName())
}

// ParseSpecification extracts name, version and homepage from gemspec source.
func ParseSpecification(file string, content []byte) (Specification, error) {
	spec := Specification{File: file}

	m := specNamePattern.FindSubmatch(content)
	if m == nil || strings.TrimSpace(string(m[1])) == "" {
		return Specification{}, fmt.Errorf("%s: %w: missing name", file, ErrInvalidSpecification)
	}
	spec.Name = strings.TrimSpace(string(m[1]))

	m = specVersionPattern.FindSubmatch(content)
	if m == nil {
		return Specification{}, fmt.Errorf("%s: %w: missing version", file, ErrInvalidSpecification)
	}
	version := strings.TrimSpace(string(m[1]))
	if _, err := GemVersion(version); err != nil {
		return Specification{}, fmt.Errorf("%s: %w: %w", file, ErrInvalidSpecification, err)
	}
	spec.Version = version

	if m = specHomepagePattern.FindSubmatch(content); m != nil {
		spec.Homepage = strings.TrimSpace(string(m[1]))
	}

	return spec, nil
}

// GemVersion checks a RubyGems version and maps it onto semver. Up to three
// leading numeric segments form the release; the remaining segments become
// the prerelease ("1.0.0.beta1" -> "1.0.0-beta1", "2.0-rc.1" -> "2.0.0-rc.1").
func GemVersion(raw string) (*semver.Version, error) {
	if !gemVersionPattern.MatchString(raw) {
		return nil, fmt.Errorf("version %q: malformed", raw)
	}

	main, suffix, _ := strings.Cut(raw, "-")
	segments := strings.Split(main, ".")
	n := 0
	for n < len(segments) && n < 3 && numericSegment.MatchString(segments[n]) {
		n++
	}
	pre := segments[n:]
	if suffix != "" {
		pre = append(pre, strings.Split(suffix, ".")...)
	}

	normalized := strings.Join(segments[:n], ".")
	if len(pre) > 0 {
		normalized += "-" + strings.Join(pre, ".")
	}
	v, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", raw, err)
	}
	return v, nil
}

// FindSpecification loads the first gemspec, by name, at the root of fsys.
func FindSpecification(fsys billy.Filesystem) (Specification, error) {
	entries, err := fsys.ReadDir(".")
	if err != nil {
		return Specification{}, fmt.Errorf("read gem root: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), SpecificationSuffix) {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return Specification{}, ErrSpecificationNotFound
	}
	slices.Sort(files)

	content, err := util.ReadFile(fsys, files[0])
	if err != nil {
		return Specification{}, fmt.Errorf("read %s: %w", files[0], err)
	}
	return ParseSpecification(files[0], content)
}
