package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namespace separators used by Ruby gems: a dash in a gem name marks a
// nested namespace (gem "demo-test" requires "demo/test" and defines Demo::Test).
const (
	gemNamespaceSeparator   = "-"
	pathNamespaceSeparator  = "/"
	classNamespaceSeparator = "::"
)

// ProjectIdentity holds every derived form of a project name. The forms are
// computed once per run and reused verbatim by every template and path.
type ProjectIdentity struct {
	Label string `yaml:"label"` // "Demo Test"
	Name  string `yaml:"name"`  // "demo-test"
	Path  string `yaml:"path"`  // "demo/test"
	Class string `yaml:"class"` // "Demo::Test"
}

// NewProjectIdentity derives all identity forms from a raw project name.
func NewProjectIdentity(name string) ProjectIdentity {
	segments := namespaceSegments(name)

	names := make([]string, 0, len(segments))
	classes := make([]string, 0, len(segments))
	var labelWords []string

	for _, segment := range segments {
		words := SplitWords(segment)
		names = append(names, Snakecase(segment))
		classes = append(classes, Camelcase(segment))
		labelWords = append(labelWords, words...)
	}

	return ProjectIdentity{
		Label: Titleize(strings.Join(labelWords, " ")),
		Name:  strings.Join(names, gemNamespaceSeparator),
		Path:  strings.Join(names, pathNamespaceSeparator),
		Class: strings.Join(classes, classNamespaceSeparator),
	}
}

// namespaceSegments splits a gem name on its namespace separator and drops empty parts.
func namespaceSegments(name string) []string {
	var segments []string
	for part := range strings.SplitSeq(strings.TrimSpace(name), gemNamespaceSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// SplitWords breaks a string into lowercase words on underscores, spaces and
// camel-case boundaries ("DemoTest_app" -> ["demo", "test", "app"]).
func SplitWords(s string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == ' ' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// Split "DemoTest" before T, and "HTTPServer" before S.
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return words
}

// Titleize converts a string into space separated title case ("demo_test" -> "Demo Test").
func Titleize(s string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.Join(SplitWords(s), " "))
}

// Snakecase converts a string into snake case ("DemoTest" -> "demo_test").
func Snakecase(s string) string {
	return strings.Join(SplitWords(s), "_")
}

// Camelcase converts a string into upper camel case ("demo_test" -> "DemoTest").
func Camelcase(s string) string {
	caser := cases.Title(language.English)

	var b strings.Builder
	for _, word := range SplitWords(s) {
		b.WriteString(caser.String(word))
	}
	return b.String()
}
