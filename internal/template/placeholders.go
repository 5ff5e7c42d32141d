package template

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches %token% markers in paths and content.
var placeholderPattern = regexp.MustCompile(`%([a-z][a-z0-9_]*)%`)

// TemplateSuffix marks files that are rendered through text/template.
const TemplateSuffix = ".tmpl"

// Placeholders maps token names (without the surrounding %) to their values.
type Placeholders map[string]string

// ExpandPath substitutes every %token% in a template reference and strips
// the template suffix. Unknown tokens are an error: a destination path must
// never contain a literal placeholder.
func (p Placeholders) ExpandPath(ref string) (string, error) {
	var missing []string

	expanded := placeholderPattern.ReplaceAllStringFunc(ref, func(match string) string {
		key := match[1 : len(match)-1]
		value, ok := p[key]
		if !ok || value == "" {
			missing = append(missing, match)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s in %q", ErrUnresolvedPlaceholder, strings.Join(missing, ", "), ref)
	}

	return strings.TrimSuffix(expanded, TemplateSuffix), nil
}

// ExpandContent substitutes known %token% markers in file content. Unknown
// markers are left untouched so literal percent sequences survive.
func (p Placeholders) ExpandContent(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		if value, ok := p[match[1:len(match)-1]]; ok {
			return value
		}
		return match
	})
}
