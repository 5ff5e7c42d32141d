package generator

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Table of contents markers. Content between them is regenerated on every run.
const (
	TOCStart  = "<!-- Tocer[start]: Auto-generated, don't remove. -->"
	TOCFinish = "<!-- Tocer[finish]: Auto-generated, don't remove. -->"
	TOCLabel  = "## Table of Contents"
)

type heading struct {
	level int
	title string
}

// InsertTableOfContents returns src with a table of contents placed before
// its first second level heading. An existing table is replaced. Documents
// without second level headings are returned unchanged.
func InsertTableOfContents(src []byte) ([]byte, error) {
	body := removeTableOfContents(src)

	headings, at := collectHeadings(body)
	if at < 0 {
		return src, nil
	}

	var out bytes.Buffer
	out.Grow(len(body))
	out.Write(body[:at])
	out.WriteString(renderTableOfContents(headings))
	out.Write(body[at:])
	return out.Bytes(), nil
}

func removeTableOfContents(src []byte) []byte {
	start := bytes.Index(src, []byte(TOCStart))
	if start < 0 {
		return src
	}
	finish := bytes.Index(src[start:], []byte(TOCFinish))
	if finish < 0 {
		return src
	}
	end := start + finish + len(TOCFinish)

	// Drop the blank lines that followed the block.
	for end < len(src) && src[end] == '\n' {
		end++
	}

	out := make([]byte, 0, len(src)-(end-start))
	out = append(out, src[:start]...)
	return append(out, src[end:]...)
}

// collectHeadings returns the headings of level two and deeper along with
// the offset of the line holding the first second level heading, or -1.
func collectHeadings(src []byte) ([]heading, int) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var headings []heading
	at := -1
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level < 2 {
			return ast.WalkSkipChildren, nil
		}
		if at < 0 && h.Level == 2 && h.Lines().Len() > 0 {
			at = lineStart(src, h.Lines().At(0).Start)
		}
		headings = append(headings, heading{level: h.Level, title: headingText(h, src)})
		return ast.WalkSkipChildren, nil
	})

	return headings, at
}

// lineStart returns the offset of the first byte on the line containing pos.
func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

func headingText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func renderTableOfContents(headings []heading) string {
	var b strings.Builder
	b.WriteString(TOCStart + "\n\n" + TOCLabel + "\n\n")

	seen := map[string]int{}
	for _, h := range headings {
		anchor := headingAnchor(h.title)
		if n := seen[anchor]; n > 0 {
			seen[anchor]++
			anchor = fmt.Sprintf("%s-%d", anchor, n)
		} else {
			seen[anchor] = 1
		}

		b.WriteString(strings.Repeat("  ", h.level-1))
		fmt.Fprintf(&b, "- [%s](#%s)\n", h.title, anchor)
	}

	b.WriteString("\n" + TOCFinish + "\n\n")
	return b.String()
}

// headingAnchor converts a heading title into a GitHub style fragment.
func headingAnchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
