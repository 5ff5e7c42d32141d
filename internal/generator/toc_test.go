package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReadme = `# Tester

Intro paragraph.

## Features

## Setup

### From Source

## Setup
`

func TestInsertTableOfContents(t *testing.T) {
	got, err := InsertTableOfContents([]byte(sampleReadme))
	require.NoError(t, err)

	want := `# Tester

Intro paragraph.

` + TOCStart + `

## Table of Contents

  - [Features](#features)
  - [Setup](#setup)
    - [From Source](#from-source)
  - [Setup](#setup-1)

` + TOCFinish + `

## Features

## Setup

### From Source

## Setup
`
	assert.Equal(t, want, string(got))
}

func TestInsertTableOfContentsIdempotent(t *testing.T) {
	once, err := InsertTableOfContents([]byte(sampleReadme))
	require.NoError(t, err)

	twice, err := InsertTableOfContents(once)
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestInsertTableOfContentsWithoutSections(t *testing.T) {
	src := []byte("# Tester\n\nNothing else.\n")

	got, err := InsertTableOfContents(src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(got))
}

func TestInsertTableOfContentsSkipsCodeBlocks(t *testing.T) {
	src := "# Tester\n\n```markdown\n## Not a heading\n```\n\n## Usage\n"

	got, err := InsertTableOfContents([]byte(src))
	require.NoError(t, err)

	want := "# Tester\n\n```markdown\n## Not a heading\n```\n\n" +
		TOCStart + "\n\n" + TOCLabel + "\n\n  - [Usage](#usage)\n\n" + TOCFinish + "\n\n## Usage\n"
	assert.Equal(t, want, string(got))
}

func TestInsertTableOfContentsSetextHeading(t *testing.T) {
	src := "# Tester\n\nUsage\n-----\n\nRun it.\n"

	got, err := InsertTableOfContents([]byte(src))
	require.NoError(t, err)

	assert.Less(t, strings.Index(string(got), TOCFinish), strings.Index(string(got), "Usage\n-----"))
	assert.Contains(t, string(got), "  - [Usage](#usage)\n")
}

func TestInsertTableOfContentsOnlyDeeperHeadings(t *testing.T) {
	src := []byte("# Tester\n\n### Deep\n")

	got, err := InsertTableOfContents(src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(got))
}

func TestHeadingAnchor(t *testing.T) {
	tests := map[string]string{
		"Features":          "features",
		"From Source":       "from-source",
		"Code of Conduct":   "code-of-conduct",
		"Setup (Optional)":  "setup-optional",
		"snake_case_header": "snake_case_header",
	}
	for title, want := range tests {
		assert.Equal(t, want, headingAnchor(title), title)
	}
}
