package generator

import (
	"strings"

	"github.com/modu-ai/gemsmith/internal/config"
)

const rakefile = "%project_name%/Rakefile"

// Rake renders the Rakefile and wires the aggregate tasks for the enabled
// quality and test features.
type Rake struct{ always }

func (Rake) Name() string { return "rake" }

func (Rake) Steps(s config.Settings) []Step {
	steps := renderAll(rakefile + ".tmpl")

	if task := CodeQualityTask(s.Build); task != "" {
		steps = append(steps, Append{Path: rakefile, Text: task})
	}
	if task := DefaultTask(s.Build); task != "" {
		steps = append(steps, Append{Path: rakefile, Text: task})
	}
	return steps
}

// codeQualityTasks lists the quality task names for the enabled features.
func codeQualityTasks(b config.Build) []string {
	var tasks []string
	if b.BundlerAudit {
		tasks = append(tasks, "bundle:audit")
	}
	if b.GitLint {
		tasks = append(tasks, "git_lint")
	}
	if b.Reek {
		tasks = append(tasks, "reek")
	}
	if b.Rubocop {
		tasks = append(tasks, "rubocop")
	}
	return tasks
}

func defaultTasks(b config.Build) []string {
	var tasks []string
	if len(codeQualityTasks(b)) > 0 {
		tasks = append(tasks, "code_quality")
	}
	if b.Rspec {
		tasks = append(tasks, "spec")
	}
	return tasks
}

// CodeQualityTask returns the code_quality task declaration, or "" when no
// quality feature is enabled.
func CodeQualityTask(b config.Build) string {
	tasks := codeQualityTasks(b)
	if len(tasks) == 0 {
		return ""
	}
	return "\ndesc \"Run code quality checks\"\ntask code_quality: %i[" + strings.Join(tasks, " ") + "]\n"
}

// DefaultTask returns the default task declaration, or "" when it would be empty.
func DefaultTask(b config.Build) string {
	tasks := defaultTasks(b)
	if len(tasks) == 0 {
		return ""
	}
	return "\ntask default: %i[" + strings.Join(tasks, " ") + "]\n"
}
