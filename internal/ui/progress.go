package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// barWidth is the width of the interactive progress bar in cells.
const barWidth = 40

// Progress creates progress indicators that degrade to plain log lines when
// the terminal is headless.
type Progress interface {
	// Start creates a determinate bar advancing towards total.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate indicator.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

type progressFactory struct {
	theme    *Theme
	headless *HeadlessManager
	logs     io.Writer
}

// NewProgress creates a Progress. Interactive indicators draw on stderr;
// headless ones write log lines to w, or nowhere when w is nil.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = io.Discard
	}
	return &progressFactory{theme: theme, headless: hm, logs: w}
}

func (p *progressFactory) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

func (p *progressFactory) Start(title string, total int) ProgressBar {
	if p.plain() {
		return &logBar{title: title, total: total, w: p.logs}
	}
	return &animatedBar{run: startProgram(newBarModel(p.theme, title, total))}
}

func (p *progressFactory) Spinner(title string) Spinner {
	if p.plain() {
		_, _ = fmt.Fprintln(p.logs, title)
		return &logSpinner{w: p.logs}
	}
	return &animatedSpinner{run: startProgram(newSpinnerModel(p.theme, title))}
}

// Messages understood by the indicator models.
type (
	incrementMsg int
	titleMsg     string
	finishMsg    struct{}
)

// program runs one bubbletea model in the background until finish.
type program struct {
	tea  *tea.Program
	once sync.Once
}

func startProgram(m tea.Model) *program {
	p := &program{tea: tea.NewProgram(m, tea.WithOutput(os.Stderr))}
	go func() {
		_, _ = p.tea.Run()
	}()
	return p
}

func (p *program) send(msg tea.Msg) {
	p.tea.Send(msg)
}

func (p *program) finish() {
	p.once.Do(func() {
		p.tea.Send(finishMsg{})
		p.tea.Wait()
	})
}

// quitOn reports whether msg ends an indicator: finish or Ctrl+C.
func quitOn(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case finishMsg:
		return true
	case tea.KeyMsg:
		return msg.Type == tea.KeyCtrlC
	}
	return false
}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if quitOn(msg) {
		m.done = true
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type barModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(barWidth),
	)
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if quitOn(msg) {
		m.done = true
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case incrementMsg:
		m.current = min(m.current+int(msg), m.total)
	case titleMsg:
		m.title = string(msg)
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	var ratio float64
	if m.total > 0 {
		ratio = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf("%s [%d/%d] %s\n", m.bar.ViewAs(ratio), m.current, m.total, m.title)
}

type animatedBar struct{ run *program }

func (b *animatedBar) Increment(n int)       { b.run.send(incrementMsg(n)) }
func (b *animatedBar) SetTitle(title string) { b.run.send(titleMsg(title)) }
func (b *animatedBar) Done()                 { b.run.finish() }

type animatedSpinner struct{ run *program }

func (s *animatedSpinner) SetTitle(title string) { s.run.send(titleMsg(title)) }
func (s *animatedSpinner) Stop()                 { s.run.finish() }

// logBar prints "[current/total] title" on every increment.
type logBar struct {
	title   string
	total   int
	current int
	done    bool
	w       io.Writer
}

func (b *logBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	b.log()
}

func (b *logBar) SetTitle(title string) {
	b.title = title
}

// Done logs a final line only when increments fell short of the total.
func (b *logBar) Done() {
	if b.done {
		return
	}
	b.done = true
	if b.current < b.total {
		b.current = b.total
		b.log()
	}
}

func (b *logBar) log() {
	_, _ = fmt.Fprintf(b.w, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// logSpinner prints each title once.
type logSpinner struct {
	w io.Writer
}

func (s *logSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintln(s.w, title)
}

func (s *logSpinner) Stop() {}
