package ui

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// testProgram runs m without a TTY and returns a channel closed on exit.
func testProgram(t *testing.T, m tea.Model) (*program, <-chan struct{}) {
	t.Helper()

	p := &program{tea: tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.tea.Run()
	}()
	// Let the program start before messages are sent.
	time.Sleep(10 * time.Millisecond)
	return p, done
}

func waitExit(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("program did not exit within 2s")
	}
}

func colorTheme() *Theme {
	return NewTheme(ThemeConfig{Mode: ModeDark})
}

func TestBarModelUpdate(t *testing.T) {
	var m tea.Model = newBarModel(colorTheme(), "gem", 3)

	m, _ = m.Update(incrementMsg(2))
	m, _ = m.Update(titleMsg("documentation"))
	m, _ = m.Update(incrementMsg(5))

	bar := m.(barModel)
	if bar.current != 3 {
		t.Errorf("current = %d, want clamped to 3", bar.current)
	}
	if !strings.Contains(bar.View(), "[3/3] documentation") {
		t.Errorf("view = %q", bar.View())
	}

	m, cmd := m.Update(finishMsg{})
	if !m.(barModel).done || cmd == nil {
		t.Error("finish should stop the bar")
	}
	if m.View() != "" {
		t.Errorf("finished view = %q", m.View())
	}
}

func TestBarModelFrame(t *testing.T) {
	m, _ := newBarModel(colorTheme(), "gem", 10).Update(progress.FrameMsg{})
	if m.(barModel).done {
		t.Error("frame should not finish the bar")
	}
}

func TestBarModelZeroTotal(t *testing.T) {
	if v := newBarModel(colorTheme(), "empty", 0).View(); !strings.Contains(v, "[0/0] empty") {
		t.Errorf("view = %q", v)
	}
}

func TestSpinnerModelUpdate(t *testing.T) {
	m := newSpinnerModel(colorTheme(), "Installing")

	updated, _ := m.Update(titleMsg("Still installing"))
	if got := updated.(spinnerModel).title; got != "Still installing" {
		t.Errorf("title = %q", got)
	}

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(spinnerModel).done || cmd == nil {
		t.Error("ctrl+c should stop the spinner")
	}
}

func TestSpinnerModelTick(t *testing.T) {
	m := newSpinnerModel(colorTheme(), "Ticking")
	msg := m.Init()()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skipf("unexpected tick message %T", msg)
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}

func TestAnimatedBarLifecycle(t *testing.T) {
	run, done := testProgram(t, newBarModel(colorTheme(), "gem", 4))
	bar := &animatedBar{run: run}

	bar.Increment(1)
	bar.SetTitle("rake")
	bar.Increment(0)
	bar.Done()
	bar.Done()

	waitExit(t, done)
}

func TestAnimatedSpinnerLifecycle(t *testing.T) {
	run, done := testProgram(t, newSpinnerModel(colorTheme(), "Installing"))
	sp := &animatedSpinner{run: run}

	sp.SetTitle("Still installing")
	sp.Stop()
	sp.Stop()

	waitExit(t, done)
}
