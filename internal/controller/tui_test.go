package controller

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sjavac/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))

	// the program may already be gone; send must not block forever
	waitOrFail(t, "send", func() { tui.send(upcomingMsg{count: 2}) })
	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_StartTwiceKeepsFirstProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))
	first := tui.program

	require.NoError(t, tui.startWithModel(quitModel{}))
	assert.Same(t, first, tui.program)

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(upcomingMsg{count: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()
	assert.Nil(t, tui.program)
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close()

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// Avoid starting Bubble Tea program in tests
	tui.started = true

	tui.DisplayConcurrencyInfo(2, 1, 3)
	tui.DisplayUpcomingCount(5)
	tui.DisplayStarted(m.Source{Origin: &m.File{Path: "a.sjava"}}, 1)
	tui.DisplayStarted(m.Source{}, 0)
	tui.DisplayCompleted(report("a.sjava", 1, "GlobalScope", 3))
	require.NoError(t, tui.DisplayReports([]m.Report{report("a.sjava", 0, "", 0)}))
}

func TestTUI_StartAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithViewMode()))
	require.NoError(t, tui.DisplayReports([]m.Report{report("a.sjava", 0, "", 0)}))

	waitOrFail(t, "Close()", tui.Close)
}
