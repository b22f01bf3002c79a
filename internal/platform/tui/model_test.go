package tui

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// fakeSource counts triggers and serves a fixed snapshot.
type fakeSource struct {
	mu       sync.Mutex
	triggers int
	snap     flappy.Snapshot
}

func newFakeSource() *fakeSource {
	return &fakeSource{snap: flappy.Snapshot{
		Phase: flappy.PhaseAwaitingStart,
		Body:  flappy.Body{X: 200, Y: 500, Size: 30},
		World: config.Default().World,
	}}
}

func (f *fakeSource) Trigger() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers++
}

func (f *fakeSource) Snapshot() flappy.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeSource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.triggers
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w flaps", runeKey('w'), core.ActionFlap},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"enter flaps", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"other keys ignored", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.Action(tc.msg))
		})
	}
}

func TestModelForwardsFlap(t *testing.T) {
	src := newFakeSource()
	var m tea.Model = NewModel(src, 80, 24, 30*time.Millisecond)

	m, cmd := m.Update(runeKey('w'))
	assert.Nil(t, cmd)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, _ = m.Update(runeKey('x'))

	assert.Equal(t, 2, src.count())
}

func TestModelQuit(t *testing.T) {
	src := newFakeSource()
	var m tea.Model = NewModel(src, 80, 24, 30*time.Millisecond)

	m, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
	assert.Zero(t, src.count())
}

func TestModelFrameSchedulesNext(t *testing.T) {
	m := NewModel(newFakeSource(), 80, 24, time.Millisecond)

	require.NotNil(t, m.Init())
	_, cmd := m.Update(FrameMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.IsType(t, FrameMsg{}, cmd())
}

func TestModelViewPaintsSnapshot(t *testing.T) {
	var m tea.Model = NewModel(newFakeSource(), 80, 24, 30*time.Millisecond)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 42})

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, 42, "41 screen rows plus the help line")
	assert.Contains(t, view, string(render.BodyChar))
	assert.Contains(t, view, "SPACE to start")
	assert.Contains(t, lines[len(lines)-1], "quit")
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "ef", core.ColorDefault)

	out := RenderScreen(s)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRendererStopsOnContextCancel(t *testing.T) {
	src := newFakeSource()
	r := newRenderer(registry.Options{
		Source: src,
		Config: config.Default(),
		Width:  80,
		Height: 24,
	}, tea.WithInput(nil), tea.WithOutput(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("renderer did not stop after context cancel")
	}
}

func TestNewWithoutTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("running on a terminal")
	}

	_, err := New(registry.Options{Source: newFakeSource(), Config: config.Default()})
	assert.ErrorIs(t, err, ErrNoTerminal)
}
