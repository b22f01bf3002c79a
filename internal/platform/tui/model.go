package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for the game screen.
type Model struct {
	source   registry.Source
	painter  *render.Painter
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	interval time.Duration
	quitting bool
}

// NewModel creates a model that paints source every interval.
func NewModel(source registry.Source, width, height int, interval time.Duration) Model {
	return Model{
		source:   source,
		painter:  render.NewPainter(render.DefaultPalette()),
		screen:   core.NewScreen(width, height-helpHeight),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: interval,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		// View repaints from a fresh snapshot; just schedule the next frame.
		return m, frameCmd(m.interval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.source.Trigger()
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.painter.Paint(m.screen, m.source.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
