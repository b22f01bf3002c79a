package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// ID is the registry identifier of this renderer.
const ID = "tea"

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("tui: not a terminal")

// Renderer runs the game screen as a Bubble Tea program.
type Renderer struct {
	model Model
	opts  []tea.ProgramOption
}

// New creates the renderer. It fails when there is no interactive terminal.
func New(opts registry.Options) (*Renderer, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNoTerminal
	}
	return newRenderer(opts), nil
}

func newRenderer(opts registry.Options, programOpts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		model: NewModel(opts.Source, opts.Width, opts.Height, opts.Config.Renderer.FrameInterval),
		opts:  append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...),
	}
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// an error.
func (r *Renderer) Run(ctx context.Context) error {
	p := tea.NewProgram(r.model, append(r.opts, tea.WithContext(ctx))...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Close is a no-op: the program takes the terminal in Run and restores it
// before Run returns.
func (r *Renderer) Close() error {
	return nil
}

func init() {
	registry.Register(ID, "Bubble Tea (lipgloss colors)", func(opts registry.Options) (registry.Renderer, error) {
		r, err := New(opts)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}
