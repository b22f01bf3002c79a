// Package tcellui is a renderer that draws directly to the terminal with
// tcell. It is the fallback when the Bubble Tea renderer cannot start, and
// can be picked explicitly with --renderer tcell.
package tcellui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

// ID is the registry identifier of this renderer.
const ID = "tcell"

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// Renderer owns a tcell screen for its whole lifetime.
type Renderer struct {
	screen   tcell.Screen
	source   registry.Source
	painter  *render.Painter
	buf      *core.Screen
	interval time.Duration
	logger   *log.Logger

	closeOnce sync.Once
}

// New opens and initializes the terminal. Any failure is returned before the
// terminal is modified.
func New(opts registry.Options) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	return newWithScreen(screen, opts)
}

func newWithScreen(screen tcell.Screen, opts registry.Options) (*Renderer, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellui: cannot initialize screen: %w", err)
	}
	screen.HideCursor()

	w, h := screen.Size()
	return &Renderer{
		screen:   screen,
		source:   opts.Source,
		painter:  render.NewPainter(render.DefaultPalette()),
		buf:      core.NewScreen(w, h),
		interval: opts.Config.Renderer.FrameInterval,
		logger:   opts.Logger,
	}, nil
}

// Run paints every frame interval and handles keys until the user quits or
// ctx is cancelled. The terminal is restored before Run returns.
func (r *Renderer) Run(ctx context.Context) error {
	defer r.Close()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go r.pollEvents(events, done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch actionFor(ev.Key(), ev.Rune()) {
				case core.ActionQuit:
					return nil
				case core.ActionFlap:
					r.source.Trigger()
				}
			case *tcell.EventResize:
				r.screen.Sync()
				r.draw()
			}

		case <-ticker.C:
			r.draw()
		}
	}
}

// Close restores the terminal. The screen is initialized by New, so this must
// run even if Run never does.
func (r *Renderer) Close() error {
	r.closeOnce.Do(r.screen.Fini)
	return nil
}

// pollEvents forwards terminal events until the screen is finalized.
func (r *Renderer) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// draw paints the latest snapshot and flushes it to the terminal.
func (r *Renderer) draw() {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
	r.painter.Paint(r.buf, r.source.Snapshot())

	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			cell := r.buf.GetCell(x, y)
			style, ok := colorStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			r.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	r.screen.Show()
}

// actionFor translates a key press to a game action.
func actionFor(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyUp, tcell.KeyEnter:
		return core.ActionFlap
	case tcell.KeyRune:
		switch r {
		case ' ', 'w', 'W':
			return core.ActionFlap
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

func init() {
	registry.Register(ID, "tcell (direct terminal)", func(opts registry.Options) (registry.Renderer, error) {
		r, err := New(opts)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Debug("tcell screen unavailable", "error", err)
			}
			return nil, err
		}
		return r, nil
	})
}
