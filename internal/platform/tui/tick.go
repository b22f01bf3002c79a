// Package tui is the Bubble Tea renderer. It repaints simulation snapshots
// on its own frame timer and forwards the main action to the engine; the
// simulation keeps its own tick regardless of how fast frames are drawn.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a repaint.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends one frame message after interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
