// Package render paints simulation snapshots into a core.Screen. It holds no
// game logic: every terminal backend reads a flappy.Snapshot, hands it to a
// Painter and flushes the resulting cells its own way.
package render

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Glyphs used for game elements.
const (
	BodyChar     = '●'
	ObstacleChar = '█'
	GroundChar   = '═'
)

// Palette maps game elements to colors.
type Palette struct {
	BodyWaiting core.Color
	BodyPlaying core.Color
	BodyLost    core.Color
	Obstacle    core.Color
	Ground      core.Color
	Text        core.Color
}

// DefaultPalette returns the standard colors: gray before start, yellow
// while playing, red once lost.
func DefaultPalette() Palette {
	return Palette{
		BodyWaiting: core.ColorGray,
		BodyPlaying: core.ColorYellow,
		BodyLost:    core.ColorRed,
		Obstacle:    core.ColorGreen,
		Ground:      core.ColorCyan,
		Text:        core.ColorWhite,
	}
}

// Status lines shown on the ground row.
const (
	StatusWaiting = " SPACE to start "
	StatusLost    = " GAME OVER · SPACE to restart "
)

// Painter draws snapshots. The zero value is not usable; use NewPainter.
type Painter struct {
	palette Palette
}

// NewPainter creates a painter with the given palette.
func NewPainter(p Palette) *Painter {
	return &Painter{palette: p}
}

// Paint clears dst and draws the snapshot. The last row is the ground; the
// world is scaled to fill the rows above it with y flipped (world y grows up,
// screen rows grow down).
func (p *Painter) Paint(dst *core.Screen, snap flappy.Snapshot) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() < 2 {
		return
	}

	vp := newViewport(dst.Width(), dst.Height()-1, snap)
	for _, ob := range snap.Obstacles {
		p.paintObstacle(dst, vp, ob)
	}
	p.paintBody(dst, vp, snap)
	p.paintGround(dst, vp, snap.Phase)
}

func (p *Painter) paintObstacle(dst *core.Screen, vp viewport, ob flappy.Obstacle) {
	left := vp.col(ob.X)
	right := core.Max(vp.col(ob.X+ob.Width), left+1)
	if right <= 0 || left >= vp.w {
		return
	}

	for row := 0; row < vp.h; row++ {
		y := vp.rowCenter(row)
		if y > ob.UpperGapY || y < ob.DownGapY {
			dst.DrawHLine(left, row, right-left, ObstacleChar, p.palette.Obstacle)
		}
	}
}

func (p *Painter) paintBody(dst *core.Screen, vp viewport, snap flappy.Snapshot) {
	b := snap.Body
	cx := vp.col(b.X + b.Size/2)
	cy := vp.row(b.Y + b.Size/2)
	w := core.Max(1, int(math.Round(b.Size*vp.sx)))
	h := core.Max(1, int(math.Round(b.Size*vp.sy)))

	r := core.NewRect(cx-w/2, cy-h/2, w, h)
	dst.DrawRect(r, BodyChar, p.bodyColor(snap.Phase))
}

func (p *Painter) paintGround(dst *core.Screen, vp viewport, phase flappy.Phase) {
	dst.DrawHLine(0, vp.h, vp.w, GroundChar, p.palette.Ground)

	switch phase {
	case flappy.PhaseAwaitingStart:
		dst.DrawTextCentered(vp.h, StatusWaiting, p.palette.Text)
	case flappy.PhaseEnded:
		dst.DrawTextCentered(vp.h, StatusLost, p.palette.BodyLost)
	}
}

func (p *Painter) bodyColor(phase flappy.Phase) core.Color {
	switch phase {
	case flappy.PhaseActive:
		return p.palette.BodyPlaying
	case flappy.PhaseEnded:
		return p.palette.BodyLost
	default:
		return p.palette.BodyWaiting
	}
}

// viewport maps world coordinates to the play area cells.
type viewport struct {
	w, h   int
	sx, sy float64 // Cells per world unit
}

func newViewport(w, h int, snap flappy.Snapshot) viewport {
	return viewport{
		w:  w,
		h:  h,
		sx: float64(w) / snap.World.Width,
		sy: float64(h) / snap.World.Height,
	}
}

// col returns the column containing world x. It may lie off screen.
func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

// row returns the play-area row containing world y, clamped to the area.
func (v viewport) row(y float64) int {
	return core.Clamp(v.h-1-int(math.Floor(y*v.sy)), 0, v.h-1)
}

// rowCenter returns the world y at the vertical center of a row.
func (v viewport) rowCenter(row int) float64 {
	return (float64(v.h-row) - 0.5) / v.sy
}
