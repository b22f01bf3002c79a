// Package flappy implements the simulation core of a Flappy Bird-style game:
// a body falls under gravity, jumps on the main action, and must pass through
// the gaps of a scrolling obstacle stream.
//
// The simulation is pure fixed-step: nothing here reads the wall clock. A
// Game is not safe for concurrent use; internal/engine drives it from a
// ticker and serializes access.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the player-controlled square. X never changes during play; the
// world scrolls instead.
type Body struct {
	X         float64
	Y         float64 // Bottom edge, never below 0
	VelocityY float64 // Positive is up
	Size      float64
}

// TickResult describes what one tick did.
type TickResult struct {
	Phase    Phase
	Recycled bool     // An obstacle was recycled this tick
	Cause    EndCause // Why the session ended on this tick, CauseNone otherwise
}

// Game is one game session: a body, an obstacle stream and a phase.
type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	body   Body
	stream *Stream
	phase  Phase
	ticks  int // Active ticks since the last reset
}

// New creates a game in PhaseAwaitingStart. The seed drives obstacle
// placement, so equal seeds and inputs replay identically.
func New(cfg config.Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	g := &Game{
		cfg:    cfg,
		rng:    rng,
		stream: NewStream(cfg.Obstacles, cfg.World, rng),
	}
	g.reset()
	return g, nil
}

// reset re-initializes the body and the obstacles and returns to
// PhaseAwaitingStart. The RNG keeps its state so each round differs.
func (g *Game) reset() {
	g.body = Body{
		X:    g.cfg.Body.X,
		Y:    g.cfg.World.Height / 2,
		Size: g.cfg.Body.Size,
	}
	g.stream.Reset()
	g.phase = PhaseAwaitingStart
	g.ticks = 0
}

// Trigger handles the main action. While active it overwrites the vertical
// velocity with the jump push; otherwise it starts a fresh round without
// jumping.
func (g *Game) Trigger() {
	next, eff := transition(g.phase, eventTrigger)
	switch eff {
	case effectReset:
		g.reset()
	case effectJump:
		// Not clamped here; the next gravity step clamps it.
		g.body.VelocityY = g.cfg.Physics.JumpPush
	}
	g.phase = next
}

// Tick advances the simulation by one fixed step. It is a no-op unless the
// game is active.
func (g *Game) Tick() TickResult {
	if g.phase != PhaseActive {
		return TickResult{Phase: g.phase}
	}
	g.ticks++

	recycled := g.stream.Advance(g.cfg.Physics.SpeedX)
	g.applyAcceleration(g.cfg.Physics.Gravity)
	g.applyMovement()

	// Both checks run every tick; ground contact wins when both fire.
	grounded := g.body.Y <= 0
	_, hit := g.stream.FirstCollision(g.body)

	cause := CauseNone
	switch {
	case grounded:
		cause = CauseGround
	case hit:
		cause = CauseCollision
	}
	if cause != CauseNone {
		g.phase, _ = transition(g.phase, eventLoss)
	}

	return TickResult{Phase: g.phase, Recycled: recycled, Cause: cause}
}

func (g *Game) applyAcceleration(dv float64) {
	p := g.cfg.Physics
	g.body.VelocityY = core.ClampF(g.body.VelocityY+dv, p.MaxSpeedBottom, p.MaxSpeedTop)
}

func (g *Game) applyMovement() {
	g.body.Y = max(0, g.body.Y+g.body.VelocityY)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Body returns a copy of the body.
func (g *Game) Body() Body {
	return g.body
}

// Ticks returns the number of active ticks since the round started.
func (g *Game) Ticks() int {
	return g.ticks
}
