package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Snapshot is a read-only view of a game for renderers. It shares no memory
// with the game, so it may be read while the simulation keeps ticking.
type Snapshot struct {
	Phase     Phase
	Body      Body
	Obstacles []Obstacle
	World     config.World
	Ticks     int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, g.stream.Len())
	copy(obstacles, g.stream.Obstacles())

	return Snapshot{
		Phase:     g.phase,
		Body:      g.body,
		Obstacles: obstacles,
		World:     g.cfg.World,
		Ticks:     g.ticks,
	}
}
