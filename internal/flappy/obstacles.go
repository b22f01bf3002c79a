package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a pair of walls with a passable gap between them.
// All values are world units; y grows upward.
type Obstacle struct {
	X         float64 // Left edge
	Width     float64
	UpperGapY float64 // Lower bound of the upper wall
	DownGapY  float64 // Upper bound of the lower wall
}

// Stream is a fixed-length conveyor of obstacles scrolling left.
// Obstacles are never destroyed individually: once the leftmost one is a full
// world width off screen it is dropped and a new one is appended at the back.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	geom      config.Obstacles
	world     config.World
}

// NewStream creates a stream and lays out its initial obstacles.
func NewStream(geom config.Obstacles, world config.World, rng *rand.Rand) *Stream {
	s := &Stream{
		obstacles: make([]Obstacle, 0, geom.Count),
		rng:       rng,
		geom:      geom,
		world:     world,
	}
	s.Reset()
	return s
}

// Reset discards all obstacles and lays out a fresh sequence: the first at
// the configured lead distance, each next one spaced by GapX.
func (s *Stream) Reset() {
	s.obstacles = s.obstacles[:0]
	for i := 0; i < s.geom.Count; i++ {
		x := s.geom.FirstX
		if i > 0 {
			x = s.obstacles[i-1].X + s.geom.GapX
		}
		s.obstacles = append(s.obstacles, s.place(x))
	}
}

// Advance scrolls every obstacle left by dx and recycles at most one.
// Returns true if an obstacle was recycled.
func (s *Stream) Advance(dx float64) bool {
	n := len(s.obstacles)
	if n == 0 {
		return false
	}

	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}

	if s.obstacles[0].X >= -s.world.Width {
		return false
	}

	last := s.obstacles[n-1]
	copy(s.obstacles, s.obstacles[1:])
	s.obstacles[n-1] = s.place(last.X + s.geom.GapX)
	return true
}

// place creates an obstacle at x with a uniformly random gap that stays clear
// of the padding bands.
func (s *Stream) place(x float64) Obstacle {
	lo, hi := s.geom.GapRange(s.world.Height)
	upper := (hi-lo)*s.rng.Float64() + lo

	return Obstacle{
		X:         x,
		Width:     s.geom.Width,
		UpperGapY: upper,
		DownGapY:  upper - s.geom.GapY,
	}
}

// FirstCollision returns the index of the first obstacle, front to back,
// that the body collides with.
func (s *Stream) FirstCollision(b Body) (int, bool) {
	for i, ob := range s.obstacles {
		if Collides(b, ob) {
			return i, true
		}
	}
	return -1, false
}

// Obstacles returns the current sequence. The slice is owned by the stream
// and changes on the next Advance or Reset; use Snapshot for a stable copy.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Len returns the number of obstacles in the stream.
func (s *Stream) Len() int {
	return len(s.obstacles)
}
