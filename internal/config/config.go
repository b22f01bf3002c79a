// Package config provides YAML-based configuration for the simulation and
// the renderers. A Config is loaded once at startup and then passed by value;
// nothing reconfigures a running game.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the single source of truth for physics, geometry and rendering
// constants.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	World     World     `yaml:"world"`
	Body      Body      `yaml:"body"`
	Obstacles Obstacles `yaml:"obstacles"`
	Renderer  Renderer  `yaml:"renderer"`
}

// Physics defines the fixed-step integration parameters.
// Velocities are in world units per tick, gravity in world units per tick².
type Physics struct {
	TickInterval   time.Duration `yaml:"tick_interval"`
	Gravity        float64       `yaml:"gravity"`
	JumpPush       float64       `yaml:"jump_push"`
	MaxSpeedBottom float64       `yaml:"max_speed_bottom"`
	MaxSpeedTop    float64       `yaml:"max_speed_top"`
	SpeedX         float64       `yaml:"speed_x"` // Obstacle scroll per tick
}

// World defines the visible play area in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Body defines the player's fixed column and square hitbox.
type Body struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// Obstacles defines the obstacle stream geometry.
type Obstacles struct {
	Count       int     `yaml:"count"`
	FirstX      float64 `yaml:"first_x"`      // X of the first obstacle after a reset
	GapX        float64 `yaml:"gap_x"`        // Horizontal spacing between obstacles
	GapY        float64 `yaml:"gap_y"`        // Vertical size of the passable gap
	Width       float64 `yaml:"width"`        // Horizontal extent of each obstacle
	AreaPadding float64 `yaml:"area_padding"` // Band at top and bottom the gap never enters
}

// Renderer defines display-side settings.
type Renderer struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Prefer        []string      `yaml:"prefer"` // Renderer IDs, tried in order
}

// GapRange returns the bounds [lo, hi] from which an obstacle's upper gap edge
// is drawn.
func (o Obstacles) GapRange(worldHeight float64) (lo, hi float64) {
	return o.AreaPadding + o.GapY, worldHeight - o.AreaPadding
}

// Validate checks the invariants the simulation relies on.
// The returned error wraps ErrInvalid and lists every problem found.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	for _, f := range c.floatFields() {
		check(!math.IsNaN(f.value) && !math.IsInf(f.value, 0), "%s must be a finite number, got %g", f.name, f.value)
	}
	if len(problems) > 0 {
		// Comparisons below are meaningless with NaN or Inf around.
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	p := c.Physics
	check(p.TickInterval > 0, "physics.tick_interval must be positive, got %s", p.TickInterval)
	check(p.Gravity < 0, "physics.gravity must be negative, got %g", p.Gravity)
	check(p.MaxSpeedBottom < p.MaxSpeedTop,
		"physics.max_speed_bottom (%g) must be below physics.max_speed_top (%g)", p.MaxSpeedBottom, p.MaxSpeedTop)
	check(p.JumpPush >= p.MaxSpeedBottom && p.JumpPush <= p.MaxSpeedTop,
		"physics.jump_push (%g) must lie within [%g, %g]", p.JumpPush, p.MaxSpeedBottom, p.MaxSpeedTop)
	check(p.SpeedX > 0, "physics.speed_x must be positive, got %g", p.SpeedX)

	check(c.World.Width > 0, "world.width must be positive, got %g", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %g", c.World.Height)

	check(c.Body.Size > 0, "body.size must be positive, got %g", c.Body.Size)
	check(c.Body.X >= 0, "body.x must not be negative, got %g", c.Body.X)

	o := c.Obstacles
	check(o.Count > 0, "obstacles.count must be positive, got %d", o.Count)
	check(o.GapX > 0, "obstacles.gap_x must be positive, got %g", o.GapX)
	check(o.GapY > 0, "obstacles.gap_y must be positive, got %g", o.GapY)
	check(o.Width > 0, "obstacles.width must be positive, got %g", o.Width)
	check(o.AreaPadding >= 0, "obstacles.area_padding must not be negative, got %g", o.AreaPadding)
	// One recycle per tick only keeps up when obstacles move less than their spacing.
	check(p.SpeedX < o.GapX, "physics.speed_x (%g) must be below obstacles.gap_x (%g)", p.SpeedX, o.GapX)
	if lo, hi := o.GapRange(c.World.Height); lo > hi {
		problems = append(problems, fmt.Sprintf(
			"obstacles.gap_y plus twice obstacles.area_padding (%g) exceeds world.height (%g)",
			o.GapY+2*o.AreaPadding, c.World.Height))
	}

	check(c.Renderer.FrameInterval > 0, "renderer.frame_interval must be positive, got %s", c.Renderer.FrameInterval)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

type floatField struct {
	name  string
	value float64
}

func (c Config) floatFields() []floatField {
	return []floatField{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_push", c.Physics.JumpPush},
		{"physics.max_speed_bottom", c.Physics.MaxSpeedBottom},
		{"physics.max_speed_top", c.Physics.MaxSpeedTop},
		{"physics.speed_x", c.Physics.SpeedX},
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"body.x", c.Body.X},
		{"body.size", c.Body.Size},
		{"obstacles.first_x", c.Obstacles.FirstX},
		{"obstacles.gap_x", c.Obstacles.GapX},
		{"obstacles.gap_y", c.Obstacles.GapY},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.area_padding", c.Obstacles.AreaPadding},
	}
}
