package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/flappy.yaml and is used as the base every file is overlaid on.
func Default() Config {
	return Config{
		Physics: Physics{
			TickInterval:   100 * time.Millisecond,
			Gravity:        -15,
			JumpPush:       50,
			MaxSpeedBottom: -50,
			MaxSpeedTop:    50,
			SpeedX:         30,
		},
		World: World{
			Width:  1000,
			Height: 1000,
		},
		Body: Body{
			X:    200,
			Size: 30,
		},
		Obstacles: Obstacles{
			Count:       5,
			FirstX:      1500,
			GapX:        500,
			GapY:        200,
			Width:       150,
			AreaPadding: 100,
		},
		Renderer: Renderer{
			FrameInterval: 30 * time.Millisecond,
			Prefer:        []string{"tea", "tcell"},
		},
	}
}
