package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/render"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagFrame     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Runs one round without a screen or clock: the game is started, flapped every
--flap-every ticks, and stepped until it ends or --ticks is reached. The same
seed and flags always give the same result.

Examples:
  flappy simulate --seed 7
  flappy simulate --ticks 1000 --flap-every 3 --seed 7 --frame`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 500, "Maximum number of ticks")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 4, "Flap every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel, "simulate")
	if err != nil {
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	seed := resolveSeed(flagSeed)
	game, err := flappy.New(cfg, seed)
	if err != nil {
		return err
	}
	logger.Debug("simulating", "config", source, "seed", seed, "ticks", flagTicks)

	game.Trigger()
	recycled := 0
	cause := flappy.CauseNone
	for i := 0; i < flagTicks && game.Phase() == flappy.PhaseActive; i++ {
		if flagFlapEvery > 0 && i > 0 && i%flagFlapEvery == 0 {
			game.Trigger()
		}
		res := game.Tick()
		if res.Recycled {
			recycled++
		}
		cause = res.Cause
	}

	snap := game.Snapshot()
	logger.Debug("simulation done", "phase", snap.Phase, "cause", cause)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:      %d\n", seed)
	fmt.Fprintf(out, "phase:     %s\n", snap.Phase)
	fmt.Fprintf(out, "cause:     %s\n", cause)
	fmt.Fprintf(out, "ticks:     %d\n", snap.Ticks)
	fmt.Fprintf(out, "recycled:  %d\n", recycled)
	fmt.Fprintf(out, "body:      y=%.1f vy=%.1f\n", snap.Body.Y, snap.Body.VelocityY)

	if flagFrame {
		screen := core.NewScreen(80, 24)
		render.NewPainter(render.DefaultPalette()).Paint(screen, snap)
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}
