package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var flagRenderers []string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W/Enter  - Start, flap, restart after a crash
  Q/Esc/Ctrl+C      - Quit

Renderers are tried in order until one starts; see 'flappy renderers'.

Examples:
  flappy play
  flappy play --renderer tcell,tea
  flappy play --seed 42 --log-file /tmp/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringSliceVar(&flagRenderers, "renderer", nil, "Renderer preference list (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel, "flappy")
	if err != nil {
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	prefer := cfg.Renderer.Prefer
	if len(flagRenderers) > 0 {
		prefer = flagRenderers
	}
	for _, id := range prefer {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown renderer %q (run 'flappy renderers')", id)
		}
	}

	// Get terminal size for the first frame
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	eng, err := engine.New(cfg, resolveSeed(flagSeed), logger)
	if err != nil {
		return err
	}
	defer eng.Stop()

	r, id, err := registry.Open(prefer, registry.Options{
		Source: eng,
		Config: cfg,
		Logger: logger,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("cannot start a renderer (tried %s): %w", strings.Join(prefer, ", "), err)
	}
	defer r.Close()

	closeLog, err := redirectLogs(logger)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("playing", "renderer", id, "session", eng.ID())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return supervise(ctx, r, eng)
}

// supervise runs the renderer until it returns or ctx ends, then stops the
// engine.
func supervise(ctx context.Context, r registry.Renderer, eng *engine.Engine) error {
	runCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		return r.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		eng.Stop()
		return nil
	})

	return g.Wait()
}

// redirectLogs moves logging off the terminal once a renderer owns it: into
// --log-file when given, otherwise nowhere.
func redirectLogs(logger *log.Logger) (func(), error) {
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
