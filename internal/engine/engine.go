// Package engine drives a flappy.Game on a fixed tick, independent of any
// renderer's frame rate.
//
// The ticker goroutine and input callers never run game logic at the same
// time: Tick, Trigger and Snapshot all hold the engine lock, and renderers
// only ever see deep copies taken under it.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// Engine owns a game and the ticker that advances it.
type Engine struct {
	id     string
	logger *log.Logger

	mu     sync.Mutex
	game   *flappy.Game
	rounds int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates the game and starts ticking it immediately at
// cfg.Physics.TickInterval. A nil logger discards everything.
func New(cfg config.Config, seed int64, logger *log.Logger) (*Engine, error) {
	game, err := flappy.New(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	e := &Engine{
		id:     uuid.NewString(),
		logger: logger,
		game:   game,
		stopCh: make(chan struct{}),
	}

	e.logger.Debug("engine started", "session", e.id, "tick", cfg.Physics.TickInterval, "seed", seed)

	e.wg.Add(1)
	go e.run(cfg.Physics.TickInterval)
	return e, nil
}

func (e *Engine) run(interval time.Duration) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Engine) tick() {
	e.mu.Lock()
	res := e.game.Tick()
	ticks := e.game.Ticks()
	round := e.rounds
	e.mu.Unlock()

	if res.Recycled {
		e.logger.Debug("obstacle recycled", "session", e.id, "round", round, "tick", ticks)
	}
	if res.Cause != flappy.CauseNone {
		e.logger.Info("round ended", "session", e.id, "round", round, "cause", res.Cause, "ticks", ticks)
	}
}

// Trigger forwards the main action to the game.
func (e *Engine) Trigger() {
	e.mu.Lock()
	before := e.game.Phase()
	e.game.Trigger()
	if before != flappy.PhaseActive {
		e.rounds++
	}
	round := e.rounds
	e.mu.Unlock()

	if before != flappy.PhaseActive {
		e.logger.Info("round started", "session", e.id, "round", round, "from", before)
	}
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() flappy.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot()
}

// ID returns the engine's session identifier used in logs.
func (e *Engine) ID() string {
	return e.id
}

// Stop halts the ticker and waits for the tick goroutine to exit.
// It is safe to call more than once. The last state stays readable.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
		e.logger.Debug("engine stopping", "session", e.id)
	})
	e.wg.Wait()
}
