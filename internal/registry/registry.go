// Package registry provides a global registry of renderer factories.
// Renderers register themselves in init() functions, so the CLI can list and
// open them without hardcoded dependencies, and fall back from one to the
// next when a terminal backend cannot start.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// ErrNoRenderer is returned by Open when no preferred renderer could start.
var ErrNoRenderer = errors.New("registry: no renderer available")

// Source is the simulation as seen by a renderer: one input trigger and a
// read-only snapshot. internal/engine.Engine implements it.
type Source interface {
	Trigger()
	Snapshot() flappy.Snapshot
}

// Renderer displays a Source until the user quits or the context ends.
// A renderer owns its frame timer and tears it down when Run returns.
//
// A factory may already hold the terminal, so callers Close every renderer
// Open returns, whether or not Run was reached. Close is idempotent.
type Renderer interface {
	Run(ctx context.Context) error
	Close() error
}

// Options is everything a factory needs to build a renderer.
type Options struct {
	Source Source
	Config config.Config
	Logger *log.Logger
	Width  int // Initial terminal size, used until the backend reports its own
	Height int
}

// Factory builds a renderer. A failure here (no terminal, unsupported
// backend) stays local to the renderer; Open moves on to the next one.
type Factory func(opts Options) (Renderer, error)

// Info contains metadata about a registered renderer.
type Info struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a renderer factory to the registry.
// Panics if a renderer with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: renderer %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered renderers, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a renderer by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, opts Options) (Renderer, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown renderer %q", id)
	}

	r, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: renderer %q: %w", id, err)
	}
	return r, nil
}

// Exists checks if a renderer with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Open tries each preferred renderer in order and returns the first one that
// starts, along with its ID. Failures are logged as warnings and collected
// into the returned error if nothing starts.
func Open(prefer []string, opts Options) (Renderer, string, error) {
	errs := []error{ErrNoRenderer}
	for _, id := range prefer {
		r, err := Create(id, opts)
		if err == nil {
			return r, id, nil
		}
		if opts.Logger != nil {
			opts.Logger.Warn("renderer unavailable, falling back", "renderer", id, "error", err)
		}
		errs = append(errs, err)
	}
	return nil, "", errors.Join(errs...)
}
