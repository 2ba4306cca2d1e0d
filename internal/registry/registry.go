// Package registry lets game modes register themselves in init() so the
// platform can list and create them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage
	// (e.g., "lander", "lander_endless").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score, game over and pause flags.
	State() core.GameState
}

// FlightReporter is implemented by games that produce per-attempt flight records.
// The platform drains them after each tick for persistence.
type FlightReporter interface {
	DrainFlights() []core.FlightRecord
}

// Resizer is implemented by games that handle terminal resizes themselves
// instead of being reset by the platform.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// Registry maps game IDs to factories. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory. The title is taken from a throwaway instance.
// Panics if the ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	title := f().Title()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Create instantiates a game by ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// defaultRegistry holds the games registered from init functions.
var defaultRegistry = New()

// Register adds a game to the default registry.
func Register(id string, f Factory) {
	defaultRegistry.Register(id, f)
}

// List returns the games of the default registry.
func List() []GameInfo {
	return defaultRegistry.List()
}

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) {
	return defaultRegistry.Create(id)
}

// Exists reports whether id is in the default registry.
func Exists(id string) bool {
	return defaultRegistry.Exists(id)
}
