// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, so the frontends
// and the CLI can list and create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Game is the interface every playable variant implements.
// Implementations contain no frontend code; the platform maps keys to
// actions, drives the fixed tick and displays the rendered screen.
type Game interface {
	// ID returns a unique identifier (e.g. "pacman", "pacman_astar").
	// Used for CLI arguments and recorded sessions.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state before the first Step.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	// Restarting after game over is handled inside Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Up, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, lives, level, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// List returns information about all registered games, sorted by ID.
// Titles are read from fresh instances, so they follow the active language.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id, f := range factories {
		result = append(result, GameInfo{ID: id, Title: f().Title()})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	mu.RUnlock()

	slices.Sort(ids)
	return ids
}
