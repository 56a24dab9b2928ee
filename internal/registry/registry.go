// Package registry is the seam between the platform and the simulation.
//
// A game package registers a factory from init(); the TUI and the CLI only
// ever see the Game interface, so they never import a game package and can
// be tested against stub games. Beyond the required Game methods, the
// platform probes for the optional capabilities declared here.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/runngun/internal/core"
)

// Game is the interface the platform drives.
// Implementations are pure fixed-tick simulations: no terminal, no clock,
// no storage. The platform owns input mapping, timing and persistence.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game-over flags.
	State() core.GameState
}

// Optional capabilities.
type (
	// HighScoreSetter games show the stored best score.
	HighScoreSetter interface{ SetHighScore(score int) }

	// LevelReporter games keep scores per level.
	LevelReporter interface{ LevelID() string }

	// TickReporter games report run length in ticks.
	TickReporter interface{ Ticks() uint64 }
)

// Capability names reported in GameInfo.
const (
	CapHighScore = "high-score"
	CapLevels    = "levels"
	CapTicks     = "ticks"
)

// Capabilities lists the optional interfaces g implements.
func Capabilities(g Game) []string {
	var caps []string
	if _, ok := g.(HighScoreSetter); ok {
		caps = append(caps, CapHighScore)
	}
	if _, ok := g.(LevelReporter); ok {
		caps = append(caps, CapLevels)
	}
	if _, ok := g.(TickReporter); ok {
		caps = append(caps, CapTicks)
	}
	return caps
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID           string
	Title        string
	Capabilities []string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory. It is meant to be called from init().
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	probe := f()
	entries[id] = entry{
		info: GameInfo{ID: id, Title: probe.Title(), Capabilities: Capabilities(probe)},
		new:  f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.new(), nil
}
