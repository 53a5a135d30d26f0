// Package registry provides a global registry for search strategies.
// Strategies register themselves in init() functions, allowing the CLI and
// the benchmark driver to pick one by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/t2048-solver/internal/game"
)

// ErrUnknownStrategy is returned when no strategy is registered under an ID.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy chooses a move for a game state.
// Implementations must not mutate the state they are given.
type Strategy interface {
	// ID returns a unique identifier (e.g., "alphabeta").
	// Used for CLI flags, config files and stored benchmark runs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// BestMove searches depth plies ahead and returns the recommended direction.
	// Returns an error when the state offers no legal move.
	BestMove(s *game.State, depth int) (game.Direction, error)
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new strategy instance.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownStrategy)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
