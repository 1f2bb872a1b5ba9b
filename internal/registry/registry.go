// Package registry maps game ids to factories. Games register from init,
// so the CLI and the SSH server only need a blank import to find them.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/keng/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable session. Implementations hold pure simulation state;
// the platform owns input mapping, timing and terminal output.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string
	Title() string

	// Reset starts a fresh session for the given screen and seed. It is
	// called before the first Step and again whenever the platform
	// restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen the platform has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// RunSummary describes a finished run beyond its score.
type RunSummary struct {
	Mode     string
	Captures int
	Seconds  int
}

// Summarizer is implemented by games that report run details for the
// scoreboard. The platform checks for it with a type assertion.
type Summarizer interface {
	RunSummary() RunSummary
}

// Resizer is implemented by games that can adapt to a new screen size
// without a Reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo is what List reports for each game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, un-reset game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. A second registration of the same id
// is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
