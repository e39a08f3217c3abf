// Package registry maps game IDs to constructors. Each game package
// registers itself from init, so front ends and the replay runner can build
// any game by ID without importing it directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one arcade title. Implementations are pure simulations: the
// caller owns timing, input and output.
type Game interface {
	// ID is the stable key used on the command line and in stored replays.
	ID() string
	Title() string

	// Reset starts a fresh session with cfg's tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one fixed tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Playfield is the logical extent Draw works in.
	Playfield() core.Size

	// Draw paints the current state. It must not change it.
	Draw(dst core.Canvas)

	State() core.GameState

	// Hash digests the full simulation state. Two runs with the same seed
	// and inputs hash equal.
	Hash() uint64
}

// Factory builds a game ready for Reset.
type Factory func() Game

// GameInfo describes a registered game without keeping an instance around.
type GameInfo struct {
	ID        string
	Title     string
	Playfield core.Size
}

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. A second registration of the same id
// panics, since it can only be a programming error.
func Register(id string, f Factory) {
	probe := f()
	info := GameInfo{ID: id, Title: probe.Title(), Playfield: probe.Playfield()}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: info, new: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
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
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
