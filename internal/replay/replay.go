// Package replay records the input stream of a session and re-simulates
// recordings headlessly to check that they reproduce the same final state.
package replay

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Recorder captures every input frame handed to a game's Step.
// Empty frames only advance the tick counter.
type Recorder struct {
	gameID   string
	seed     int64
	tickRate int

	tick   int
	frames []storage.Frame
}

// NewRecorder starts a recording for a game reset with runtime.
func NewRecorder(gameID string, runtime core.RuntimeConfig) *Recorder {
	return &Recorder{
		gameID:   gameID,
		seed:     runtime.Seed,
		tickRate: runtime.TickRate,
	}
}

// Record notes the frame passed to one Step call.
func (r *Recorder) Record(in core.InputFrame) {
	r.tick++
	if in.Empty() {
		return
	}
	x, hasPointer := in.PointerX()
	r.frames = append(r.frames, storage.Frame{
		Tick:       r.tick,
		Mask:       in.Mask(),
		Pointer:    x,
		HasPointer: hasPointer,
	})
}

// Ticks returns the number of recorded Step calls.
func (r *Recorder) Ticks() int {
	return r.tick
}

// Finish builds the stored form of the recording from the game's final state.
func (r *Recorder) Finish(state core.GameState, hash uint64) (storage.Replay, []storage.Frame) {
	return storage.Replay{
		GameID:    r.gameID,
		Seed:      r.seed,
		TickRate:  r.tickRate,
		Ticks:     r.tick,
		Score:     state.Score,
		Outcome:   Outcome(state),
		FinalHash: hash,
	}, r.frames
}

// Outcome classifies a final game state.
func Outcome(state core.GameState) string {
	switch {
	case state.Won:
		return storage.OutcomeWon
	case state.GameOver:
		return storage.OutcomeLost
	default:
		return storage.OutcomeQuit
	}
}

// Result is the outcome of re-simulating a recording.
type Result struct {
	Replay storage.Replay
	Hash   uint64 // Hash reached by the re-simulation
	State  core.GameState
}

// Match reports whether the re-simulation reproduced the recorded state.
func (r Result) Match() bool {
	return r.Hash == r.Replay.FinalHash
}

// Run resets g with the recording's seed and tick rate and feeds it every
// recorded tick.
func Run(g registry.Game, rep storage.Replay, frames []storage.Frame) Result {
	runtime := core.DefaultConfig()
	runtime.Seed = rep.Seed
	runtime.TickRate = rep.TickRate
	g.Reset(runtime)

	next := 0
	empty := core.NewInputFrame()
	for tick := 1; tick <= rep.Ticks; tick++ {
		in := empty
		if next < len(frames) && frames[next].Tick == tick {
			f := frames[next]
			in = core.FrameFromMask(f.Mask, f.Pointer, f.HasPointer)
			next++
		}
		g.Step(in)
	}

	return Result{Replay: rep, Hash: g.Hash(), State: g.State()}
}

// Verify loads a recording from store and re-simulates it.
func Verify(store *storage.Store, id string) (Result, error) {
	rep, frames, err := store.LoadReplay(id)
	if err != nil {
		return Result{}, err
	}
	g, err := registry.Create(rep.GameID)
	if err != nil {
		return Result{}, fmt.Errorf("replay %s: %w", id, err)
	}
	return Run(g, rep, frames), nil
}

// Save finishes rec against g's current state and stores it. Recordings
// without a single tick are skipped and yield an empty ID.
func Save(store *storage.Store, rec *Recorder, g registry.Game) (string, error) {
	if store == nil || rec == nil || rec.Ticks() == 0 {
		return "", nil
	}
	rep, frames := rec.Finish(g.State(), g.Hash())
	id, err := store.SaveReplay(rep, frames)
	if err != nil {
		return "", fmt.Errorf("replay: save %s: %w", rep.GameID, err)
	}
	return id, nil
}
