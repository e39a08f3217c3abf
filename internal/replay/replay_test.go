package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/shooter"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/tetris"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// inputAt produces a varied but fixed input stream.
func inputAt(i int) core.InputFrame {
	f := core.NewInputFrame()
	switch i % 17 {
	case 2:
		f.Set(core.ActionLeft)
	case 5:
		f.Set(core.ActionRotate)
	case 9:
		f.Set(core.ActionRight)
	case 13:
		f.Set(core.ActionDrop)
	case 15:
		f.Set(core.ActionRestart)
	}
	if i%3 == 0 {
		f.SetPointer(float64((i * 37) % 800))
	}
	return f
}

// play runs a fresh game for n ticks while recording it.
func play(t *testing.T, gameID string, seed int64, n int) (storage.Replay, []storage.Frame) {
	t.Helper()
	g, err := registry.Create(gameID)
	if err != nil {
		t.Fatal(err)
	}
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	g.Reset(runtime)

	rec := NewRecorder(gameID, runtime)
	for i := range n {
		in := inputAt(i)
		rec.Record(in)
		g.Step(in)
	}
	if rec.Ticks() != n {
		t.Fatalf("Ticks() = %d, want %d", rec.Ticks(), n)
	}
	return rec.Finish(g.State(), g.Hash())
}

func TestRecorderSkipsEmptyFrames(t *testing.T) {
	rec := NewRecorder("tetris", core.RuntimeConfig{TickRate: 60, Seed: 9})
	rec.Record(core.NewInputFrame())
	f := core.NewInputFrame()
	f.Set(core.ActionLeft)
	rec.Record(f)
	rec.Record(core.NewInputFrame())
	p := core.NewInputFrame()
	p.SetPointer(12)
	rec.Record(p)

	rep, frames := rec.Finish(core.GameState{Score: 3}, 99)
	if rep.Ticks != 4 || rep.Seed != 9 || rep.TickRate != 60 || rep.Score != 3 || rep.FinalHash != 99 {
		t.Errorf("replay = %+v", rep)
	}
	if rep.Outcome != storage.OutcomeQuit {
		t.Errorf("outcome = %q, want quit", rep.Outcome)
	}
	if len(frames) != 2 {
		t.Fatalf("frames = %+v, want 2", frames)
	}
	if frames[0].Tick != 2 || frames[0].Mask != 1<<uint(core.ActionLeft) || frames[0].HasPointer {
		t.Errorf("frame 0 = %+v", frames[0])
	}
	if frames[1].Tick != 4 || frames[1].Mask != 0 || !frames[1].HasPointer || frames[1].Pointer != 12 {
		t.Errorf("frame 1 = %+v", frames[1])
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		state core.GameState
		want  string
	}{
		{core.GameState{}, storage.OutcomeQuit},
		{core.GameState{GameOver: true}, storage.OutcomeLost},
		{core.GameState{GameOver: true, Won: true}, storage.OutcomeWon},
	}
	for _, tt := range tests {
		if got := Outcome(tt.state); got != tt.want {
			t.Errorf("Outcome(%+v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestRunReproducesEveryGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range []string{"breakout", "shooter", "tetris"} {
		t.Run(id, func(t *testing.T) {
			rep, frames := play(t, id, 4242, 2500)

			g, err := registry.Create(id)
			if err != nil {
				t.Fatal(err)
			}
			res := Run(g, rep, frames)
			if !res.Match() {
				t.Errorf("hash %d, want %d", res.Hash, rep.FinalHash)
			}
			if res.State.Score != rep.Score {
				t.Errorf("score %d, want %d", res.State.Score, rep.Score)
			}
		})
	}
}

func TestRunDetectsTampering(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	rep, frames := play(t, "tetris", 1, 600)
	rep.Seed++

	g, _ := registry.Create("tetris")
	if Run(g, rep, frames).Match() {
		t.Error("different seed reproduced the same hash")
	}
}

func TestVerifyFromStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	rep, frames := play(t, "shooter", 77, 1200)
	id, err := store.SaveReplay(rep, frames)
	if err != nil {
		t.Fatal(err)
	}

	res, err := Verify(store, id)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if !res.Match() {
		t.Errorf("stored replay did not reproduce: %d vs %d", res.Hash, res.Replay.FinalHash)
	}

	if _, err := Verify(store, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g, err := registry.Create("breakout")
	if err != nil {
		t.Fatal(err)
	}
	runtime := core.DefaultConfig()
	runtime.Seed = 3
	g.Reset(runtime)
	rec := NewRecorder("breakout", runtime)

	if id, err := Save(store, rec, g); err != nil || id != "" {
		t.Errorf("empty recording: id %q err %v, want nothing stored", id, err)
	}

	for i := range 200 {
		in := inputAt(i)
		rec.Record(in)
		g.Step(in)
	}
	id, err := Save(store, rec, g)
	if err != nil || id == "" {
		t.Fatalf("Save() = %q, %v", id, err)
	}

	res, err := Verify(store, id)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Match() || res.Replay.Ticks != 200 {
		t.Errorf("saved replay %+v did not verify", res.Replay)
	}

	if id, err := Save(nil, rec, g); err != nil || id != "" {
		t.Errorf("nil store: id %q err %v", id, err)
	}
}
