package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(Replay{GameID: "tetris", TickRate: 60, Outcome: OutcomeQuit}, nil)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if _, _, err := store.LoadReplay(id); err != nil {
		t.Errorf("LoadReplay() after reopen: %v", err)
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	in := Replay{
		GameID:    "breakout",
		Seed:      -42,
		TickRate:  60,
		Ticks:     900,
		Score:     17,
		Outcome:   OutcomeLost,
		FinalHash: math.MaxUint64 - 5, // exercises the sign bit
	}
	frames := []Frame{
		{Tick: 1, Pointer: 120.5, HasPointer: true},
		{Tick: 30, Mask: 1 << 10},
		{Tick: 31, Mask: 1<<1 | 1<<4, Pointer: 799, HasPointer: true},
	}

	id, err := store.SaveReplay(in, frames)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveReplay() returned an empty ID")
	}

	got, gotFrames, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}

	if got.ID != id || got.GameID != in.GameID || got.Seed != in.Seed || got.TickRate != in.TickRate ||
		got.Ticks != in.Ticks || got.Score != in.Score || got.Outcome != in.Outcome || got.FinalHash != in.FinalHash {
		t.Errorf("LoadReplay() = %+v, want %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if len(gotFrames) != len(frames) {
		t.Fatalf("frames = %d, want %d", len(gotFrames), len(frames))
	}
	for i := range frames {
		if gotFrames[i] != frames[i] {
			t.Errorf("frame %d = %+v, want %+v", i, gotFrames[i], frames[i])
		}
	}
}

func TestStoreSaveReplayKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{ID: "fixed-id", GameID: "shooter", Outcome: OutcomeQuit}, nil)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, want fixed-id", id)
	}

	if _, err := store.SaveReplay(Replay{ID: "fixed-id", GameID: "shooter", Outcome: OutcomeQuit}, nil); err == nil {
		t.Error("duplicate ID accepted")
	}
}

func TestStoreSaveReplayRollsBack(t *testing.T) {
	store := openTestStore(t)

	// Duplicate ticks violate the frame primary key.
	frames := []Frame{{Tick: 5}, {Tick: 5}}
	if _, err := store.SaveReplay(Replay{ID: "broken", GameID: "tetris", Outcome: OutcomeQuit}, frames); err == nil {
		t.Fatal("expected an error for duplicate frame ticks")
	}

	if _, _, err := store.LoadReplay("broken"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadReplay() err = %v, want ErrNotFound", err)
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTestStore(t)

	for i, game := range []string{"tetris", "breakout", "tetris", "shooter", "tetris"} {
		if _, err := store.SaveReplay(Replay{GameID: game, Score: i, Outcome: OutcomeLost}, nil); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	all, err := store.ListReplays("", 0)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("all = %d, want 5", len(all))
	}
	// Newest first.
	if all[0].Score != 4 {
		t.Errorf("first score = %d, want 4", all[0].Score)
	}

	tetris, err := store.ListReplays("tetris", 0)
	if err != nil {
		t.Fatalf("ListReplays(tetris) failed: %v", err)
	}
	if len(tetris) != 3 {
		t.Errorf("tetris = %d, want 3", len(tetris))
	}
	for _, r := range tetris {
		if r.GameID != "tetris" {
			t.Errorf("unexpected game %q", r.GameID)
		}
	}

	limited, err := store.ListReplays("", 2)
	if err != nil {
		t.Fatalf("ListReplays(limit) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d, want 2", len(limited))
	}

	none, err := store.ListReplays("pong", 0)
	if err != nil {
		t.Fatalf("ListReplays(pong) failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("pong = %d, want 0", len(none))
	}
}

func TestStoreLoadReplayNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, _, err := store.LoadReplay("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{GameID: "tetris", Outcome: OutcomeLost}, []Frame{{Tick: 1, Mask: 2}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, _, err := store.LoadReplay(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("replay still present: %v", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/replays.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "replays.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
