package window

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/tetris"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

var _ core.Canvas = (*Canvas)(nil)

func TestReadKeys(t *testing.T) {
	tests := []struct {
		keys []ebiten.Key
		want []core.Action
	}{
		{[]ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{[]ebiten.Key{ebiten.KeyD, ebiten.KeySpace}, []core.Action{core.ActionRight, core.ActionDrop}},
		{[]ebiten.Key{ebiten.KeyW}, []core.Action{core.ActionRotate}},
		{[]ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}},
		{[]ebiten.Key{ebiten.KeyR, ebiten.KeyQ}, []core.Action{core.ActionRestart, core.ActionQuit}},
		{[]ebiten.Key{ebiten.KeyZ}, nil},
	}

	for _, tt := range tests {
		down := map[ebiten.Key]bool{}
		for _, k := range tt.keys {
			down[k] = true
		}
		f := core.NewInputFrame()
		readKeys(func(k ebiten.Key) bool { return down[k] }, &f)

		want := core.NewInputFrame()
		for _, a := range tt.want {
			want.Set(a)
		}
		if f.Mask() != want.Mask() {
			t.Errorf("keys %v: mask %b, want %b", tt.keys, f.Mask(), want.Mask())
		}
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatal(err)
	}
	w := New(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, false)
	if gw, gh := w.Layout(1920, 1080); gw != 450 || gh != 600 {
		t.Errorf("Layout() = %dx%d, want 450x600", gw, gh)
	}
}

func TestStepRecordsAndClears(t *testing.T) {
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatal(err)
	}
	w := New(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, true)

	w.frame.Set(core.ActionPause)
	if res := w.step(); !res.State.Paused {
		t.Error("pause not applied")
	}
	if w.frame.Mask() != 0 {
		t.Error("frame not cleared")
	}
	w.step()
	if w.recorder.Ticks() != 2 {
		t.Errorf("recorded ticks = %d, want 2", w.recorder.Ticks())
	}
}

func TestTrackCursor(t *testing.T) {
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatal(err)
	}
	w := New(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, false)

	steps := []struct {
		x, y    int
		want    float64
		pointer bool
	}{
		{0, 0, 0, false},      // first sample is a baseline
		{0, 0, 0, false},      // unchanged
		{120, 300, 120, true}, // moved inside the field
		{120, 300, 0, false},  // still
		{500, 300, 0, false},  // right of the 450-wide field
		{-3, 10, 0, false},    // left of it
		{449, 599, 449, true},
	}
	for i, st := range steps {
		w.trackCursor(st.x, st.y)
		x, ok := w.frame.PointerX()
		if ok != st.pointer || (ok && x != st.want) {
			t.Errorf("step %d (%d,%d): pointer = %v,%v want %v,%v", i, st.x, st.y, x, ok, st.want, st.pointer)
		}
		w.frame.Clear()
	}
}

func TestCenteredX(t *testing.T) {
	if got := centeredX(800, "GAME OVER"); got != (800-9*glyphW)/2 {
		t.Errorf("centeredX = %d", got)
	}
}

func TestRGBA(t *testing.T) {
	if got := rgba(core.ColorOrange); got != (color.RGBA{R: 0xFF, G: 0x7F, B: 0x00, A: 0xFF}) {
		t.Errorf("rgba(orange) = %v", got)
	}
}
