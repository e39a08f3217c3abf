package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.ResetWith(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}, config.DefaultShooterConfig())
	return g
}

func action(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func TestGamePointerSteersShip(t *testing.T) {
	g := newTestGame(1)
	f := core.NewInputFrame()
	f.SetPointer(25)
	g.Step(f)

	s := g.Snapshot()
	if s.Player.X != 0 {
		t.Errorf("ship x = %v, want 0", s.Player.X)
	}
	// The shot of this tick leaves from the moved ship.
	last := s.Bullets[len(s.Bullets)-1]
	if last.X != 22.5 {
		t.Errorf("bullet x = %v, want 22.5", last.X)
	}
}

func TestGameLossAndRestart(t *testing.T) {
	g := newTestGame(2)
	g.state.Enemies = []core.RectF{core.NewRectF(330, 530, 30, 30)}
	g.state.Player = core.NewRectF(300, 550, 50, 30)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}

	h := g.Hash()
	g.Step(core.NewInputFrame())
	if g.Hash() != h {
		t.Error("lost game kept simulating")
	}

	res = g.Step(action(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart did not clear game over")
	}
	if s := g.Snapshot(); len(s.Enemies) != 0 || len(s.Bullets) != 0 || s.Player.X != 375 {
		t.Errorf("restart left %+v", s)
	}
}

func TestGameRestartIgnoredDuringPlay(t *testing.T) {
	g := newTestGame(3)
	g.Step(core.NewInputFrame())
	g.Step(action(core.ActionRestart))
	if len(g.Snapshot().Bullets) != 2 {
		t.Error("restart honored during play")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(4)
	g.Step(action(core.ActionPause))
	h := g.Hash()
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	if g.Hash() != h {
		t.Error("paused game changed")
	}
	if res := g.Step(action(core.ActionPause)); res.State.Paused {
		t.Error("expected unpaused")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(777)
		for i := range 2000 {
			f := core.NewInputFrame()
			f.SetPointer(float64((i * 13) % 800))
			g.Step(f)
		}
		return g.Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("determinism failed: %d != %d", a, b)
	}
}

func TestGameDraw(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	core.Paint(screen, g)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("score missing")
	}
	if !strings.ContainsRune(out, core.FillGlyph) {
		t.Error("ship missing")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("shooter")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Galaxy Shooter" {
		t.Errorf("Title() = %q", g.Title())
	}
}
