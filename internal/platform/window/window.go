// Package window runs a game in a desktop window through Ebiten. The logical
// playfield is used as the Ebiten layout, so game units are window pixels.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/replay"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Options controls recording and logging for a window session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Record bool
	Scale  float64 // Window size relative to the playfield, 1 when zero
}

// binding maps one key to one action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyW, core.ActionRotate},
	{ebiten.KeySpace, core.ActionDrop},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// readKeys sets the action of every key reported by pressed.
func readKeys(pressed func(ebiten.Key) bool, frame *core.InputFrame) {
	for _, b := range bindings {
		if pressed(b.key) {
			frame.Set(b.action)
		}
	}
}

// errQuit ends RunGame without being reported as a failure.
var errQuit = ebiten.Termination

// Window adapts a registry.Game to ebiten.Game. Ebiten calls Update at the
// tick rate and Draw once per rendered frame.
type Window struct {
	game      registry.Game
	recorder  *replay.Recorder
	frame     core.InputFrame
	cursorX   int
	cursorY   int
	hasCursor bool // cursorX/Y hold a first sample
}

// New resets game with cfg and wraps it.
func New(game registry.Game, cfg core.RuntimeConfig, record bool) *Window {
	game.Reset(cfg)
	w := &Window{
		game:  game,
		frame: core.NewInputFrame(),
	}
	if record {
		w.recorder = replay.NewRecorder(game.ID(), cfg)
	}
	return w
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	readKeys(inpututil.IsKeyJustPressed, &w.frame)
	if w.frame.Has(core.ActionQuit) {
		return errQuit
	}

	w.trackCursor(ebiten.CursorPosition())
	w.step()
	return nil
}

// trackCursor steers with the cursor once it moves inside the playfield.
// The first sample is only a baseline: before the mouse enters the window
// Ebiten reports (0, 0), which must not pull the paddle to the left edge.
func (w *Window) trackCursor(x, y int) {
	if !w.hasCursor {
		w.cursorX, w.cursorY, w.hasCursor = x, y, true
		return
	}
	if x == w.cursorX && y == w.cursorY {
		return
	}
	w.cursorX, w.cursorY = x, y

	fw, fh := layoutSize(w.game.Playfield())
	if x < 0 || y < 0 || x >= fw || y >= fh {
		return
	}
	w.frame.SetPointer(float64(x))
}

// step feeds the pending frame to the game and clears it.
func (w *Window) step() core.StepResult {
	if w.recorder != nil {
		w.recorder.Record(w.frame)
	}
	res := w.game.Step(w.frame)
	w.frame.Clear()
	return res
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.game.Draw(NewCanvas(screen, w.game.Playfield()))
}

// Layout implements ebiten.Game. The screen is always the playfield.
func (w *Window) Layout(_, _ int) (int, int) {
	return layoutSize(w.game.Playfield())
}

func layoutSize(field core.Size) (int, int) {
	return int(field.W), int(field.H)
}

// Run opens a window, plays game until it is closed or Q is pressed and
// returns the ID of the stored recording, if one was made.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (string, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	w := New(game, cfg, opts.Record)
	fw, fh := layoutSize(game.Playfield())
	ebiten.SetWindowSize(int(float64(fw)*scale), int(float64(fh)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errQuit) {
		return "", err
	}

	id, err := replay.Save(opts.Store, w.recorder, game)
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("could not save replay", "game", game.ID(), "error", err)
	}
	return id, nil
}
