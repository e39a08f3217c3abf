// Package term runs a game directly on the terminal through tcell, without
// Bubble Tea. Events are read on their own goroutine and applied by a
// single loop goroutine that also owns the simulation ticker.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/replay"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Options controls recording and logging for a terminal session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Record bool
}

// Runner drives one game on a tcell screen.
type Runner struct {
	screen   tcell.Screen
	game     registry.Game
	buf      *core.Screen
	view     core.Viewport
	frame    core.InputFrame
	recorder *replay.Recorder
	opts     Options
	quit     bool
}

// NewRunner resets game with cfg and prepares it for screen, which must
// already be initialized.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	w, h := screen.Size()
	cfg.ScreenW, cfg.ScreenH = w, h
	game.Reset(cfg)

	r := &Runner{
		screen: screen,
		game:   game,
		buf:    core.NewScreen(w, h),
		frame:  core.NewInputFrame(),
		opts:   opts,
	}
	r.view, _ = core.Layout(w, h, game.Playfield())
	if opts.Record {
		r.recorder = replay.NewRecorder(game.ID(), cfg)
	}
	return r
}

// HandleEvent folds one tcell event into the pending input frame.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := mapKey(ev)
		if a == core.ActionQuit {
			r.quit = true
			return
		}
		if a != core.ActionNone {
			r.frame.Set(a)
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		if r.view.Cols > 0 {
			r.frame.SetPointer(r.view.LogicalX(x))
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		r.buf.Resize(w, h)
		r.view, _ = core.Layout(w, h, r.game.Playfield())
		r.screen.Sync()
	}
}

// Tick steps the game once with the pending input and clears it.
func (r *Runner) Tick() core.StepResult {
	if r.recorder != nil {
		r.recorder.Record(r.frame)
	}
	res := r.game.Step(r.frame)
	r.frame.Clear()
	return res
}

// Draw paints the game and copies the cells onto the tcell screen.
func (r *Runner) Draw() {
	core.Paint(r.buf, r.game)
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	r.screen.Show()
}

// Quit reports whether the player asked to leave.
func (r *Runner) Quit() bool {
	return r.quit
}

// Finish stores the recording, if any, and returns its ID.
func (r *Runner) Finish() (string, error) {
	return replay.Save(r.opts.Store, r.recorder, r.game)
}

// Loop runs the game at tickRate until the player quits or ctx ends.
func (r *Runner) Loop(ctx context.Context, tickRate int) {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(tickRate, 1)))
	defer ticker.Stop()

	r.Draw()
	for !r.quit {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			r.HandleEvent(ev)
		case <-ticker.C:
			r.Tick()
			r.Draw()
		}
	}
}

// Run opens the terminal, plays game until quit and restores the terminal.
// It returns the ID of the stored recording, if one was made. A failed
// save is logged, not returned.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) (string, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", err
	}
	if err := screen.Init(); err != nil {
		return "", err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	r := NewRunner(screen, game, cfg, opts)
	r.Loop(ctx, cfg.TickRate)
	screen.Fini()

	id, err := r.Finish()
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("could not save replay", "game", game.ID(), "error", err)
	}
	return id, nil
}
