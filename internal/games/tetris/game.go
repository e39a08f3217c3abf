package tetris

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

// sidePanel is the logical width of the score column right of the board.
const sidePanel = 150

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the falling-block puzzle.
type Game struct {
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	rng     core.Rand

	state  State
	paused bool

	tickCount    int
	gravityTicks int // Ticks since the last gravity step
	gravityEvery int // Ticks per gravity step
}

// New creates a new puzzle game instance.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.TetrisConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = core.NewRand(runtime.Seed)
	g.gravityEvery = gravityTicks(runtime.TickRate, cfg.GravityMs)
	g.restart()
}

// restart clears the session but keeps drawing from the same random stream,
// so a recorded run that restarts still replays exactly.
func (g *Game) restart() {
	g.state = NewState(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.LinePoints, g.rng)
	g.paused = false
	g.tickCount = 0
	g.gravityTicks = 0
}

// gravityTicks converts the gravity interval to frame ticks, at least one.
func gravityTicks(tickRate, ms int) int {
	n := tickRate * ms / 1000
	if n < 1 {
		return 1
	}
	return n
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state.Lost {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Lost {
		g.paused = !g.paused
	}
	if g.paused || g.state.Lost {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.state = g.applyInput(g.state, in)

	g.gravityTicks++
	if g.gravityTicks >= g.gravityEvery {
		g.gravityTicks = 0
		g.state = g.state.Descend(g.rng)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyInput(s State, in core.InputFrame) State {
	if in.Has(core.ActionLeft) {
		s = s.Move(-1, 0)
	}
	if in.Has(core.ActionRight) {
		s = s.Move(1, 0)
	}
	if in.Has(core.ActionRotate) {
		s = s.Rotate()
	}
	if in.Has(core.ActionDown) {
		s = s.Move(0, 1)
	}
	if in.Has(core.ActionDrop) {
		s = s.HardDrop(g.rng)
		g.gravityTicks = 0
	}
	return s
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() State {
	return g.state
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Lost,
		Paused:   g.paused,
	}
}

// Playfield returns the logical drawing size: the board plus the side panel.
func (g *Game) Playfield() core.Size {
	cell := g.cfg.Board.CellSize
	return core.Size{
		W: float64(g.cfg.Board.Width)*cell + sidePanel,
		H: float64(g.cfg.Board.Height) * cell,
	}
}

// Draw paints the board, the ghost, the active piece and the side panel.
func (g *Game) Draw(dst core.Canvas) {
	cell := g.cfg.Board.CellSize
	s := g.state
	boardW := float64(s.Board.W) * cell

	for y, row := range s.Board.Cells {
		for x, v := range row {
			if v != 0 {
				dst.FillRect(cellRect(x, y, cell), Kind(v-1).Color())
			}
		}
	}

	if !s.Lost {
		ghost := s.Ghost()
		if ghost != s.Piece.Anchor {
			s.Piece.Shape.cells(func(dx, dy int) {
				dst.FillRect(cellRect(ghost.X+dx, ghost.Y+dy, cell), core.ColorGray)
			})
		}
		s.Piece.Shape.cells(func(dx, dy int) {
			if s.Piece.Anchor.Y+dy >= 0 {
				dst.FillRect(cellRect(s.Piece.Anchor.X+dx, s.Piece.Anchor.Y+dy, cell), s.Piece.Kind.Color())
			}
		})
	}

	// Divider between board and panel
	dst.FillRect(core.NewRectF(boardW, 0, 2, float64(s.Board.H)*cell), core.ColorGray)

	panelX := boardW + 15
	dst.Text(panelX, 20, "SCORE", core.ColorWhite)
	dst.Text(panelX, 50, fmt.Sprintf("%d", s.Score), core.ColorBrightYellow)
	dst.Text(panelX, 100, "LINES", core.ColorWhite)
	dst.Text(panelX, 130, fmt.Sprintf("%d", s.Lines), core.ColorBrightYellow)

	h := float64(s.Board.H) * cell
	switch {
	case s.Lost:
		dst.TextCentered(h/2-20, "GAME OVER", core.ColorBrightRed)
		dst.TextCentered(h/2+20, "Press R to restart", core.ColorWhite)
	case g.paused:
		dst.TextCentered(h/2, "PAUSED", core.ColorBrightWhite)
	}
}

func cellRect(x, y int, cell float64) core.RectF {
	return core.NewRectF(float64(x)*cell, float64(y)*cell, cell, cell)
}

// Hash returns a hash of the session for determinism checks.
func (g *Game) Hash() uint64 {
	s := g.state
	h := uint64(g.tickCount)               //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lines)             //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Pieces)            //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Piece.Kind)        //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Piece.Anchor.X+64) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Piece.Anchor.Y+64) //#nosec G115 -- hash computation
	s.Piece.Shape.cells(func(dx, dy int) {
		h = h*31 + uint64(dy*8+dx) //#nosec G115 -- hash computation
	})
	for _, row := range s.Board.Cells {
		for _, v := range row {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	if s.Lost {
		h = h*31 + 1
	}
	return h
}

// Register the game on package load
func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}
