package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the brick breaker.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	rng     core.Rand

	state     State
	paused    bool
	tickCount int

	// Colors resolved from config
	paddleColor core.Color
	ballColor   core.Color
	brickColor  core.Color
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{cfg: config.DefaultBreakoutConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = core.NewRand(runtime.Seed)
	g.paddleColor = core.ParseColor(cfg.Paddle.Color)
	g.ballColor = core.ParseColor(cfg.Ball.Color)
	g.brickColor = core.ParseColor(cfg.Bricks.Color)
	g.restart()
}

func (g *Game) restart() {
	g.state = NewState(g.cfg)
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.state.Terminal() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.Terminal() {
		g.paused = !g.paused
	}

	// Don't update if paused or game over
	if g.paused || g.state.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if x, ok := in.PointerX(); ok {
		g.state = MovePaddle(g.state, x)
	}
	g.state = Step(g.state, g.cfg.Ball.Jitter, g.rng)

	return core.StepResult{State: g.State()}
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() State {
	return g.state
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Terminal(),
		Won:      g.state.Won,
		Paused:   g.paused,
	}
}

// Playfield returns the logical drawing size.
func (g *Game) Playfield() core.Size {
	return core.Size{W: g.cfg.Field.Width, H: g.cfg.Field.Height}
}

// Draw paints bricks, paddle, ball and score.
func (g *Game) Draw(dst core.Canvas) {
	s := g.state

	for _, b := range s.Bricks {
		if b.Alive {
			dst.FillRect(b.Rect, g.brickColor)
		}
	}
	dst.FillRect(s.Paddle, g.paddleColor)
	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.R, g.ballColor)

	dst.Text(8, 8, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)

	mid := s.Field.H / 2
	switch {
	case s.Won:
		dst.TextCentered(mid, "YOU WIN!", core.ColorBrightGreen)
		dst.TextCentered(mid+40, "Press R to restart", core.ColorWhite)
	case s.Lost:
		dst.TextCentered(mid, "GAME OVER", core.ColorBrightRed)
		dst.TextCentered(mid+40, "Press R to restart", core.ColorWhite)
	case g.paused:
		dst.TextCentered(mid, "PAUSED", core.ColorBrightWhite)
	}
}

// Hash returns a hash of the session for determinism checks.
func (g *Game) Hash() uint64 {
	s := g.state
	h := uint64(g.tickCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.Ball.X)
	h = h*31 + math.Float64bits(s.Ball.Y)
	h = h*31 + math.Float64bits(s.Ball.VX)
	h = h*31 + math.Float64bits(s.Ball.VY)
	h = h*31 + math.Float64bits(s.Paddle.X)
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	for _, b := range s.Bricks {
		if b.Alive {
			h = h*31 + 1
		} else {
			h = h*31 + 2
		}
	}
	if s.Lost {
		h = h*31 + 3
	}
	if s.Won {
		h = h*31 + 5
	}
	return h
}

// Register the game on package load
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
