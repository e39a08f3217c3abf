package shooter

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

// Game implements the vertical shooter.
type Game struct {
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	rng     core.Rand

	state     State
	paused    bool
	tickCount int

	playerColor core.Color
	enemyColor  core.Color
	bulletColor core.Color
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{cfg: config.DefaultShooterConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galaxy Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a session with an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ShooterConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = core.NewRand(runtime.Seed)
	g.playerColor = core.ParseColor(cfg.Player.Color)
	g.enemyColor = core.ParseColor(cfg.Enemy.Color)
	g.bulletColor = core.ParseColor(cfg.Bullet.Color)
	g.restart()
}

func (g *Game) restart() {
	g.state = NewState(g.cfg)
	g.paused = false
	g.tickCount = 0
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

	if x, ok := in.PointerX(); ok {
		g.state = MovePlayer(g.state, x)
	}
	g.state = Step(g.state, g.cfg, g.rng)

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
		GameOver: g.state.Lost,
		Paused:   g.paused,
	}
}

// Playfield returns the logical drawing size.
func (g *Game) Playfield() core.Size {
	return core.Size{W: g.cfg.Field.Width, H: g.cfg.Field.Height}
}

// Draw paints the ship, bullets, enemies and score.
func (g *Game) Draw(dst core.Canvas) {
	s := g.state

	dst.FillRect(s.Player, g.playerColor)
	for _, b := range s.Bullets {
		dst.FillRect(b, g.bulletColor)
	}
	for _, e := range s.Enemies {
		dst.FillRect(e, g.enemyColor)
	}

	dst.Text(8, 8, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)

	mid := s.Field.H / 2
	switch {
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
	h = h*31 + math.Float64bits(s.Player.X)
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(s.Bullets))
	for _, b := range s.Bullets {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}
	h = h*31 + uint64(len(s.Enemies))
	for _, e := range s.Enemies {
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
	}
	if s.Lost {
		h = h*31 + 1
	}
	return h
}

// Register the game on package load
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
