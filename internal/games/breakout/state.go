package breakout

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// State is one brick breaker session. Step and MovePaddle return new values
// and never modify their input.
type State struct {
	Field  core.Size
	Ball   Ball
	Paddle core.RectF
	Bricks Wall
	Score  int
	Lost   bool
	Won    bool
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s.Lost || s.Won
}

// NewState builds the opening layout from cfg.
func NewState(cfg config.BreakoutConfig) State {
	field := core.Size{W: cfg.Field.Width, H: cfg.Field.Height}
	return State{
		Field: field,
		Ball: Ball{
			X:  cfg.Ball.StartX,
			Y:  cfg.Ball.StartY,
			VX: cfg.Ball.SpeedX,
			VY: cfg.Ball.SpeedY,
			R:  cfg.Ball.Radius,
		},
		Paddle: core.NewRectF(
			(field.W-cfg.Paddle.Width)/2,
			field.H-cfg.Paddle.BottomMargin-cfg.Paddle.Height,
			cfg.Paddle.Width,
			cfg.Paddle.Height,
		),
		Bricks: NewWall(cfg.Bricks),
	}
}

// MovePaddle centers the paddle on pointer x, keeping it fully on the field.
func MovePaddle(s State, pointerX float64) State {
	if s.Terminal() {
		return s
	}
	s.Paddle.X = core.ClampF(pointerX-s.Paddle.W/2, 0, s.Field.W-s.Paddle.W)
	return s
}

// Step advances the ball by one tick. In order: move, reflect off the side
// and top walls, bounce off the paddle, check for a miss at the bottom,
// break at most one brick, then check for a cleared wall.
func Step(prev State, jitter float64, rng core.Rand) State {
	if prev.Terminal() {
		return prev
	}
	s := prev

	s.Ball = s.Ball.integrate().reflectWalls(s.Field)

	if s.Ball.onPaddle(s.Paddle) {
		s.Ball = s.Ball.bounceOffPaddle(s.Paddle, jitter, rng)
	}

	if s.Ball.Y+s.Ball.R > s.Field.H {
		s.Lost = true
		return s
	}

	if i := s.Bricks.firstHit(s.Ball.Bounds()); i >= 0 {
		s.Ball = s.Ball.bounceOffBrick(s.Bricks[i].Rect)
		s.Bricks = s.Bricks.Clone()
		s.Bricks[i].Alive = false
		s.Score += s.Bricks[i].Points
	}

	if s.Bricks.CountAlive() == 0 {
		s.Won = true
	}
	return s
}
