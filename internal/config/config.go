// Package config provides YAML/TOML-based game configuration loading
// for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// FieldConfig is the logical size of a game's drawing surface.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Field  FieldConfig    `yaml:"field" toml:"field"`
	Paddle BreakoutPaddle `yaml:"paddle" toml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball" toml:"ball"`
	Bricks BreakoutBricks `yaml:"bricks" toml:"bricks"`
}

// BreakoutPaddle defines the paddle geometry.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"` // Gap between paddle and bottom edge
	Color        string  `yaml:"color" toml:"color"`
}

// BreakoutBall defines the ball's start state.
type BreakoutBall struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	StartX float64 `yaml:"start_x" toml:"start_x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	SpeedX float64 `yaml:"speed_x" toml:"speed_x"` // Units per tick
	SpeedY float64 `yaml:"speed_y" toml:"speed_y"` // Units per tick, negative is up
	Jitter float64 `yaml:"jitter" toml:"jitter"`   // Max horizontal perturbation on paddle hit
	Color  string  `yaml:"color" toml:"color"`
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Rows      int     `yaml:"rows" toml:"rows"`
	Columns   int     `yaml:"columns" toml:"columns"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Padding   float64 `yaml:"padding" toml:"padding"`
	TopOffset float64 `yaml:"top_offset" toml:"top_offset"`
	Points    int     `yaml:"points" toml:"points"`
	Color     string  `yaml:"color" toml:"color"`
}

// ShooterConfig contains all configuration for the Galaxy Shooter game.
type ShooterConfig struct {
	Field  FieldConfig   `yaml:"field" toml:"field"`
	Player ShooterPlayer `yaml:"player" toml:"player"`
	Enemy  ShooterEnemy  `yaml:"enemy" toml:"enemy"`
	Bullet ShooterBullet `yaml:"bullet" toml:"bullet"`
}

// ShooterPlayer defines the ship geometry.
type ShooterPlayer struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the ship's top to the bottom edge
	Color        string  `yaml:"color" toml:"color"`
}

// ShooterEnemy defines enemy geometry and spawning.
type ShooterEnemy struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Speed       float64 `yaml:"speed" toml:"speed"`               // Units per tick, downward
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Per-tick probability
	Points      int     `yaml:"points" toml:"points"`
	Color       string  `yaml:"color" toml:"color"`
}

// ShooterBullet defines bullet geometry.
type ShooterBullet struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Units per tick, upward
	Color  string  `yaml:"color" toml:"color"`
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard `yaml:"board" toml:"board"`
	GravityMs  int         `yaml:"gravity_ms" toml:"gravity_ms"`   // Interval between gravity steps
	LinePoints int         `yaml:"line_points" toml:"line_points"` // Points per cleared row
}

// TetrisBoard defines the grid.
type TetrisBoard struct {
	Width    int     `yaml:"width" toml:"width"`
	Height   int     `yaml:"height" toml:"height"`
	CellSize float64 `yaml:"cell_size" toml:"cell_size"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (f FieldConfig) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return invalid("field must have positive size, got %vx%v", f.Width, f.Height)
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c BreakoutConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Width > c.Field.Width {
		return invalid("paddle %vx%v does not fit the field", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.Radius <= 0 {
		return invalid("ball radius must be positive")
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0 {
		return invalid("brick grid must have rows and columns")
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		return invalid("bricks must have positive size")
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c ShooterConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width {
		return invalid("player %vx%v does not fit the field", c.Player.Width, c.Player.Height)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 || c.Enemy.Width > c.Field.Width {
		return invalid("enemy %vx%v does not fit the field", c.Enemy.Width, c.Enemy.Height)
	}
	if c.Enemy.SpawnChance < 0 || c.Enemy.SpawnChance > 1 {
		return invalid("enemy spawn_chance %v outside [0,1]", c.Enemy.SpawnChance)
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		return invalid("bullets must have positive size")
	}
	return nil
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	// The widest catalog shape is four cells, the tallest is two.
	if c.Board.Width < 4 || c.Board.Height < 2 {
		return invalid("board %dx%d too small for the piece catalog", c.Board.Width, c.Board.Height)
	}
	if c.Board.CellSize <= 0 {
		return invalid("cell_size must be positive")
	}
	if c.GravityMs <= 0 {
		return invalid("gravity_ms must be positive")
	}
	return nil
}
