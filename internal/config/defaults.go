package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       10,
			BottomMargin: 10,
			Color:        "bright_blue",
		},
		Ball: BreakoutBall{
			Radius: 8,
			StartX: 400,
			StartY: 570,
			SpeedX: 4,
			SpeedY: -4,
			Jitter: 1,
			Color:  "bright_blue",
		},
		Bricks: BreakoutBricks{
			Rows:      5,
			Columns:   8,
			Width:     80,
			Height:    20,
			Padding:   10,
			TopOffset: 30,
			Points:    1,
			Color:     "bright_blue",
		},
	}
}

// DefaultShooterConfig returns the default Galaxy Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: ShooterPlayer{
			Width:        50,
			Height:       30,
			BottomOffset: 50,
			Color:        "bright_green",
		},
		Enemy: ShooterEnemy{
			Width:       30,
			Height:      30,
			Speed:       2,
			SpawnChance: 0.02,
			Points:      10,
			Color:       "red",
		},
		Bullet: ShooterBullet{
			Width:  5,
			Height: 10,
			Speed:  7,
			Color:  "yellow",
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:    10,
			Height:   20,
			CellSize: 30,
		},
		GravityMs:  1000,
		LinePoints: 100,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "shooter":
		return defaultShooterYAML
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
