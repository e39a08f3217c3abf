// Package breakout implements a brick breaker: one ball, one paddle and a
// wall of single-hit bricks.
package breakout

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Brick is a single brick in the wall.
type Brick struct {
	Rect   core.RectF
	Points int  // Points awarded when destroyed
	Alive  bool // Whether brick is still present
}

// Wall is the brick layout in column-major order: all rows of column 0,
// then column 1, and so on. Collision scans follow this order.
type Wall []Brick

// NewWall lays out rows×columns bricks. Brick (r, c) sits at
// x = c·(w+padding) + padding, y = r·(h+padding) + topOffset + padding.
func NewWall(cfg config.BreakoutBricks) Wall {
	wall := make(Wall, 0, cfg.Rows*cfg.Columns)
	for c := range cfg.Columns {
		for r := range cfg.Rows {
			wall = append(wall, Brick{
				Rect: core.NewRectF(
					float64(c)*(cfg.Width+cfg.Padding)+cfg.Padding,
					float64(r)*(cfg.Height+cfg.Padding)+cfg.TopOffset+cfg.Padding,
					cfg.Width,
					cfg.Height,
				),
				Points: cfg.Points,
				Alive:  true,
			})
		}
	}
	return wall
}

// Clone creates a copy of the wall.
func (w Wall) Clone() Wall {
	return append(Wall(nil), w...)
}

// CountAlive returns the number of remaining bricks.
func (w Wall) CountAlive() int {
	count := 0
	for _, b := range w {
		if b.Alive {
			count++
		}
	}
	return count
}

// firstHit returns the index of the first alive brick overlapping r, or -1.
func (w Wall) firstHit(r core.RectF) int {
	for i, b := range w {
		if b.Alive && b.Rect.Intersects(r) {
			return i
		}
	}
	return -1
}
