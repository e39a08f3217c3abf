package breakout

import (
	"math"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Ball is the ball: center, velocity per tick and radius.
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.RectF {
	return core.NewRectF(b.X-b.R, b.Y-b.R, 2*b.R, 2*b.R)
}

// integrate moves the ball by one tick of velocity.
func (b Ball) integrate() Ball {
	b.X += b.VX
	b.Y += b.VY
	return b
}

// reflectWalls clamps the ball inside the left, right and top edges and
// points its velocity away from any edge it crossed.
func (b Ball) reflectWalls(field core.Size) Ball {
	if b.X-b.R < 0 {
		b.X = b.R
		b.VX = math.Abs(b.VX)
	} else if b.X+b.R > field.W {
		b.X = field.W - b.R
		b.VX = -math.Abs(b.VX)
	}
	if b.Y-b.R < 0 {
		b.Y = b.R
		b.VY = math.Abs(b.VY)
	}
	return b
}

// onPaddle reports whether the ball's lowest point is strictly inside the
// paddle's vertical band and its center strictly inside the paddle's span.
func (b Ball) onPaddle(p core.RectF) bool {
	bottom := b.Y + b.R
	return bottom > p.Y && bottom < p.Bottom() && b.X > p.X && b.X < p.Right()
}

// bounceOffPaddle sends the ball up from the paddle's top, perturbing the
// horizontal velocity by up to ±jitter.
func (b Ball) bounceOffPaddle(p core.RectF, jitter float64, rng core.Rand) Ball {
	b.VY = -math.Abs(b.VY)
	b.Y = p.Y - b.R
	b.VX += (rng.Float64() - 0.5) * 2 * jitter
	return b
}

// bounceOffBrick reflects the ball along the axis of least penetration.
func (b Ball) bounceOffBrick(brick core.RectF) Ball {
	box := b.Bounds()
	fromLeft := box.Right() - brick.X
	fromRight := brick.Right() - box.X
	fromTop := box.Bottom() - brick.Y
	fromBottom := brick.Bottom() - box.Y

	side := math.Min(fromLeft, fromRight)
	if side < math.Min(fromTop, fromBottom) {
		b.VX = -b.VX
	} else {
		b.VY = -b.VY
	}
	return b
}
