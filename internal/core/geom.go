// Package core holds the pieces every game and front end share: logical
// geometry, the input frame, the cell buffer and the drawing surface that
// maps the playfield onto it. It imports no UI toolkit.
package core

// Rect is a box of terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is one past the last column.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is one past the last row.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a box in playfield units. Games simulate in these units and
// front ends scale them to whatever surface they draw on.
type RectF struct {
	X, Y float64
	W, H float64
}

func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

func (r RectF) Right() float64  { return r.X + r.W }
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect.
func (r RectF) Intersects(o RectF) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Size is the extent of a playfield in logical units.
type Size struct {
	W, H float64
}

// ClampF pins v into [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
