package tetris

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Shape is a piece occupancy matrix; non-zero entries are occupied.
type Shape [][]int

// Width returns the number of columns in the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse
// each row. The receiver is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := range w {
		row := make([]int, h)
		for y := range h {
			row[y] = s[y][x]
		}
		for i, j := 0, h-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
		out[x] = row
	}
	return out
}

// cells calls fn for every occupied cell offset.
func (s Shape) cells(fn func(dx, dy int)) {
	for dy, row := range s {
		for dx, v := range row {
			if v != 0 {
				fn(dx, dy)
			}
		}
	}
}

// Kind indexes the piece catalog.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// catalog holds spawn orientations. Order matters: random spawns index it.
var catalog = [...]Shape{
	KindI: {{1, 1, 1, 1}},
	KindO: {{1, 1}, {1, 1}},
	KindT: {{0, 1, 0}, {1, 1, 1}},
	KindL: {{1, 1, 1}, {1, 0, 0}},
	KindJ: {{1, 1, 1}, {0, 0, 1}},
	KindS: {{1, 1, 0}, {0, 1, 1}},
	KindZ: {{0, 1, 1}, {1, 1, 0}},
}

var kindColors = [...]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorPurple,
	KindL: core.ColorBlue,
	KindJ: core.ColorOrange,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
}

// KindCount is the number of catalog entries.
const KindCount = len(catalog)

// ShapeOf returns a fresh copy of the spawn orientation for k.
func ShapeOf(k Kind) Shape {
	src := catalog[k]
	out := make(Shape, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Color returns the display color for k.
func (k Kind) Color() core.Color {
	if k < 0 || int(k) >= KindCount {
		return core.ColorGray
	}
	return kindColors[k]
}

// String returns the catalog letter.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return string("IOTLJSZ"[k])
}
