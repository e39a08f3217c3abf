package tetris

// Board is a fixed H×W grid of cell tags. Zero is empty; a placed cell holds
// its piece kind plus one.
//
// Boards are treated as values: Merge and ClearLines return new boards and
// never write to the receiver's rows.
type Board struct {
	W, H  int
	Cells [][]int // Cells[y][x]
}

// Point is a grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// NewBoard returns an empty board.
func NewBoard(w, h int) Board {
	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
	}
	return Board{W: w, H: h, Cells: cells}
}

// At returns the tag at (x, y), or -1 outside the grid.
func (b Board) At(x, y int) int {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return -1
	}
	return b.Cells[y][x]
}

// Fits reports whether shape anchored at p stays inside the grid horizontally
// and at the bottom, and covers no occupied cell. Cells above the top edge
// are allowed.
func (b Board) Fits(shape Shape, p Point) bool {
	ok := true
	shape.cells(func(dx, dy int) {
		if !ok {
			return
		}
		x, y := p.X+dx, p.Y+dy
		if x < 0 || x >= b.W || y >= b.H {
			ok = false
			return
		}
		if y >= 0 && b.Cells[y][x] != 0 {
			ok = false
		}
	})
	return ok
}

// Merge returns a copy of b with the piece written in as Kind+1.
// Cells above the top edge are dropped.
func (b Board) Merge(p Piece) Board {
	out := b.clone()
	p.Shape.cells(func(dx, dy int) {
		x, y := p.Anchor.X+dx, p.Anchor.Y+dy
		if x >= 0 && x < out.W && y >= 0 && y < out.H {
			out.Cells[y][x] = int(p.Kind) + 1
		}
	})
	return out
}

// ClearLines removes every full row, keeping the order of the rest, and
// pads the top with empty rows. It returns the new board and the number of
// rows removed.
func (b Board) ClearLines() (Board, int) {
	kept := make([][]int, 0, b.H)
	for _, row := range b.Cells {
		if !full(row) {
			kept = append(kept, append([]int(nil), row...))
		}
	}
	cleared := b.H - len(kept)

	cells := make([][]int, 0, b.H)
	for range cleared {
		cells = append(cells, make([]int, b.W))
	}
	cells = append(cells, kept...)
	return Board{W: b.W, H: b.H, Cells: cells}, cleared
}

// Filled counts occupied cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b.Cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func (b Board) clone() Board {
	cells := make([][]int, b.H)
	for y, row := range b.Cells {
		cells[y] = append([]int(nil), row...)
	}
	return Board{W: b.W, H: b.H, Cells: cells}
}

func full(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}
