package tetris

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Piece is the active falling piece.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Anchor Point // Top-left of Shape on the board
}

// Spawn places a fresh piece of kind k centered at the top of a board w wide.
func Spawn(k Kind, w int) Piece {
	shape := ShapeOf(k)
	return Piece{
		Kind:   k,
		Shape:  shape,
		Anchor: Point{X: w/2 - shape.Width()/2, Y: 0},
	}
}

// State is one puzzle session. Every transition returns a new State; the
// receiver is never modified.
type State struct {
	Board      Board
	Piece      Piece
	Score      int
	Lines      int // Total rows cleared
	Pieces     int // Pieces spawned, including the current one
	Lost       bool
	LinePoints int // Points per cleared row
}

// NewState returns an empty board of w×h with a random first piece.
func NewState(w, h, linePoints int, rng core.Rand) State {
	s := State{
		Board:      NewBoard(w, h),
		LinePoints: linePoints,
	}
	return s.spawn(Kind(rng.Intn(KindCount)))
}

// Move shifts the piece by (dx, dy) if the result fits. A blocked move,
// including a blocked move down, leaves the state unchanged.
func (s State) Move(dx, dy int) State {
	if s.Lost {
		return s
	}
	to := Point{X: s.Piece.Anchor.X + dx, Y: s.Piece.Anchor.Y + dy}
	if !s.Board.Fits(s.Piece.Shape, to) {
		return s
	}
	s.Piece.Anchor = to
	return s
}

// Rotate turns the piece clockwise in place if the rotated shape fits at the
// same anchor. There are no wall kicks.
func (s State) Rotate() State {
	if s.Lost {
		return s
	}
	rotated := s.Piece.Shape.Rotate()
	if !s.Board.Fits(rotated, s.Piece.Anchor) {
		return s
	}
	s.Piece.Shape = rotated
	return s
}

// Descend is one gravity step. The piece moves down one row if it can;
// otherwise it lands: it is merged, full rows are cleared and scored, and
// a new piece is drawn from rng. A new piece that does not fit ends the game.
func (s State) Descend(rng core.Rand) State {
	if s.Lost {
		return s
	}
	down := Point{X: s.Piece.Anchor.X, Y: s.Piece.Anchor.Y + 1}
	if s.Board.Fits(s.Piece.Shape, down) {
		s.Piece.Anchor = down
		return s
	}
	return s.land(rng)
}

// HardDrop moves the piece as far down as it fits, then lands it.
func (s State) HardDrop(rng core.Rand) State {
	if s.Lost {
		return s
	}
	s.Piece.Anchor = s.Ghost()
	return s.land(rng)
}

// Ghost returns the anchor the piece would land at if dropped straight down.
func (s State) Ghost() Point {
	p := s.Piece.Anchor
	for s.Board.Fits(s.Piece.Shape, Point{X: p.X, Y: p.Y + 1}) {
		p.Y++
	}
	return p
}

func (s State) land(rng core.Rand) State {
	board, cleared := s.Board.Merge(s.Piece).ClearLines()
	s.Board = board
	s.Lines += cleared
	s.Score += cleared * s.LinePoints
	return s.spawn(Kind(rng.Intn(KindCount)))
}

func (s State) spawn(k Kind) State {
	s.Piece = Spawn(k, s.Board.W)
	s.Pieces++
	if !s.Board.Fits(s.Piece.Shape, s.Piece.Anchor) {
		s.Lost = true
	}
	return s
}
