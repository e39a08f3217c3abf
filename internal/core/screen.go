package core

import "strings"

// Cell is one character position: a glyph and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is the cell buffer a frame is painted into before a text front end
// turns it into terminal output. Writes outside the buffer are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major, w*h
}

// NewScreen returns a cleared w×h buffer.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

// Resize reallocates the buffer when the size changes. The content is not
// kept; every frame is repainted from scratch.
func (s *Screen) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if s.cells != nil && w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.cells = make([]Cell, w*h)
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// SetColored writes a glyph in color c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y) in the default color.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawBox outlines r with light box-drawing glyphs.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetColored(x, r.Y, '─', ColorDefault)
		s.SetColored(x, bottom, '─', ColorDefault)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', ColorDefault)
		s.SetColored(right, y, '│', ColorDefault)
	}
	s.SetColored(r.X, r.Y, '┌', ColorDefault)
	s.SetColored(right, r.Y, '┐', ColorDefault)
	s.SetColored(r.X, bottom, '└', ColorDefault)
	s.SetColored(right, bottom, '┘', ColorDefault)
}

// Row returns the glyphs of row y. Rows outside the buffer read as spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String joins all rows with newlines, ignoring color.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
