package core

import "math"

// Canvas is a drawing surface addressed in logical playfield units.
// Games paint through it and never learn what the surface is backed by:
// a character grid, a raw terminal or a pixel window.
type Canvas interface {
	// FillRect paints a solid rectangle.
	FillRect(r RectF, c Color)

	// FillCircle paints a solid disc centered on (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)

	// Text draws a string whose top-left corner sits at (x, y).
	Text(x, y float64, text string, c Color)

	// TextCentered draws a string horizontally centered on the playfield.
	TextCentered(y float64, text string, c Color)
}

// Drawable is anything with a fixed logical playfield that can paint itself.
type Drawable interface {
	Playfield() Size
	Draw(dst Canvas)
}

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Viewport maps a logical playfield onto a rectangle of character cells.
// A uniform scale is kept so that shapes are not stretched, treating a
// character cell as twice as tall as it is wide.
type Viewport struct {
	OffsetX, OffsetY int     // Top-left cell of the playfield
	Cols, Rows       int     // Cells covered by the playfield
	UnitsPerCol      float64 // Logical units per cell horizontally
	UnitsPerRow      float64 // Logical units per cell vertically
}

// FitViewport fits a playfield into the cell rectangle area, centering it.
func FitViewport(field Size, area Rect) Viewport {
	cols := max(area.W, 1)
	rows := max(area.H, 1)

	upc := math.Max(field.W/float64(cols), field.H/float64(rows)/cellAspect)
	if upc <= 0 {
		upc = 1
	}
	upr := upc * cellAspect

	usedCols := min(int(math.Ceil(field.W/upc)), cols)
	usedRows := min(int(math.Ceil(field.H/upr)), rows)

	return Viewport{
		OffsetX:     area.X + (cols-usedCols)/2,
		OffsetY:     area.Y + (rows-usedRows)/2,
		Cols:        usedCols,
		Rows:        usedRows,
		UnitsPerCol: upc,
		UnitsPerRow: upr,
	}
}

// Bounds returns the cell rectangle occupied by the playfield.
func (v Viewport) Bounds() Rect {
	return NewRect(v.OffsetX, v.OffsetY, v.Cols, v.Rows)
}

// CellAt converts a logical point to a screen cell.
func (v Viewport) CellAt(x, y float64) (col, row int) {
	col = v.OffsetX + int(math.Floor(x/v.UnitsPerCol))
	row = v.OffsetY + int(math.Floor(y/v.UnitsPerRow))
	return col, row
}

// Span converts a logical rectangle to the cells it touches.
// Anything with positive size covers at least one cell.
func (v Viewport) Span(r RectF) Rect {
	c0 := int(math.Floor(r.X / v.UnitsPerCol))
	c1 := int(math.Ceil(r.Right() / v.UnitsPerCol))
	r0 := int(math.Floor(r.Y / v.UnitsPerRow))
	r1 := int(math.Ceil(r.Bottom() / v.UnitsPerRow))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return NewRect(v.OffsetX+c0, v.OffsetY+r0, c1-c0, r1-r0)
}

// LogicalX converts a screen column to the logical x at that cell's center.
func (v Viewport) LogicalX(col int) float64 {
	return (float64(col-v.OffsetX) + 0.5) * v.UnitsPerCol
}

// Glyphs used by ScreenCanvas.
const (
	FillGlyph   = '█'
	CircleGlyph = '●'
)

// ScreenCanvas rasterizes logical drawing calls onto a Screen.
type ScreenCanvas struct {
	dst  *Screen
	view Viewport
}

// NewScreenCanvas creates a canvas drawing into dst through view.
func NewScreenCanvas(dst *Screen, view Viewport) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, view: view}
}

// FillRect paints every cell the rectangle touches, clipped to the viewport.
func (c *ScreenCanvas) FillRect(r RectF, col Color) {
	span := c.clip(c.view.Span(r))
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			c.dst.SetColored(x, y, FillGlyph, col)
		}
	}
}

// FillCircle marks the cell under the circle's center.
func (c *ScreenCanvas) FillCircle(cx, cy, _ float64, col Color) {
	x, y := c.view.CellAt(cx, cy)
	if c.view.Bounds().Contains(x, y) {
		c.dst.SetColored(x, y, CircleGlyph, col)
	}
}

// Text writes text starting at the cell containing (x, y).
func (c *ScreenCanvas) Text(x, y float64, text string, col Color) {
	cx, cy := c.view.CellAt(x, y)
	c.dst.DrawTextColored(cx, cy, text, col)
}

// TextCentered writes text centered within the viewport columns.
func (c *ScreenCanvas) TextCentered(y float64, text string, col Color) {
	_, cy := c.view.CellAt(0, y)
	n := len([]rune(text))
	cx := c.view.OffsetX + (c.view.Cols-n)/2
	if cx < 0 {
		cx = 0
	}
	c.dst.DrawTextColored(cx, cy, text, col)
}

func (c *ScreenCanvas) clip(r Rect) Rect {
	b := c.view.Bounds()
	x0 := max(r.X, b.X)
	y0 := max(r.Y, b.Y)
	x1 := min(r.Right(), b.Right())
	y1 := min(r.Bottom(), b.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Layout returns the viewport a playfield gets on a w×h cell screen and
// whether a one-cell frame surrounds it.
func Layout(w, h int, field Size) (view Viewport, framed bool) {
	area := NewRect(0, 0, w, h)
	framed = w >= 4 && h >= 4
	if framed {
		area = NewRect(1, 1, w-2, h-2)
	}
	return FitViewport(field, area), framed
}

// Paint clears dst, frames the playfield with a box when there is room,
// and lets d draw itself. It returns the viewport used, which front ends
// keep for mapping pointer columns back to logical x.
func Paint(dst *Screen, d Drawable) Viewport {
	dst.Clear()

	view, framed := Layout(dst.Width(), dst.Height(), d.Playfield())
	if framed {
		b := view.Bounds()
		dst.DrawBox(NewRect(b.X-1, b.Y-1, b.W+2, b.H+2))
	}

	d.Draw(NewScreenCanvas(dst, view))
	return view
}
