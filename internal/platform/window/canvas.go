package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Canvas draws logical playfield units straight onto an Ebiten image.
// Text uses the built-in debug font, which is always white.
type Canvas struct {
	dst   *ebiten.Image
	field core.Size
}

// NewCanvas creates a canvas over dst for a playfield of the given size.
func NewCanvas(dst *ebiten.Image, field core.Size) *Canvas {
	return &Canvas{dst: dst, field: field}
}

// FillRect implements core.Canvas.
func (c *Canvas) FillRect(r core.RectF, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

// FillCircle implements core.Canvas.
func (c *Canvas) FillCircle(cx, cy, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), rgba(col), true)
}

// Text implements core.Canvas.
func (c *Canvas) Text(x, y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

// TextCentered implements core.Canvas.
func (c *Canvas) TextCentered(y float64, text string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, text, centeredX(c.field.W, text), int(y)-glyphH/2)
}

func centeredX(width float64, text string) int {
	return (int(width) - len([]rune(text))*glyphW) / 2
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
