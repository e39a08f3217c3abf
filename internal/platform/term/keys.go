package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyUp:
		return core.ActionRotate
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case 's':
			return core.ActionDown
		case 'w':
			return core.ActionRotate
		case ' ':
			return core.ActionDrop
		case 'p':
			return core.ActionPause
		case 'r':
			return core.ActionRestart
		}
	}
	return core.ActionNone
}

func styleFor(c core.Color) tcell.Style {
	if n, ok := c.Palette(); ok {
		return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
	}
	return tcell.StyleDefault
}
