package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// gameKeys binds key names, as Bubble Tea spells them, to game actions.
// Arrows and WASD both steer; Esc is resolved per KeyMapper.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,

	"left":  core.ActionLeft,
	"a":     core.ActionLeft,
	"right": core.ActionRight,
	"d":     core.ActionRight,
	"down":  core.ActionDown,
	"s":     core.ActionDown,
	"up":    core.ActionRotate,
	"w":     core.ActionRotate,

	" ":     core.ActionDrop,
	"enter": core.ActionConfirm,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
	"b":     core.ActionBack,
}

// KeyMapper turns Bubble Tea input into game and menu actions.
type KeyMapper struct {
	// EscBack makes Esc leave the game instead of pausing it. Sessions
	// that have a menu to return to set it.
	EscBack bool
}

func NewKeyMapper() *KeyMapper { return &KeyMapper{} }

// MapKey returns the action bound to msg and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	key := msg.String()
	if key == "esc" {
		if km.EscBack {
			return core.ActionBack, false
		}
		return core.ActionPause, false
	}
	a, ok := gameKeys[key]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame adds msg's action to frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	a, quit := km.MapKey(msg)
	if a != core.ActionNone {
		frame.Set(a)
	}
	return quit
}

// MapMouseToFrame records the pointer column of a mouse event as a logical
// x position inside view. Columns outside the playfield map past its edges;
// games clamp the body they steer.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, view core.Viewport, frame *core.InputFrame) {
	if view.Cols == 0 {
		return
	}
	frame.SetPointer(view.LogicalX(msg.X))
}

// MenuAction is a menu or browser command.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionReplays
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionReplays,
}

// MapKeyToMenuAction returns the menu command bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
