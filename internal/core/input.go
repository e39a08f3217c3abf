package core

// Action is a player intent. Front ends translate keys and buttons into
// actions so games never see raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left
	ActionRight          // D, Right
	ActionDown           // S, Down: soft drop
	ActionRotate         // W, Up
	ActionDrop           // Space: hard drop, fire, launch
	ActionConfirm        // Enter
	ActionBack           // B, or Esc inside a session
	ActionRestart        // R, honored once the game has ended
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, or Esc when playing standalone

	numActions
)

var actionNames = [numActions]string{
	"None", "Left", "Right", "Down", "Rotate", "Drop",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is everything the player did during one tick: a set of
// actions plus, if the pointer moved, its latest x in playfield units.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32

	Pointer    float64
	HasPointer bool
}

func NewInputFrame() InputFrame { return InputFrame{} }

// Set adds a to the frame. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < numActions {
		f.bits |= 1 << uint(a)
	}
}

func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < numActions && f.bits&(1<<uint(a)) != 0
}

// SetPointer records the pointer x. The last call in a tick wins.
func (f *InputFrame) SetPointer(x float64) {
	f.Pointer, f.HasPointer = x, true
}

// PointerX returns the pointer position and whether it moved this tick.
func (f InputFrame) PointerX() (float64, bool) {
	return f.Pointer, f.HasPointer
}

func (f InputFrame) Empty() bool { return f.bits == 0 && !f.HasPointer }

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() { *f = InputFrame{} }

// Clone returns a copy. Frames are plain values, so this is the same as
// assignment; it exists for call sites that keep a frame past Clear.
func (f InputFrame) Clone() InputFrame { return f }

// Mask is the action set as stored in a replay: bit n is Action n.
func (f InputFrame) Mask() uint32 { return f.bits }

// FrameFromMask rebuilds a recorded frame. Bits that name no action are
// dropped.
func FrameFromMask(mask uint32, pointer float64, hasPointer bool) InputFrame {
	f := InputFrame{bits: mask & (1<<uint(numActions) - 2)}
	if hasPointer {
		f.SetPointer(pointer)
	}
	return f
}
