package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.SetPointer(120.5)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() does not reflect Set()")
	}
	if x, ok := f.PointerX(); !ok || x != 120.5 {
		t.Errorf("PointerX() = (%v, %v), expected (120.5, true)", x, ok)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear()")
	}
}

func TestInputFrameMaskRoundTrip(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.Set(ActionDown)
	f.Set(ActionRestart)
	f.SetPointer(42)

	g := FrameFromMask(f.Mask(), f.Pointer, f.HasPointer)

	for a := ActionNone; a <= ActionPause; a++ {
		if f.Has(a) != g.Has(a) {
			t.Errorf("action %s: original=%v rebuilt=%v", a, f.Has(a), g.Has(a))
		}
	}
	if x, ok := g.PointerX(); !ok || x != 42 {
		t.Errorf("rebuilt pointer = (%v, %v), expected (42, true)", x, ok)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDrop)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionDrop) {
		t.Error("clone lost its action after original was cleared")
	}
}

func TestFrameFromMaskDropsUnknownBits(t *testing.T) {
	f := FrameFromMask(1|1<<uint(ActionDrop)|1<<20, 0, false)
	if f.Mask() != 1<<uint(ActionDrop) {
		t.Errorf("Mask() = %b, want only the drop bit", f.Mask())
	}
	if f.HasPointer {
		t.Error("pointer set without hasPointer")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionDrop:  "Drop",
		ActionPause: "Pause",
		Action(-1):  "Unknown",
		numActions:  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
