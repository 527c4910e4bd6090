package core

import (
	"testing"
	"time"
)

func TestInputFrameClearKeepsHeldState(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionAbility)
	f.Move = V(1, 0)
	f.Aim = V(0, -1)
	f.DT = 20 * time.Millisecond

	f.Clear()

	if f.Has(ActionAbility) {
		t.Error("one-shot actions should be cleared")
	}
	if f.Move != V(1, 0) || f.Aim != V(0, -1) {
		t.Errorf("held directions lost: move=%v aim=%v", f.Move, f.Aim)
	}
	if f.DT != 0 {
		t.Errorf("DT = %v after Clear", f.DT)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionPause) {
		t.Error("clone should keep its own actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameSeconds(t *testing.T) {
	f := InputFrame{DT: 50 * time.Millisecond}
	if got := f.Seconds(60); got != 0.05 {
		t.Errorf("Seconds = %v, expected 0.05", got)
	}
	f.DT = 0
	if got := f.Seconds(30); got != 1.0/30 {
		t.Errorf("fallback Seconds = %v", got)
	}
	if got := f.Seconds(0); got != 1.0/60 {
		t.Errorf("invalid tick rate Seconds = %v", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionAbility.String() != "Ability" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
