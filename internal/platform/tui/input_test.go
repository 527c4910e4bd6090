package tui

import (
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/progress"
)

func TestHeldKeys(t *testing.T) {
	var h heldKeys
	if !h.vector().IsZero() {
		t.Fatal("fresh hold is not zero")
	}

	h.press(DirRight)
	if v := h.vector(); v != core.V(1, 0) {
		t.Errorf("right = %v", v)
	}

	h.press(DirLeft)
	if v := h.vector(); v != core.V(-1, 0) {
		t.Errorf("left after right = %v, want the newer key only", v)
	}

	h.press(DirUp)
	v := h.vector()
	if math.Abs(v.Len()-1) > 1e-9 || v.X >= 0 || v.Y >= 0 {
		t.Errorf("diagonal = %v, want unit up-left", v)
	}

	h.decay(holdWindow - time.Millisecond)
	if h.vector().IsZero() {
		t.Error("hold lapsed early")
	}
	h.decay(time.Millisecond)
	if !h.vector().IsZero() {
		t.Error("hold did not lapse")
	}

	h.press(DirDown)
	h.release()
	if !h.vector().IsZero() {
		t.Error("release kept a direction")
	}
}

func TestKeyMapperLayouts(t *testing.T) {
	tests := []struct {
		layout string
		key    string
		want   PlayKey
	}{
		{progress.ControlsKeys, "w", PlayKey{Move: true, Dir: DirUp}},
		{progress.ControlsKeys, "left", PlayKey{Move: true, Dir: DirLeft}},
		{progress.ControlsKeys, "l", PlayKey{Aim: true, Dir: DirRight}},
		{progress.ControlsVim, "h", PlayKey{Move: true, Dir: DirLeft}},
		{progress.ControlsVim, "s", PlayKey{Aim: true, Dir: DirDown}},
		{progress.ControlsVim, "down", PlayKey{Move: true, Dir: DirDown}},
		{"unknown", "d", PlayKey{Move: true, Dir: DirRight}},
		{progress.ControlsKeys, " ", PlayKey{Action: core.ActionAbility}},
		{progress.ControlsVim, "p", PlayKey{Action: core.ActionPause}},
		{progress.ControlsKeys, "r", PlayKey{Action: core.ActionRestart}},
		{progress.ControlsKeys, "esc", PlayKey{Action: core.ActionBack}},
		{progress.ControlsKeys, "q", PlayKey{Action: core.ActionQuit}},
		{progress.ControlsKeys, "x", PlayKey{}},
	}
	for _, tt := range tests {
		t.Run(tt.layout+"/"+tt.key, func(t *testing.T) {
			if got := NewKeyMapper(tt.layout).MapKey(keyPress(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMenuActionFor(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyPress("up"), MenuActionUp},
		{keyPress("j"), MenuActionDown},
		{keyPress("right"), MenuActionRight},
		{keyPress("enter"), MenuActionSelect},
		{keyPress(" "), MenuActionSelect},
		{keyPress("esc"), MenuActionBack},
		{keyPress("q"), MenuActionQuit},
		{keyPress("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := keys.MenuActionFor(tt.msg); got != tt.want {
			t.Errorf("MenuActionFor(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
