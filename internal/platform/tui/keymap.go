package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/progress"
)

// KeyMap holds the navigation bindings shared by every menu screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the menu bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "change"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MenuActionFor translates a key to a menu action.
func (k KeyMap) MenuActionFor(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Left):
		return MenuActionLeft
	case key.Matches(msg, k.Right):
		return MenuActionRight
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}

// Direction indexes the four held directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var dirVectors = [4]core.Vec{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// layout maps keys to movement and aim directions.
type layout struct {
	move map[string]Direction
	aim  map[string]Direction
}

var layouts = map[string]layout{
	progress.ControlsKeys: {
		move: map[string]Direction{
			"up": DirUp, "w": DirUp, "down": DirDown, "s": DirDown,
			"left": DirLeft, "a": DirLeft, "right": DirRight, "d": DirRight,
		},
		aim: map[string]Direction{"i": DirUp, "k": DirDown, "j": DirLeft, "l": DirRight},
	},
	progress.ControlsVim: {
		move: map[string]Direction{
			"k": DirUp, "j": DirDown, "h": DirLeft, "l": DirRight,
			"up": DirUp, "down": DirDown, "left": DirLeft, "right": DirRight,
		},
		aim: map[string]Direction{"w": DirUp, "s": DirDown, "a": DirLeft, "d": DirRight},
	},
}

// PlayKey is what a key means during play.
type PlayKey struct {
	Action core.Action
	Move   bool
	Aim    bool
	Dir    Direction
}

// KeyMapper translates key presses during play for one control layout.
type KeyMapper struct {
	layout layout
}

// NewKeyMapper returns a mapper for the named layout, falling back to
// the arrow/WASD layout.
func NewKeyMapper(name string) KeyMapper {
	l, ok := layouts[name]
	if !ok {
		l = layouts[progress.ControlsKeys]
	}
	return KeyMapper{layout: l}
}

// MapKey classifies a key press during play.
func (km KeyMapper) MapKey(msg tea.KeyMsg) PlayKey {
	k := msg.String()
	switch k {
	case "ctrl+c", "q":
		return PlayKey{Action: core.ActionQuit}
	case " ":
		return PlayKey{Action: core.ActionAbility}
	case "p":
		return PlayKey{Action: core.ActionPause}
	case "r":
		return PlayKey{Action: core.ActionRestart}
	case "esc", "b":
		return PlayKey{Action: core.ActionBack}
	case "enter":
		return PlayKey{Action: core.ActionConfirm}
	}
	if d, ok := km.layout.move[k]; ok {
		return PlayKey{Move: true, Dir: d}
	}
	if d, ok := km.layout.aim[k]; ok {
		return PlayKey{Aim: true, Dir: d}
	}
	return PlayKey{}
}
