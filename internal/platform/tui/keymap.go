package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMap defines the key bindings for flying and for the menus.
type KeyMap struct {
	Thrust       key.Binding
	RotateLeft   key.Binding
	RotateRight  key.Binding
	LateralLeft  key.Binding
	LateralRight key.Binding
	Confirm      key.Binding
	Pause        key.Binding
	Restart      key.Binding
	Back         key.Binding
	Quit         key.Binding
	Up           key.Binding
	Down         key.Binding
	Scores       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w", "thrust"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate"),
		),
		LateralLeft: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "strafe left"),
		),
		LateralRight: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "strafe right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
	}
}

// ShortHelp returns key bindings for the in-flight help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.RotateLeft, k.RotateRight, k.LateralLeft, k.LateralRight, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.RotateLeft, k.RotateRight, k.LateralLeft, k.LateralRight},
		{k.Confirm, k.Restart, k.Pause, k.Back, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust, false
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, k.LateralLeft):
		return core.ActionLateralLeft, false
	case key.Matches(msg, k.LateralRight):
		return core.ActionLateralRight, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// menuHelp lists the bindings shown under the menu.
type menuHelp KeyMap

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Scores, k.Quit}
}

func (k menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
