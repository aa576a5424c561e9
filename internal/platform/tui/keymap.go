package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Pause      key.Binding
	Confirm    key.Binding
	ModeTwo    key.Binding
	ModeAI     key.Binding
	Restart    key.Binding
	ChangeMode key.Binding
	Cancel     key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.RightUp, k.Pause, k.Cancel, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Confirm, k.ModeTwo, k.ModeAI, k.Pause},
		{k.Restart, k.ChangeMode, k.Cancel, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "right paddle"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		ModeTwo: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "two player"),
		),
		ModeAI: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "vs AI"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ChangeMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "change mode"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for keys the game does not use.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.LeftUp, core.ActionLeftUp},
		{k.LeftDown, core.ActionLeftDown},
		{k.RightUp, core.ActionRightUp},
		{k.RightDown, core.ActionRightDown},
		{k.Pause, core.ActionPause},
		{k.Confirm, core.ActionConfirm},
		{k.ModeTwo, core.ActionModeTwo},
		{k.ModeAI, core.ActionModeAI},
		{k.Restart, core.ActionRestart},
		{k.ChangeMode, core.ActionChangeMode},
		{k.Cancel, core.ActionCancel},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
