package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/birdfeed/internal/core"
)

// KeyMap binds terminal keys to console buttons and platform actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	A      key.Binding
	B      key.Binding
	Start  key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.A, k.Down, k.Left, k.Right, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.A, k.B, k.Start, k.Select},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "flap"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "dive"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		A: key.NewBinding(
			key.WithKeys(" ", "z", "j"),
			key.WithHelp("space/z", "flap"),
		),
		B: key.NewBinding(
			key.WithKeys("x", "k"),
			key.WithHelp("x", "dive"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "start/pause"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons returns the console buttons a key stands for.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	bindings := []struct {
		binding key.Binding
		button  core.Buttons
	}{
		{k.Up, core.ButtonUp},
		{k.Down, core.ButtonDown},
		{k.Left, core.ButtonLeft},
		{k.Right, core.ButtonRight},
		{k.A, core.ButtonA},
		{k.B, core.ButtonB},
		{k.Start, core.ButtonStart},
		{k.Select, core.ButtonSelect},
	}

	var b core.Buttons
	for _, kb := range bindings {
		if key.Matches(msg, kb.binding) {
			b |= kb.button
		}
	}
	return b
}
