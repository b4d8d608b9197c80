package tui

import (
	"gridsnake/game"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the terminal frontend
type KeyMap struct {
	// Movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pause/restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Help, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Help, k.Quit},
	}
}

// Command resolves a key press to a game command. Help and unbound keys
// resolve to game.CmdNone.
func (k KeyMap) Command(msg tea.KeyMsg) game.Command {
	switch {
	case key.Matches(msg, k.Up):
		return game.CmdUp
	case key.Matches(msg, k.Down):
		return game.CmdDown
	case key.Matches(msg, k.Left):
		return game.CmdLeft
	case key.Matches(msg, k.Right):
		return game.CmdRight
	case key.Matches(msg, k.Confirm):
		return game.CmdConfirm
	case key.Matches(msg, k.Quit):
		return game.CmdQuit
	default:
		return game.CmdNone
	}
}
