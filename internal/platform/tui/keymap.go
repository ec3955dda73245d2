package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyToken maps a Bubble Tea key event to the canonical token the screen
// controller consumes ("up", "enter", "a", ...).
func keyToken(msg tea.KeyMsg) string {
	switch s := msg.String(); s {
	case " ":
		return "space"
	case "esc":
		return "escape"
	default:
		return s
	}
}

// keyBuffer holds the most recently pressed key until the controller
// queries it. The query clears the buffer, so a token is delivered to
// exactly one tick.
type keyBuffer struct {
	key string
}

// Push records a key press, replacing any undelivered one.
func (b *keyBuffer) Push(token string) { b.key = token }

// LastKey returns the pending token and clears it.
func (b *keyBuffer) LastKey() string {
	k := b.key
	b.key = ""
	return k
}

// GameKeyMap defines the key bindings shown in the help line.
type GameKeyMap struct {
	Move    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Confirm},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "move"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
