package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
)

// KeyMap lists the walkthrough bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Jump     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " ", "enter"),
			key.WithHelp("→/space", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "back"),
		),
		Jump: jumpBinding(catalog.Len()),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "console up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "console down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// jumpBinding binds one digit per step, up to 9.
func jumpBinding(n int) key.Binding {
	n = min(max(n, 1), 9)
	digits := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		digits = append(digits, strconv.Itoa(i))
	}
	return key.NewBinding(
		key.WithKeys(digits...),
		key.WithHelp("1-"+strconv.Itoa(n), "go to step"),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Jump},
		{k.ScrollUp, k.ScrollDn, k.Copy},
		{k.Help, k.Quit},
	}
}
