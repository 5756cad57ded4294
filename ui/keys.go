package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	AddCard       key.Binding
	RemoveCard    key.Binding
	ForceFallback key.Binding
	Snapshot      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddCard: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add card"),
		),
		RemoveCard: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove card"),
		),
		ForceFallback: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "force fallback"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "dump snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddCard, k.RemoveCard, k.ForceFallback, k.Snapshot, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddCard, k.RemoveCard, k.ForceFallback},
		{k.Snapshot, k.Help, k.Quit},
	}
}
