package board

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the board's bindings. It implements help.KeyMap.
type keyMap struct {
	Tai    key.Binding
	Xiu    key.Binding
	Clear  key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tai: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "add TAI"),
		),
		Xiu: key.NewBinding(
			key.WithKeys("x", "X"),
			key.WithHelp("x", "add XIU"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tai, k.Xiu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tai, k.Xiu},
		{k.Clear, k.Export},
		{k.Help, k.Quit},
	}
}
