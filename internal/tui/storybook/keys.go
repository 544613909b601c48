package storybook

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Prev       key.Binding
	Next       key.Binding
	Focus      key.Binding
	Toggle     key.Binding
	Controlled key.Binding
	Disable    key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous value")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next value")),
		Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "components/axes")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle checked")),
		Controlled: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "controlled mode")),
		Disable:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disabled")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset axes")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Focus, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Prev, k.Next, k.Reset},
		{k.Toggle, k.Controlled, k.Disable},
		{k.Help, k.Quit},
	}
}
