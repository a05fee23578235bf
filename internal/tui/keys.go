// internal/tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the dashboard bindings shown in the help footer.
type keyMap struct {
	NextCard key.Binding
	PrevCard key.Binding
	PrevBar  key.Binding
	NextBar  key.Binding
	Toggle   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextCard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next chart")),
		PrevCard: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev chart")),
		PrevBar:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev bar")),
		NextBar:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next bar")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle info")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCard, k.NextBar, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCard, k.PrevCard, k.PrevBar, k.NextBar},
		{k.Toggle, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}
