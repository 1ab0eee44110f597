package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	reset   key.Binding
	addApp  key.Binding
	summary key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	addApp: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add app"),
	),
	summary: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "summary"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.reset, k.addApp, k.summary, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
