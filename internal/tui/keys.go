// ABOUTME: Key bindings and help for the alias forms.
// ABOUTME: Bindings are matched with bubbles/key and listed by bubbles/help.

package tui

import "github.com/charmbracelet/bubbles/key"

type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right", "up", "down"),
			key.WithHelp("←/→", "change destination"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cycle, k.Submit, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Cycle, k.Submit, k.Cancel}}
}
