package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home    key.Binding
	Login   key.Binding
	Quit    key.Binding
	QuitAlt key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Dismiss key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "home")),
		Login:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "login")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitAlt: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "ok")),
	}
}
