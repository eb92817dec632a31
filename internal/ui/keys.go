package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	Tab        key.Binding
	Enter      key.Binding
	Back       key.Binding
	Refresh    key.Binding
	Search     key.Binding
	Install    key.Binding
	Update     key.Binding
	UpdateAll  key.Binding
	Uninstall  key.Binding
	Cleanup    key.Binding
	CleanupAll key.Binding
	Filter     key.Binding
	Up         key.Binding
	Down       key.Binding
}

var Keys = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Install:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "install")),
	Update:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "update")),
	UpdateAll:  key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "update all")),
	Uninstall:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "uninstall")),
	Cleanup:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cleanup")),
	CleanupAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "cleanup all")),
	Filter:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
}
