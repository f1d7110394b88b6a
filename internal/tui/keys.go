package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send      key.Binding
	reset     key.Binding
	copy      key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	buildInfo key.Binding
	back      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	send:      key.NewBinding(key.WithKeys("enter")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	pageUp:    key.NewBinding(key.WithKeys("pgup")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	back:      key.NewBinding(key.WithKeys("esc", "ctrl+b")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}
