package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	refresh   key.Binding
	copyEmail key.Binding
	copyPhone key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copyEmail: key.NewBinding(key.WithKeys("c")),
	copyPhone: key.NewBinding(key.WithKeys("u")),
}
