package session

import (
	"charm.land/bubbles/v2/key"
)

// keyMap holds the session screen key bindings.
type keyMap struct {
	Select       key.Binding
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Next         key.Binding
	Prev         key.Binding
	RestartAll   key.Binding
	RestartWrong key.Binding
	Summary      key.Binding
	Jump         key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "answer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", "x"),
			key.WithHelp("space", "pick"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "n"),
			key.WithHelp("enter", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←", "prev"),
		),
		RestartAll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart all"),
		),
		RestartWrong: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "restart wrong"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "summary"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
