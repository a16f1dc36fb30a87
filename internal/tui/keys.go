package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	More     key.Binding
	Less     key.Binding
	Category key.Binding
	EditName key.Binding
	EditTime key.Binding
	Add      key.Binding
	Delete   key.Binding
	Note     key.Binding
	Save     key.Binding
	Confirm  key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/up", "prev task"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/down", "next task"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "cycle status"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "right", "="),
		key.WithHelp("+/right", "progress up"),
	),
	Less: key.NewBinding(
		key.WithKeys("-", "left"),
		key.WithHelp("-/left", "progress down"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle category"),
	),
	EditName: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit name"),
	),
	EditTime: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "edit time"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add task"),
	),
	Delete: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete task"),
	),
	Note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add note"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
