package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	Back         key.Binding
	Help         key.Binding
	Settings     key.Binding
	Enter        key.Binding
	Up           key.Binding
	Down         key.Binding
	Regenerate   key.Binding
	StartOver    key.Binding
	MoreCreative key.Binding
	LessCreative key.Binding
	Copy         key.Binding
	Retry        key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ask"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
	Regenerate: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "generate new"),
	),
	StartOver: key.NewBinding(
		key.WithKeys("n", "esc", "backspace"),
		key.WithHelp("n", "start over"),
	),
	MoreCreative: key.NewBinding(
		key.WithKeys("up", "k", "+"),
		key.WithHelp("up/+", "more creative"),
	),
	LessCreative: key.NewBinding(
		key.WithKeys("down", "j", "-"),
		key.WithHelp("down/-", "less creative"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry connection"),
	),
}
