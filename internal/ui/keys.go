package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	Attach     key.Binding
	AttachKeep key.Binding
	Delete     key.Binding
	Rename     key.Binding
	Create     key.Binding
	Filter     key.Binding
	Refresh    key.Binding
	Quit       key.Binding

	Confirm key.Binding
	Deny    key.Binding

	Submit key.Binding
	Cancel key.Binding

	MatchPrev  key.Binding
	MatchNext  key.Binding
	MatchFirst key.Binding
	MatchLast  key.Binding

	Dismiss key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	First:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Last:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Attach:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "attach")),
	AttachKeep: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "attach shared")),
	Delete:     key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
	Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
	Create:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "new")),
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Refresh:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no")),

	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

	MatchPrev:  key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev match")),
	MatchNext:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next match")),
	MatchFirst: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
	MatchLast:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),

	Dismiss: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("any key", "continue")),
}
