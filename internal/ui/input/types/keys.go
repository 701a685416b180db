package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the modes react to. The help bar renders the same bindings.
type KeyMap struct {
	Submit      key.Binding
	FocusResult key.Binding
	FocusQuery  key.Binding
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	Open        key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// Keys is the shared key map
var Keys = KeyMap{
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	FocusResult: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "results")),
	FocusQuery:  key.NewBinding(key.WithKeys("tab", "/", "esc"), key.WithHelp("/", "edit query")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Open:        key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
	NextPage:    key.NewBinding(key.WithKeys("right", "n", "l"), key.WithHelp("→/n", "next page")),
	PrevPage:    key.NewBinding(key.WithKeys("left", "p", "h"), key.WithHelp("←/p", "prev page")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
