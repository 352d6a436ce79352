package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the menu commands. Commands are typed on the choice line and
// submitted with enter; the bindings drive the legend.
type KeyMap struct {
	Toggle    key.Binding
	Base      key.Binding
	Vibe      key.Binding
	All       key.Binding
	Clear     key.Binding
	Missing   key.Binding
	Install   key.Binding
	History   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the menu commands
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1-N", "toggle")),
		Base:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "base tools")),
		Vibe:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "vibe coding")),
		All:       key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "all")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Missing:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "missing only")),
		Install:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "install")),
		History:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "install log")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Install, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Base, k.Vibe, k.All},
		{k.Clear, k.Missing, k.History},
		{k.Toggle, k.Install, k.Quit},
	}
}
