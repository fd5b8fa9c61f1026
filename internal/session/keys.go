package session

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the interactive session.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	Filter   key.Binding
	Scenario key.Binding
	PrevScen key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Scenario: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "scenario"),
		),
		PrevScen: key.NewBinding(
			key.WithKeys("left"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQ: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k KeyMap) pickerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Filter, k.Quit}
}

func (k KeyMap) formulaHelp(decision bool) []key.Binding {
	if decision {
		return []key.Binding{k.Next, k.Prev, k.Scenario, k.Clear, k.Back}
	}
	return []key.Binding{k.Next, k.Prev, k.Clear, k.Back}
}
