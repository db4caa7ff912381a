package selectfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds terminal keys to the four keys the selection engine knows.
// Every other key goes to the search field while it has focus.
type KeyMap struct {
	Confirm key.Binding
	Close   key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/select")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
	}
}

// ShortHelp lists the bindings for a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Confirm, k.Close}
}
