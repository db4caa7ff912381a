package picker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/dropdown/internal/tui/selectfield"
)

type keyMap struct {
	field  selectfield.KeyMap
	Submit key.Binding
	Abort  key.Binding
}

func defaultKeyMap(field selectfield.KeyMap) keyMap {
	return keyMap{
		field:  field,
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Abort:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.field.ShortHelp(), k.Submit, k.Abort)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.field.ShortHelp(), {k.Submit, k.Abort}}
}
