package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.cfg.Width <= 0 {
			m.field.SetWidth(min(msg.Width, 60))
		}
		return m, nil

	case OptionsLoadedMsg:
		return m, m.handleLoaded(msg)

	case loadCancelledMsg:
		m.log.Debug("option load cancelled")
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		// outside-click subscribers first, then the field itself
		cmd := tea.Batch(m.pointers.Publish(msg), m.field.Update(msg))
		return m, m.afterField(cmd)
	}

	return m, m.afterField(m.field.Update(msg))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.aborted = true
		return m.quit()
	case key.Matches(msg, m.keys.Submit):
		return m.quit()
	case msg.String() == "?" && !m.field.SearchFocused():
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	cmd, handled := m.field.HandleKey(msg)
	if !handled && key.Matches(msg, m.keys.field.Close) {
		return m.quit()
	}
	return m.afterField(cmd)
}

func (m *Model) handleLoaded(msg OptionsLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.loadErr = msg.Err
		m.log.Error(msg.Err, "option load failed")
		m.field.SetLoading(false)
		return nil
	}

	m.loadErr = nil
	m.field.SetOptions(msg.Options)
	m.field.SetLoading(false)
	m.selected = m.field.Selected()
	m.log.DebugFields("options loaded", map[string]any{"count": len(msg.Options)})
	return nil
}

// afterField applies a change the field reported during its update and
// decides whether that change ends the session.
func (m *Model) afterField(cmd tea.Cmd) tea.Cmd {
	if m.pending == nil {
		return cmd
	}

	change := *m.pending
	m.pending = nil
	if !change.Value.Equal(m.value) {
		m.value = change.Value
		m.selected = change.Options
		m.field.SetValue(change.Value)

		if m.log.DebugEnabled() {
			m.log.DebugFields("value changed", map[string]any{
				"value":    change.Value.IDs(),
				"selected": len(change.Options),
			})
		}
	}

	if m.cfg.SubmitOnSelect && !change.Value.IsMulti() && len(change.Options) > 0 {
		return m.quit()
	}
	return cmd
}

func (m *Model) quit() tea.Cmd {
	m.done = true
	m.field.Unmount()
	m.cancel()
	m.log.DebugFields("picker finished", map[string]any{"aborted": m.aborted})
	return tea.Quit
}
