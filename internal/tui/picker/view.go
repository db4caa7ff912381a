package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
)

// View renders the title, the field and a footer. Nothing is drawn once the
// picker has quit so the final frame does not linger in the terminal.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	title := m.cfg.Title
	if strings.TrimSpace(title) == "" {
		title = "Select"
	}

	sections := []string{
		m.titleView(title),
		"",
		m.field.View(),
	}

	if m.loadErr != nil {
		sections = append(sections, m.errorView("Could not load options: "+m.loadErr.Error()))
	}

	sections = append(sections, "", m.summaryView(m.summary()), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) summary() string {
	if len(m.selected) == 0 {
		return "Nothing selected"
	}
	label := m.field.Props().LabelFunc
	if label == nil {
		label = dropdown.DefaultLabel
	}
	labels := make([]string, len(m.selected))
	for i, opt := range m.selected {
		labels[i] = label(opt)
	}
	return "Selected: " + strings.Join(labels, ", ")
}
