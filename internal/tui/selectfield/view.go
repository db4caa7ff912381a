package selectfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

const checkMark = "✓"

// View draws the label, the trigger and, while open, the menu.
func (m *Model) View() string {
	ctx := m.renderContext()
	theme := m.theme
	open := m.engine.IsOpen()

	sections := make([]string, 0, 3)

	if m.props.Label != "" {
		label := components.NewText(m.props.Label).
			WithMaxWidth(m.width).
			WithAppliers(components.DropdownLabel())
		sections = append(sections, label.ViewWithContext(ctx))
	}

	trigger := components.DropdownTrigger(open, m.props.Disabled)(lipgloss.NewStyle(), theme).
		Width(m.width - 2)
	sections = append(sections, trigger.Render(m.triggerLine()))

	if open {
		m.syncMenu()
		menu := components.DropdownMenu()(lipgloss.NewStyle(), theme).Width(m.width - 2)
		sections = append(sections, menu.Render(m.menu.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) triggerLine() string {
	left := joinParts(m.leftParts())
	right := joinParts(m.rightParts())
	return fit(left, m.leftWidth()) + " " + right
}

func joinParts(parts []part) string {
	views := make([]string, len(parts))
	for i, p := range parts {
		views[i] = p.view
	}
	return strings.Join(views, " ")
}

// menuContent renders every menu line. The viewport shows a window of them.
func (m *Model) menuContent() string {
	width := max(m.width-2, 1)
	ctx := m.renderContext()

	if m.props.Loading {
		status := m.spinner.View() + " " + loadingText
		return components.DropdownPlaceholder()(lipgloss.NewStyle(), m.theme).
			Width(width).
			Align(lipgloss.Center).
			Render(components.Truncate(status, width))
	}

	visible := m.engine.Visible()
	if len(visible) == 0 {
		return components.DropdownPlaceholder()(lipgloss.NewStyle(), m.theme).
			Width(width).
			Align(lipgloss.Center).
			Render(emptyText)
	}

	state := m.engine.State()
	props := m.engine.Props()
	lines := make([]string, len(visible))
	for i, opt := range visible {
		lines[i] = m.optionLine(ctx, opt, components.OptionState{
			Highlighted: i == state.Highlighted,
			Selected:    dropdown.IsSelected(props.Value, opt.Value),
			Multi:       props.MultiSelect,
			Disabled:    opt.Disabled,
		}, width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) optionLine(ctx components.RenderContext, opt dropdown.Option, state components.OptionState, width int) string {
	// one cell of padding each side, then the check column
	room := max(width-4, 1)

	mark := " "
	if state.Selected {
		mark = checkMark
	}

	label := components.Truncate(m.engine.Props().Label(opt), room)
	line := mark + " " + label

	if opt.Sublabel != "" {
		if rest := room - lipgloss.Width(label) - 2; rest > 3 {
			sub := components.NewText(opt.Sublabel).WithAppliers(components.DropdownSublabel())
			line += "  " + sub.ViewWithContext(ctx.WithWidth(rest))
		}
	}

	style := components.DropdownOption(state)(lipgloss.NewStyle(), m.theme).
		Padding(0, 1).
		Width(width)
	return style.Render(line)
}
