package selectfield

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// focusSearchCmd defers search focus to the next turn of the program loop,
// after the menu has been drawn.
func focusSearchCmd(ctx context.Context, owner string) tea.Cmd {
	return func() tea.Msg {
		return focusSearchMsg{owner: owner, ctx: ctx}
	}
}
