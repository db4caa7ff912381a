package selectfield

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
)

// Update handles a message addressed to the field.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case focusSearchMsg:
		return m.handleFocus(msg)

	case spinner.TickMsg:
		// stop ticking once loading ends
		if !m.props.Loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

// HandleKey applies a key press and reports whether the field consumed it.
// Hosts use the flag to decide whether a key such as esc should fall
// through to them.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.props.Disabled {
		return nil, false
	}

	wasOpen := m.engine.IsOpen()
	var handled bool

	switch {
	case key.Matches(msg, m.keys.Confirm):
		handled = m.engine.HandleKey(dropdown.KeyEnter)
	case key.Matches(msg, m.keys.Close):
		handled = m.engine.HandleKey(dropdown.KeyEscape)
	case key.Matches(msg, m.keys.Next):
		handled = m.engine.HandleKey(dropdown.KeyDown)
	case key.Matches(msg, m.keys.Prev):
		handled = m.engine.HandleKey(dropdown.KeyUp)
	default:
		if !m.search.Focused() {
			return nil, false
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.engine.SetSearch(m.search.Value())
		return tea.Batch(cmd, m.afterTransition(wasOpen)), true
	}

	if !handled {
		return nil, false
	}
	return m.afterTransition(wasOpen), true
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	h := m.hitTest(msg.X-m.originX, msg.Y-m.originY)
	wasOpen := m.engine.IsOpen()

	switch {
	case tea.MouseEvent(msg).IsWheel():
		if h.kind == hitOption || h.kind == hitMenu {
			m.scrollMenu(msg.Button)
		}
		return nil

	case msg.Action == tea.MouseActionMotion:
		if h.kind == hitOption && m.engine.Hover(h.index) {
			m.syncMenu()
		}
		return nil

	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return nil
	}

	var changed bool
	switch h.kind {
	case hitLabel:
		changed = m.engine.ClickLabel()
	case hitTrigger:
		changed = m.engine.ClickTrigger()
	case hitSearch:
		if !wasOpen {
			changed = m.engine.Open(dropdown.NoHighlight)
		}
	case hitTagRemove:
		changed = m.engine.Remove(h.id)
	case hitClear:
		changed = m.engine.Clear()
	case hitOption:
		if visible := m.engine.Visible(); h.index < len(visible) {
			changed = m.engine.Select(visible[h.index])
		}
	}

	if !changed {
		return nil
	}
	return m.afterTransition(wasOpen)
}

// handleOutsidePress is the pointer subscription handler. It closes the
// menu when a press lands anywhere outside the field.
func (m *Model) handleOutsidePress(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return nil
	}
	if !m.engine.IsOpen() || m.contains(msg.X-m.originX, msg.Y-m.originY) {
		return nil
	}
	if !m.engine.Close() {
		return nil
	}
	m.log.Debug("closed by outside press")
	return m.afterTransition(true)
}

func (m *Model) handleFocus(msg focusSearchMsg) tea.Cmd {
	if msg.owner != m.id || msg.ctx == nil || msg.ctx.Err() != nil {
		return nil
	}
	if !m.engine.IsOpen() || !m.props.Searchable {
		return nil
	}
	m.search.CursorEnd()
	return m.search.Focus()
}

func (m *Model) scrollMenu(button tea.MouseButton) {
	switch button {
	case tea.MouseButtonWheelUp:
		m.menu.SetYOffset(m.menu.YOffset - 1)
	case tea.MouseButtonWheelDown:
		m.menu.SetYOffset(m.menu.YOffset + 1)
	}
}

// afterTransition brings the widgets in line with the engine after any
// state change and returns the deferred focus command when one is due.
func (m *Model) afterTransition(wasOpen bool) tea.Cmd {
	var cmd tea.Cmd
	open := m.engine.IsOpen()

	if m.engine.TakeFocusRequest() {
		cmd = m.scheduleFocus()
	}
	if !open {
		m.cancelFocus()
		m.search.Blur()
	}
	if open != wasOpen {
		m.menu.GotoTop()
	}

	m.syncSearchField()
	m.syncMenu()

	if m.log.DebugEnabled() {
		state := m.engine.State()
		m.log.DebugFields("transition", map[string]any{
			"was_open":    wasOpen,
			"open":        state.Open,
			"search":      state.Search,
			"highlighted": state.Highlighted,
		})
	}
	return cmd
}

func (m *Model) scheduleFocus() tea.Cmd {
	m.cancelFocus()

	parent := m.mountCtx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	m.focusCancel = cancel
	return focusSearchCmd(ctx, m.id)
}

func (m *Model) cancelFocus() {
	if m.focusCancel != nil {
		m.focusCancel()
		m.focusCancel = nil
	}
}

func (m *Model) syncSearchField() {
	if search := m.engine.State().Search; m.search.Value() != search {
		m.search.SetValue(search)
	}
	if len(m.engine.Selected()) == 0 {
		m.search.Placeholder = m.placeholder()
	} else {
		m.search.Placeholder = searchPlaceholder
	}
	m.search.Width = max(m.leftWidth()-1, 1)
}

// syncMenu refreshes the menu content and keeps the highlighted row in view.
func (m *Model) syncMenu() {
	m.menu.Width = max(m.width-2, 1)
	m.menu.Height = m.menuRowCount()
	m.menu.SetContent(m.menuContent())

	// a new search reshapes the list, so the old offset means nothing
	if search := m.engine.State().Search; search != m.menuSearch {
		m.menuSearch = search
		m.menu.GotoTop()
	}
	m.menu.SetYOffset(m.menu.YOffset)

	hl := m.engine.State().Highlighted
	if m.engine.IsOpen() && hl >= 0 && m.listShown() {
		m.menu.SetYOffset(dropdown.ScrollIntoView(m.menu.YOffset, m.menu.Height, hl, hl+1))
	}
}
