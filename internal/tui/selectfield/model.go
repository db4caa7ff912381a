// Package selectfield is the terminal rendition of the dropdown: a Bubble
// Tea component that binds keys and mouse events to the selection engine,
// draws the trigger and menu, and manages search focus, outside clicks and
// scroll position.
package selectfield

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/dropdown/internal/dropdown"
	"github.com/alexisbeaulieu97/dropdown/internal/logger"
	"github.com/alexisbeaulieu97/dropdown/internal/tui/pointer"
	"github.com/alexisbeaulieu97/dropdown/internal/ui/components"
)

const (
	defaultWidth      = 40
	defaultMenuHeight = 6
	minWidth          = 12

	defaultPlaceholder = "Select..."
	searchPlaceholder  = "Search..."
	loadingText        = "Loading options..."
	emptyText          = "No options found"
)

// Props is everything the embedding program supplies. The field is fully
// controlled: Value only changes when the program passes a new one in.
type Props struct {
	Label       string
	Placeholder string
	Options     []dropdown.Option
	Value       dropdown.Selection
	MultiSelect bool
	Searchable  bool
	Disabled    bool
	Loading     bool
	LabelFunc   dropdown.LabelFunc
	OnChange    dropdown.ChangeFunc
}

func (p Props) engineProps() dropdown.Props {
	return dropdown.Props{
		Options:     p.Options,
		Value:       p.Value,
		MultiSelect: p.MultiSelect,
		Searchable:  p.Searchable,
		Disabled:    p.Disabled,
		Loading:     p.Loading,
		Label:       p.LabelFunc,
		OnChange:    p.OnChange,
	}
}

// Model is the select field component. Use it through a pointer.
type Model struct {
	id     string
	props  Props
	engine *dropdown.Engine

	keys    KeyMap
	search  textinput.Model
	spinner spinner.Model
	menu    viewport.Model

	// search text the menu offset was last computed for
	menuSearch string

	theme      components.Theme
	log        *logger.Logger
	width      int
	menuHeight int
	originX    int
	originY    int

	mountCtx    context.Context
	cancelMount context.CancelFunc
	sub         *pointer.Subscription
	focusCancel context.CancelFunc
}

// ModelOption configures a Model at construction.
type ModelOption func(*Model)

// WithTheme sets the theme. The dropdown palette is taken from
// theme.Dropdown.
func WithTheme(theme components.Theme) ModelOption {
	return func(m *Model) { m.theme = theme }
}

// WithLogger sets the diagnostics logger.
func WithLogger(log *logger.Logger) ModelOption {
	return func(m *Model) { m.log = log }
}

// WithWidth sets the total width in cells, borders included.
func WithWidth(width int) ModelOption {
	return func(m *Model) { m.width = width }
}

// WithMenuHeight limits the number of option rows shown at once.
func WithMenuHeight(rows int) ModelOption {
	return func(m *Model) {
		if rows > 0 {
			m.menuHeight = rows
		}
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(keys KeyMap) ModelOption {
	return func(m *Model) { m.keys = keys }
}

// WithID fixes the instance id. By default a random UUID is used.
func WithID(id string) ModelOption {
	return func(m *Model) {
		if id != "" {
			m.id = id
		}
	}
}

// New creates a closed select field.
func New(props Props, opts ...ModelOption) *Model {
	m := &Model{
		id:         uuid.NewString(),
		props:      props,
		engine:     dropdown.NewEngine(props.engineProps()),
		keys:       DefaultKeyMap(),
		theme:      components.DefaultTheme(),
		width:      defaultWidth,
		menuHeight: defaultMenuHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.width < minWidth {
		m.width = minWidth
	}
	m.log = m.log.WithComponent("selectfield", m.id)

	m.search = textinput.New()
	m.search.Prompt = ""

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.MiniDot

	m.menu = viewport.New(m.width-2, 1)
	m.menu.MouseWheelEnabled = false

	m.applyTheme()
	m.refresh()
	return m
}

// Init starts the loading indicator when the field starts out loading.
func (m *Model) Init() tea.Cmd {
	if m.props.Loading {
		return m.spinner.Tick
	}
	return nil
}

// ID returns the instance id used for pointer subscriptions.
func (m *Model) ID() string {
	return m.id
}

// Props returns the current props.
func (m *Model) Props() Props {
	return m.props
}

// SetProps replaces every prop at once.
func (m *Model) SetProps(props Props) tea.Cmd {
	startSpinner := props.Loading && !m.props.Loading
	m.props = props
	m.refresh()
	if startSpinner {
		return m.spinner.Tick
	}
	return nil
}

// SetValue feeds a new selection back into the field.
func (m *Model) SetValue(value dropdown.Selection) {
	m.props.Value = value
	m.refresh()
}

// SetOptions replaces the option list. A highlight that no longer fits the
// visible list is dropped.
func (m *Model) SetOptions(options []dropdown.Option) {
	m.props.Options = options
	m.refresh()
}

// SetLoading toggles the loading state and returns the spinner command when
// loading starts.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	props := m.props
	props.Loading = loading
	return m.SetProps(props)
}

// SetDisabled toggles the disabled state.
func (m *Model) SetDisabled(disabled bool) {
	m.props.Disabled = disabled
	m.refresh()
}

// SetWidth sets the total width in cells.
func (m *Model) SetWidth(width int) {
	m.width = max(width, minWidth)
	m.refresh()
}

// SetOrigin records where the host draws the field so mouse coordinates can
// be translated.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetTheme replaces the theme.
func (m *Model) SetTheme(theme components.Theme) {
	m.theme = theme
	m.applyTheme()
	m.refresh()
}

// IsOpen reports whether the menu is open.
func (m *Model) IsOpen() bool {
	return m.engine.IsOpen()
}

// State returns the interaction state.
func (m *Model) State() dropdown.State {
	return m.engine.State()
}

// Visible returns the options currently listed in the menu.
func (m *Model) Visible() []dropdown.Option {
	return m.engine.Visible()
}

// Selected returns the options matching the current value.
func (m *Model) Selected() []dropdown.Option {
	return m.engine.Selected()
}

// SearchFocused reports whether the search input has focus.
func (m *Model) SearchFocused() bool {
	return m.search.Focused()
}

// Height is the number of rows the field occupies when drawn.
func (m *Model) Height() int {
	g := m.geometry()
	return g.triggerTop + g.triggerHeight + g.menuHeight
}

// Mount ties the field to a program lifetime: it subscribes to pointer
// events for outside-click detection and derives deferred focus contexts
// from ctx. Mounting twice is a no-op.
func (m *Model) Mount(ctx context.Context, pointers *pointer.Broadcaster) {
	if m.cancelMount != nil {
		return
	}
	m.mountCtx, m.cancelMount = context.WithCancel(ctx)
	if pointers != nil {
		m.sub = pointers.Subscribe(m.id, m.handleOutsidePress)
	}
	if m.props.OnChange == nil {
		m.log.Warn("select field mounted without a change handler, selections will be ignored")
	}
	m.log.Debug("mounted")
}

// Unmount releases the pointer subscription and cancels any pending focus.
// Unmounting an unmounted field is a no-op.
func (m *Model) Unmount() {
	if m.cancelMount == nil {
		return
	}
	m.cancelFocus()
	m.sub.Close()
	m.sub = nil
	m.cancelMount()
	m.cancelMount = nil
	m.mountCtx = nil
	m.log.Debug("unmounted")
}

// Mounted reports whether Mount has been called without a matching Unmount.
func (m *Model) Mounted() bool {
	return m.cancelMount != nil
}

func (m *Model) refresh() {
	m.engine.Sync(m.props.engineProps())
	m.syncSearchField()
	m.syncMenu()
}

func (m *Model) applyTheme() {
	d := m.theme.Dropdown
	m.search.TextStyle = lipgloss.NewStyle().Foreground(d.Text)
	m.search.PlaceholderStyle = lipgloss.NewStyle().Foreground(d.Placeholder)
	m.search.Cursor.Style = lipgloss.NewStyle().Foreground(d.Primary)
	m.spinner.Style = lipgloss.NewStyle().Foreground(d.Primary)
}

func (m *Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}
